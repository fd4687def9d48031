package get_allocation_capacity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
	getAllocationCapacity "github.com/m04kA/SMC-ApplicationRounds/internal/usecase/get_allocation_capacity"
	"github.com/m04kA/SMC-ApplicationRounds/pkg/logger"
)

type fakeUseCase struct {
	got  *getAllocationCapacity.Request
	resp *getAllocationCapacity.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAllocationCapacity.Request) (*getAllocationCapacity.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/application-rounds/{roundId}/capacity", NewHandler(uc, logger.NewDiscard()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	unitID := int64(3)
	uc := &fakeUseCase{resp: &getAllocationCapacity.Response{
		RoundID:           2,
		RoundName:         "Spring 2026",
		ReservationUnitID: &unitID,
		Capacity:          domain.AllocationCapacity{Percentage: 18, Volume: 15, Hours: 17.5, DemandPercentage: 35},
	}}

	rec := serve(uc, "/api/v1/application-rounds/2/capacity?reservationUnitId=3")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, int64(2), uc.got.RoundID)
	require.NotNil(t, uc.got.ReservationUnitID)
	assert.Equal(t, int64(3), *uc.got.ReservationUnitID)

	var body CapacityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Spring 2026", body.RoundName)
	assert.Equal(t, 18, body.Percentage)
	assert.Equal(t, 15, body.Volume)
	assert.InDelta(t, 17.5, body.Hours, 1e-9)
	assert.Equal(t, 35, body.DemandPercentage)
}

func TestHandle_WholeRound(t *testing.T) {
	uc := &fakeUseCase{resp: &getAllocationCapacity.Response{RoundID: 2}}

	rec := serve(uc, "/api/v1/application-rounds/2/capacity")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, uc.got.ReservationUnitID)
	assert.NotContains(t, rec.Body.String(), "reservationUnitId")
}

func TestHandle_Errors(t *testing.T) {
	cases := []struct {
		name   string
		target string
		err    error
		want   int
	}{
		{name: "bad round id", target: "/api/v1/application-rounds/abc/capacity", want: http.StatusBadRequest},
		{name: "bad unit id", target: "/api/v1/application-rounds/1/capacity?reservationUnitId=x", want: http.StatusBadRequest},
		{name: "invalid input", target: "/api/v1/application-rounds/0/capacity", err: getAllocationCapacity.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "not found", target: "/api/v1/application-rounds/1/capacity", err: getAllocationCapacity.ErrRoundNotFound, want: http.StatusNotFound},
		{name: "internal", target: "/api/v1/application-rounds/1/capacity", err: errors.New("db down"), want: http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: c.err}, c.target)
			assert.Equal(t, c.want, rec.Code)
		})
	}
}
