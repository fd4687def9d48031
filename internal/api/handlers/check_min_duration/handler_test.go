package check_min_duration

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
	checkMinDuration "github.com/m04kA/SMC-ApplicationRounds/internal/usecase/check_min_duration"
	"github.com/m04kA/SMC-ApplicationRounds/pkg/logger"
)

type fakeUseCase struct {
	got  *checkMinDuration.Request
	resp *checkMinDuration.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkMinDuration.Request) (*checkMinDuration.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/applications/{applicationId}/duration-check", NewHandler(uc, logger.NewDiscard()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &checkMinDuration.Response{
		ApplicationID: 8,
		Policy:        domain.PolicyLongest,
		Priority:      domain.PriorityPrimary,
		Sections: []checkMinDuration.SectionResult{
			{SectionID: 1, Name: "A", MinDurationSeconds: 5400, SelectedHours: 1, UnderMinimum: true},
		},
		UnderMinimum: []int{0},
	}}

	rec := serve(uc, "/api/v1/applications/8/duration-check?policy=longest&priority=primary")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, domain.PolicyLongest, *uc.got.Policy)
	assert.Equal(t, domain.PriorityPrimary, uc.got.Priority)

	var body DurationCheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "longest", body.Policy)
	assert.Equal(t, 300, body.Priority)
	assert.Equal(t, []int{0}, body.UnderMinimum)
	assert.True(t, body.Sections[0].UnderMinimum)
}

func TestHandle_DefaultsLeftToUseCase(t *testing.T) {
	uc := &fakeUseCase{resp: &checkMinDuration.Response{Policy: domain.PolicySum}}

	rec := serve(uc, "/api/v1/applications/8/duration-check")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Nil(t, uc.got.Policy)
	assert.Equal(t, domain.PriorityNone, uc.got.Priority)
}

func TestHandle_Errors(t *testing.T) {
	cases := []struct {
		name   string
		target string
		err    error
		want   int
	}{
		{name: "bad id", target: "/api/v1/applications/x/duration-check", want: http.StatusBadRequest},
		{name: "bad policy", target: "/api/v1/applications/1/duration-check?policy=avg", want: http.StatusBadRequest},
		{name: "bad priority", target: "/api/v1/applications/1/duration-check?priority=high", want: http.StatusBadRequest},
		{name: "not found", target: "/api/v1/applications/1/duration-check", err: checkMinDuration.ErrApplicationNotFound, want: http.StatusNotFound},
		{name: "internal", target: "/api/v1/applications/1/duration-check", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: c.err}, c.target)
			assert.Equal(t, c.want, rec.Code)
		})
	}
}
