package check_collisions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
	checkCollisions "github.com/m04kA/SMC-ApplicationRounds/internal/usecase/check_collisions"
	"github.com/m04kA/SMC-ApplicationRounds/pkg/logger"
)

type fakeUseCase struct {
	got  *checkCollisions.Request
	resp *checkCollisions.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkCollisions.Request) (*checkCollisions.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(uc *fakeUseCase, target, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/reservation-units/{unitId}/collisions", NewHandler(uc, logger.NewDiscard()).Handle).
		Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, target, strings.NewReader(body)))
	return rec
}

func TestHandle_Candidates(t *testing.T) {
	begin := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &checkCollisions.Response{
		ReservationUnitID: 4,
		CandidatesChecked: 1,
		Collisions: []checkCollisions.Collision{{
			CandidateIndex:   0,
			CandidateBegin:   begin,
			CandidateEnd:     begin.Add(time.Hour),
			ReservationID:    77,
			ReservationBegin: begin.Add(70 * time.Minute),
			ReservationEnd:   begin.Add(2 * time.Hour),
			ReservationType:  domain.ReservationTypeNormal,
		}},
	}}

	body := `{"candidates":[{"begin":"2026-03-02T10:00:00Z","end":"2026-03-02T11:00:00Z"}],"ignoreSeriesId":5}`
	rec := serve(uc, "/api/v1/reservation-units/4/collisions", body)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, uc.got.Candidates, 1)
	assert.True(t, begin.Equal(uc.got.Candidates[0].Begin))
	assert.Equal(t, int64(4), uc.got.ReservationUnitID)
	assert.Equal(t, int64(5), *uc.got.IgnoreSeriesID)
	assert.Nil(t, uc.got.Series)

	var resp CheckCollisionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.HasCollisions)
	require.Len(t, resp.Collisions, 1)
	assert.Equal(t, int64(77), resp.Collisions[0].ReservationID)
	assert.Equal(t, "normal", resp.Collisions[0].ReservationType)
}

func TestHandle_Series(t *testing.T) {
	uc := &fakeUseCase{resp: &checkCollisions.Response{ReservationUnitID: 4, CandidatesChecked: 3}}

	body := `{"series":{"ranges":[{"day":0,"beginTime":"10:00","endTime":"12:00","priority":300}],` +
		`"periodBegin":"2026-03-02","periodEnd":"2026-03-16"}}`
	rec := serve(uc, "/api/v1/reservation-units/4/collisions", body)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.got.Series)
	assert.Equal(t, "2026-03-02", uc.got.Series.Period.Begin.Format(domain.DateFormat))
	assert.Equal(t, "2026-03-16", uc.got.Series.Period.End.Format(domain.DateFormat))
	require.Len(t, uc.got.Series.Ranges, 1)
	assert.Equal(t, domain.PriorityPrimary, uc.got.Series.Ranges[0].Priority)
	assert.Empty(t, uc.got.Candidates)

	var resp CheckCollisionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.HasCollisions)
	assert.NotNil(t, resp.Collisions)
}

func TestHandle_Errors(t *testing.T) {
	const candidate = `{"candidates":[{"begin":"2026-03-02T10:00:00Z","end":"2026-03-02T11:00:00Z"}]}`

	cases := []struct {
		name   string
		target string
		body   string
		err    error
		want   int
	}{
		{name: "bad id", target: "/api/v1/reservation-units/x/collisions", body: candidate, want: http.StatusBadRequest},
		{name: "bad json", target: "/api/v1/reservation-units/1/collisions", body: `{`, want: http.StatusBadRequest},
		{name: "nothing to check", target: "/api/v1/reservation-units/1/collisions", body: `{}`, want: http.StatusBadRequest},
		{
			name:   "bad period",
			target: "/api/v1/reservation-units/1/collisions",
			body:   `{"series":{"ranges":[],"periodBegin":"02.03.2026","periodEnd":"2026-03-16"}}`,
			want:   http.StatusBadRequest,
		},
		{name: "invalid input", target: "/api/v1/reservation-units/1/collisions", body: candidate, err: checkCollisions.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "too many", target: "/api/v1/reservation-units/1/collisions", body: candidate, err: checkCollisions.ErrTooManyCandidates, want: http.StatusUnprocessableEntity},
		{name: "unit not found", target: "/api/v1/reservation-units/1/collisions", body: candidate, err: checkCollisions.ErrReservationUnitNotFound, want: http.StatusNotFound},
		{name: "internal", target: "/api/v1/reservation-units/1/collisions", body: candidate, err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: c.err}, c.target, c.body)
			assert.Equal(t, c.want, rec.Code)
		})
	}
}
