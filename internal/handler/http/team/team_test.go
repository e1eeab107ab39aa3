package team_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagequery/internal/common/pagination"
	"pagequery/internal/handler/http/team"
	"pagequery/tests/fixtures"
)

func newMux(t *testing.T, strategy pagination.Strategy) *http.ServeMux {
	t.Helper()
	svc, conn, err := fixtures.NewRosterService(context.Background(), strategy)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	mux := http.NewServeMux()
	team.Register(mux, svc, pagination.DefaultConfig(), nil)
	return mux
}

func get(t *testing.T, mux http.Handler, target string, dst any) int {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if rec.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(dst))
	}
	return rec.Code
}

func TestListHandler(t *testing.T) {
	mux := newMux(t, pagination.TwoCall)

	var resp pagination.Response[team.DTO]
	require.Equal(t, http.StatusOK, get(t, mux, "/teams?offset=1&size=1", &resp))

	want := []team.DTO{{ID: 1, Name: "Harbor Hawks", City: "Seaport"}}
	if diff := cmp.Diff(want, resp.Data); diff != "" {
		t.Errorf("teams mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, pagination.Metadata{Total: 3, Offset: 1, Size: 1, Page: 2, TotalPages: 3, HasMore: true}, resp.Pagination)
}

func TestStandingsHandler(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		want      []team.StandingDTO
		wantTotal int64
	}{
		{
			name:   "all players",
			target: "/teams/standings",
			want: []team.StandingDTO{
				{TeamID: 2, Name: "Summit Owls", Players: 4, Points: 2156},
				{TeamID: 1, Name: "Harbor Hawks", Players: 3, Points: 1907},
				{TeamID: 3, Name: "Delta Foxes", Players: 3, Points: 1852},
			},
			wantTotal: 3,
		},
		{
			name:   "active players, second window",
			target: "/teams/standings?active=true&offset=1&size=2",
			want: []team.StandingDTO{
				{TeamID: 3, Name: "Delta Foxes", Players: 3, Points: 1852},
				{TeamID: 1, Name: "Harbor Hawks", Players: 2, Points: 1452},
			},
			wantTotal: 3,
		},
	}

	for _, strategy := range []pagination.Strategy{pagination.TwoCall, pagination.SinglePass} {
		mux := newMux(t, strategy)
		for _, tt := range tests {
			t.Run(strategy.String()+"/"+tt.name, func(t *testing.T) {
				var resp pagination.Response[team.StandingDTO]
				require.Equal(t, http.StatusOK, get(t, mux, tt.target, &resp))

				if diff := cmp.Diff(tt.want, resp.Data); diff != "" {
					t.Errorf("standings mismatch (-want +got):\n%s", diff)
				}
				assert.Equal(t, tt.wantTotal, resp.Pagination.Total)
			})
		}
	}
}

func TestStandingsHandler_BadRequest(t *testing.T) {
	mux := newMux(t, pagination.TwoCall)

	for _, target := range []string{"/teams/standings?active=maybe", "/teams/standings?page=0", "/teams?size=500"} {
		t.Run(target, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, get(t, mux, target, nil))
		})
	}
}
