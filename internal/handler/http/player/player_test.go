package player_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagequery/internal/common/pagination"
	"pagequery/internal/handler/http/player"
	"pagequery/tests/fixtures"
)

type listResponse struct {
	Data       []player.DTO        `json:"data"`
	Pagination pagination.Metadata `json:"pagination"`
}

func newMux(t *testing.T, strategy pagination.Strategy) *http.ServeMux {
	t.Helper()
	svc, conn, err := fixtures.NewRosterService(context.Background(), strategy)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	mux := http.NewServeMux()
	player.Register(mux, svc, pagination.DefaultConfig(), nil)
	return mux
}

func do(mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body["error"]
}

func names(dtos []player.DTO) []string {
	out := make([]string, len(dtos))
	for i, d := range dtos {
		out[i] = d.Name
	}
	return out
}

func TestListHandler(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantNames []string
		wantMeta  pagination.Metadata
	}{
		{
			name:      "first page",
			target:    "/players?size=3",
			wantNames: []string{"Devon Price", "Avery Cole", "Harper Quinn"},
			wantMeta:  pagination.Metadata{Total: 10, Offset: 0, Size: 3, Page: 1, TotalPages: 4, HasMore: true},
		},
		{
			name:      "page number",
			target:    "/players?size=3&page=4",
			wantNames: []string{"Gray O'Neil"},
			wantMeta:  pagination.Metadata{Total: 10, Offset: 9, Size: 3, Page: 4, TotalPages: 4},
		},
		{
			name:      "active players of one team",
			target:    "/players?team_id=2&active=true",
			wantNames: []string{"Devon Price", "Finley Ortiz", "Emery Shaw"},
			wantMeta:  pagination.Metadata{Total: 3, Offset: 0, Size: 20, Page: 1, TotalPages: 1},
		},
		{
			name:      "position and minimum points",
			target:    "/players?position=guard&min_points=500&offset=2&size=2",
			wantNames: []string{"Indy Park"},
			wantMeta:  pagination.Metadata{Total: 3, Offset: 2, Size: 2, Page: 2, TotalPages: 2},
		},
		{
			name:      "offset past the end",
			target:    "/players?team_id=3&offset=20",
			wantNames: []string{},
			wantMeta:  pagination.Metadata{Total: 3, Offset: 20, Size: 20, Page: 2, TotalPages: 1},
		},
	}

	for _, strategy := range []pagination.Strategy{pagination.TwoCall, pagination.SinglePass} {
		mux := newMux(t, strategy)
		for _, tt := range tests {
			t.Run(strategy.String()+"/"+tt.name, func(t *testing.T) {
				rec := do(mux, http.MethodGet, tt.target, "")
				require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

				var resp listResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.wantNames, names(resp.Data))
				assert.Equal(t, tt.wantMeta, resp.Pagination)
			})
		}
	}
}

func TestListHandler_BadRequest(t *testing.T) {
	mux := newMux(t, pagination.TwoCall)

	tests := []struct {
		target  string
		wantMsg string
	}{
		{"/players?size=0", "invalid pagination request: size must be between 1 and 100"},
		{"/players?size=101", "invalid pagination request: size must be between 1 and 100"},
		{"/players?offset=-1", "invalid pagination request: offset must be a non-negative integer"},
		{"/players?team_id=abc", "validation error on field 'team_id': must be a positive integer"},
		{"/players?min_points=lots", "validation error on field 'min_points': must be an integer"},
		{"/players?min_points=-5", "validation error on field 'min_points': cannot be negative"},
		{"/players?active=maybe", "validation error on field 'active': must be true or false"},
		{"/players?position=wizard", "validation error on field 'position': must be one of guard, forward, center"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := do(mux, http.MethodGet, tt.target, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, rec))
		})
	}
}

func TestGetHandler(t *testing.T) {
	mux := newMux(t, pagination.TwoCall)

	rec := do(mux, http.MethodGet, "/players/7", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got player.DTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "Gray O'Neil", got.Name)
	assert.Equal(t, "Summit Owls", got.TeamName)
	assert.False(t, got.Active)
	assert.Equal(t, "2021-10-01", got.JoinedAt.Format("2006-01-02"))
}

func TestGetHandler_Errors(t *testing.T) {
	mux := newMux(t, pagination.TwoCall)

	tests := []struct {
		target   string
		wantCode int
	}{
		{"/players/99", http.StatusNotFound},
		{"/players/0", http.StatusBadRequest},
		{"/players/abc", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, do(mux, http.MethodGet, tt.target, "").Code)
		})
	}
}

func TestCreateHandler(t *testing.T) {
	mux := newMux(t, pagination.TwoCall)

	rec := do(mux, http.MethodPost, "/players",
		`{"team_id":3,"name":"Kai Lee","position":"guard","points":12,"joined_at":"2024-10-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "/players/11", rec.Header().Get("Location"))

	var created player.DTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, int64(11), created.ID)
	assert.True(t, created.Active)

	rec = do(mux, http.MethodGet, "/players/11", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got player.DTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "Delta Foxes", got.TeamName)
	assert.Equal(t, 12, got.Points)
	assert.Equal(t, "2024-10-01", got.JoinedAt.Format("2006-01-02"))
}

func TestCreateHandler_Errors(t *testing.T) {
	mux := newMux(t, pagination.TwoCall)

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantMsg  string
	}{
		{
			name:     "missing name",
			body:     `{"team_id":1,"position":"guard"}`,
			wantCode: http.StatusBadRequest,
			wantMsg:  "validation error on field 'name': is required",
		},
		{
			name:     "unknown position",
			body:     `{"team_id":1,"name":"Kai Lee","position":"wizard"}`,
			wantCode: http.StatusBadRequest,
			wantMsg:  "validation error on field 'position': must be one of guard, forward, center",
		},
		{
			name:     "negative points",
			body:     `{"team_id":1,"name":"Kai Lee","position":"guard","points":-1}`,
			wantCode: http.StatusBadRequest,
			wantMsg:  "validation error on field 'points': must be at least 0",
		},
		{
			name:     "points above column range",
			body:     `{"team_id":1,"name":"Kai Lee","position":"guard","points":5000000000}`,
			wantCode: http.StatusBadRequest,
			wantMsg:  "validation error on field 'points': must not exceed 2147483647",
		},
		{
			name:     "bad join date",
			body:     `{"team_id":1,"name":"Kai Lee","position":"guard","joined_at":"01/10/2024"}`,
			wantCode: http.StatusBadRequest,
			wantMsg:  "validation error on field 'joined_at': must be a date in YYYY-MM-DD format",
		},
		{
			name:     "unknown field",
			body:     `{"team_id":1,"name":"Kai Lee","position":"guard","salary":5}`,
			wantCode: http.StatusBadRequest,
			wantMsg:  "validation error on field 'body': invalid JSON",
		},
		{
			name:     "unknown team",
			body:     `{"team_id":9,"name":"Kai Lee","position":"guard"}`,
			wantCode: http.StatusUnprocessableEntity,
			wantMsg:  "team not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(mux, http.MethodPost, "/players", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, rec))
		})
	}
}

func TestActiveHandler(t *testing.T) {
	mux := newMux(t, pagination.TwoCall)

	rec := do(mux, http.MethodPatch, "/players/3/active", `{"active":true}`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	var got player.DTO
	require.NoError(t, json.NewDecoder(do(mux, http.MethodGet, "/players/3", "").Body).Decode(&got))
	assert.True(t, got.Active)

	assert.Equal(t, http.StatusNotFound, do(mux, http.MethodPatch, "/players/99/active", `{"active":false}`).Code)

	rec = do(mux, http.MethodPatch, "/players/3/active", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation error on field 'active': is required", errorMessage(t, rec))
}

func TestPointsHandler(t *testing.T) {
	mux := newMux(t, pagination.TwoCall)

	require.Equal(t, http.StatusNoContent, do(mux, http.MethodPost, "/players/3/points", `{"delta":100}`).Code)

	var got player.DTO
	require.NoError(t, json.NewDecoder(do(mux, http.MethodGet, "/players/3", "").Body).Decode(&got))
	assert.Equal(t, 555, got.Points)

	rec := do(mux, http.MethodPost, "/players/3/points", `{"delta":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation error on field 'delta': must be greater than 0", errorMessage(t, rec))

	assert.Equal(t, http.StatusNotFound, do(mux, http.MethodPost, "/players/99/points", `{"delta":5}`).Code)
}

func TestPointsHandler_Bounds(t *testing.T) {
	mux := newMux(t, pagination.TwoCall)

	rec := do(mux, http.MethodPost, "/players/3/points", `{"delta":4294967297}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation error on field 'delta': must not exceed 2147483647", errorMessage(t, rec))

	rec = do(mux, http.MethodPost, "/players/3/points", `{"delta":2147483647}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation error on field 'points': total must not exceed 2147483647", errorMessage(t, rec))

	var got player.DTO
	require.NoError(t, json.NewDecoder(do(mux, http.MethodGet, "/players/3", "").Body).Decode(&got))
	assert.Equal(t, 455, got.Points)
}
