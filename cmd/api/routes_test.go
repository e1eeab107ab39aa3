package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagequery/internal/common/pagination"
	"pagequery/internal/handler/http/requestid"
	"pagequery/tests/fixtures"
)

type closedBreaker struct{}

func (closedBreaker) IsOpen() bool { return false }

func newTestServer(t *testing.T, cfg serverConfig) *httptest.Server {
	t.Helper()
	svc, conn, err := fixtures.NewRosterService(context.Background(), pagination.TwoCall)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	srv := httptest.NewServer(newHandler(deps{
		DB:            conn,
		Breaker:       closedBreaker{},
		Svc:           svc,
		PaginationCfg: pagination.DefaultConfig(),
		Server:        cfg,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewHandler_Routes(t *testing.T) {
	srv := newTestServer(t, defaultServerConfig())

	tests := []struct {
		method   string
		path     string
		wantCode int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/live", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/players?size=2", http.StatusOK},
		{http.MethodGet, "/players/4", http.StatusOK},
		{http.MethodGet, "/teams", http.StatusOK},
		{http.MethodGet, "/teams/standings", http.StatusOK},
		{http.MethodGet, "/nope", http.StatusNotFound},
		{http.MethodDelete, "/players/4", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, nil)
			require.NoError(t, err)
			resp, err := srv.Client().Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantCode, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get(requestid.RequestIDHeader))
		})
	}
}

func TestNewHandler_PlayersPage(t *testing.T) {
	srv := newTestServer(t, defaultServerConfig())

	resp, err := srv.Client().Get(srv.URL + "/players?size=2&page=2")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
		Pagination pagination.Metadata `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Len(t, body.Data, 2)
	assert.Equal(t, "Harper Quinn", body.Data[0].Name)
	assert.Equal(t, "Blake Mora", body.Data[1].Name)
	assert.Equal(t, pagination.Metadata{Total: 10, Offset: 2, Size: 2, Page: 2, TotalPages: 5, HasMore: true}, body.Pagination)
}

func TestNewHandler_RateLimit(t *testing.T) {
	cfg := defaultServerConfig()
	cfg.RateLimit = 0.001
	cfg.RateBurst = 1
	srv := newTestServer(t, cfg)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		resp, err := srv.Client().Get(srv.URL + "/live")
		require.NoError(t, err)
		resp.Body.Close()
		codes = append(codes, resp.StatusCode)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestLoadServerConfig(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("HTTP_REQUEST_TIMEOUT", "2s")
	t.Setenv("HTTP_RATE_LIMIT", "-1")
	t.Setenv("SEED_DEMO", "false")

	cfg, warnings := loadServerConfig(nil)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "2s", cfg.RequestTimeout.String())
	assert.Equal(t, float64(0), cfg.RateLimit)
	assert.False(t, cfg.SeedDemo)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "HTTP_RATE_LIMIT")
}
