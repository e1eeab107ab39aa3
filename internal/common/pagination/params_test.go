package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagequery/internal/common/pagination"
)

func TestParseQueryParams(t *testing.T) {
	t.Parallel()

	config := pagination.Config{DefaultSize: 20, MaxSize: 100}

	tests := []struct {
		name      string
		query     string
		want      pagination.Request
		wantError string
	}{
		{name: "defaults", query: "", want: pagination.NewRequest(0, 20)},
		{name: "offset and size", query: "offset=40&size=10", want: pagination.NewRequest(40, 10)},
		{name: "page overrides offset", query: "offset=3&page=3&size=10", want: pagination.NewRequest(20, 10)},
		{name: "page with default size", query: "page=2", want: pagination.NewRequest(20, 20)},
		{name: "size at max", query: "size=100", want: pagination.NewRequest(0, 100)},
		{name: "size above max", query: "size=101", wantError: "size must be between 1 and 100"},
		{name: "size zero", query: "size=0", wantError: "size must be between 1 and 100"},
		{name: "size not a number", query: "size=ten", wantError: "size must be between 1 and 100"},
		{name: "negative offset", query: "offset=-1", wantError: "offset must be a non-negative integer"},
		{name: "page zero", query: "page=0", wantError: "page must be a positive integer"},
		{name: "page not a number", query: "page=abc", wantError: "page must be a positive integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest("GET", "/players?"+tt.query, nil)
			got, err := pagination.ParseQueryParams(r, config)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, pagination.ErrInvalidRequest)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewResponse(t *testing.T) {
	t.Parallel()

	meta := pagination.Metadata{Total: 0, Size: 20, Page: 1, TotalPages: 1}
	resp := pagination.NewResponse[string](nil, meta)

	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
	assert.Equal(t, meta, resp.Pagination)
}
