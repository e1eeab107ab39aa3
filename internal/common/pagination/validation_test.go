package pagination_test

import (
	"errors"
	"testing"

	"pagequery/internal/common/pagination"
)

func TestRequest_Validate(t *testing.T) {
	t.Parallel()

	cfg := pagination.Config{DefaultSize: 20, MaxSize: 100}

	tests := []struct {
		name      string
		req       pagination.Request
		wantError bool
	}{
		{name: "valid request", req: pagination.Request{Offset: 0, Size: 20}},
		{name: "size at max", req: pagination.Request{Offset: 0, Size: 100}},
		{name: "size at min", req: pagination.Request{Offset: 0, Size: 1}},
		{name: "offset past any data is valid", req: pagination.Request{Offset: 1_000_000, Size: 10}},
		{name: "negative offset", req: pagination.Request{Offset: -1, Size: 10}, wantError: true},
		{name: "zero size", req: pagination.Request{Offset: 0, Size: 0}, wantError: true},
		{name: "negative size", req: pagination.Request{Offset: 0, Size: -5}, wantError: true},
		{name: "size above max", req: pagination.Request{Offset: 0, Size: 101}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(cfg)
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
			if err != nil && !errors.Is(err, pagination.ErrInvalidRequest) {
				t.Errorf("Validate() error = %v, want ErrInvalidRequest", err)
			}
		})
	}
}

func TestRequest_WithDefaults(t *testing.T) {
	t.Parallel()

	cfg := pagination.Config{DefaultSize: 20, MaxSize: 100}

	tests := []struct {
		name string
		req  pagination.Request
		want pagination.Request
	}{
		{name: "zero value", req: pagination.Request{}, want: pagination.Request{Offset: 0, Size: 20}},
		{name: "negative offset clamped", req: pagination.Request{Offset: -3, Size: 5}, want: pagination.Request{Offset: 0, Size: 5}},
		{name: "size capped", req: pagination.Request{Offset: 10, Size: 500}, want: pagination.Request{Offset: 10, Size: 100}},
		{name: "already valid", req: pagination.Request{Offset: 40, Size: 20}, want: pagination.Request{Offset: 40, Size: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.WithDefaults(cfg)
			if got != tt.want {
				t.Errorf("WithDefaults() = %+v, want %+v", got, tt.want)
			}
			if err := got.Validate(cfg); err != nil {
				t.Errorf("WithDefaults() result is invalid: %v", err)
			}
		})
	}
}
