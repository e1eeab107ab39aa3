package pagination

import "fmt"

// CheckWindow reports whether the request describes a window at all:
// offset >= 0 and size >= 1. It applies no page size policy.
func (r Request) CheckWindow() error {
	if r.Offset < 0 {
		return fmt.Errorf("%w: offset must be zero or positive, got %d", ErrInvalidRequest, r.Offset)
	}
	if r.Size < 1 {
		return fmt.Errorf("%w: size must be at least 1, got %d", ErrInvalidRequest, r.Size)
	}
	return nil
}

// Validate validates the request against the configuration.
// Returns an error wrapping ErrInvalidRequest if:
//   - offset is negative
//   - size is less than 1 or greater than config.MaxSize
func (r Request) Validate(config Config) error {
	if err := r.CheckWindow(); err != nil {
		return err
	}
	if r.Size > config.MaxSize {
		return fmt.Errorf("%w: size must be between 1 and %d, got %d", ErrInvalidRequest, config.MaxSize, r.Size)
	}
	return nil
}

// WithDefaults applies default values from config to the request.
//
// Rules:
//   - If offset < 0, set to 0
//   - If size <= 0, set to config.DefaultSize
//   - If size > config.MaxSize, cap to config.MaxSize
func (r Request) WithDefaults(config Config) Request {
	if r.Offset < 0 {
		r.Offset = 0
	}
	if r.Size <= 0 {
		r.Size = config.DefaultSize
	}
	if r.Size > config.MaxSize {
		r.Size = config.MaxSize
	}
	return r
}
