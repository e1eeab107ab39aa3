package pagination

import (
	"fmt"
	"strings"
)

// Strategy selects how the engine obtains a page and its total count.
// It is chosen by configuration, never inferred from the query.
type Strategy int

const (
	// TwoCall runs a derived count query and a windowed query. This is the default.
	TwoCall Strategy = iota
	// SinglePass runs the unbounded query once, counting every row and mapping
	// only the rows inside the window.
	SinglePass
)

const (
	twoCallName    = "two-call"
	singlePassName = "single-pass"
)

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	switch s {
	case TwoCall:
		return twoCallName
	case SinglePass:
		return singlePassName
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy parses a configuration name. Matching is case-insensitive
// and an empty string selects TwoCall.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", twoCallName:
		return TwoCall, nil
	case singlePassName:
		return SinglePass, nil
	default:
		return TwoCall, fmt.Errorf("unknown pagination strategy %q (want %s or %s)", name, twoCallName, singlePassName)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so strategies can be
// read from YAML and JSON documents.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
