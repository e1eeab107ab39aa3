package entity

import "fmt"

const maxNameLength = 100

// ValidatePosition checks that position is one of the known positions.
func ValidatePosition(position string) error {
	switch position {
	case PositionGuard, PositionForward, PositionCenter:
		return nil
	}
	return &ValidationError{
		Field:   "position",
		Message: fmt.Sprintf("must be one of %s, %s, %s", PositionGuard, PositionForward, PositionCenter),
	}
}

// ValidateName checks that a display name is present and not too long.
func ValidateName(field, name string) error {
	if name == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	if len(name) > maxNameLength {
		return &ValidationError{Field: field, Message: fmt.Sprintf("must not exceed %d characters", maxNameLength)}
	}
	return nil
}

// Validate checks the filter's optional conditions.
func (f PlayerFilter) Validate() error {
	if f.TeamID < 0 {
		return &ValidationError{Field: "team_id", Message: "must be positive"}
	}
	if f.Position != "" {
		if err := ValidatePosition(f.Position); err != nil {
			return err
		}
	}
	if f.MinPoints != nil && *f.MinPoints < 0 {
		return &ValidationError{Field: "min_points", Message: "cannot be negative"}
	}
	if len(f.Name) > maxNameLength {
		return &ValidationError{Field: "name", Message: fmt.Sprintf("must not exceed %d characters", maxNameLength)}
	}
	return nil
}

// Validate checks a player before it is stored.
func (p *Player) Validate() error {
	if p.TeamID <= 0 {
		return &ValidationError{Field: "team_id", Message: "must be positive"}
	}
	if err := ValidateName("name", p.Name); err != nil {
		return err
	}
	if err := ValidatePosition(p.Position); err != nil {
		return err
	}
	if p.Points < 0 {
		return &ValidationError{Field: "points", Message: "cannot be negative"}
	}
	if p.Points > MaxPoints {
		return &ValidationError{Field: "points", Message: fmt.Sprintf("must not exceed %d", MaxPoints)}
	}
	return nil
}

// ValidatePointsDelta checks a points credit.
func ValidatePointsDelta(delta int) error {
	if delta <= 0 {
		return &ValidationError{Field: "delta", Message: "must be positive"}
	}
	if delta > MaxPoints {
		return &ValidationError{Field: "delta", Message: fmt.Sprintf("must not exceed %d", MaxPoints)}
	}
	return nil
}
