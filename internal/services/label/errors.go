package label

import (
	"errors"
	"fmt"
)

// Label resolution errors
var (
	// Validation errors
	ErrNilConfig          = errors.New("configuration is nil")
	ErrUnsupportedVersion = errors.New("unsupported configuration version")
	ErrEmptyGroup         = errors.New("group has no labels")
	ErrEmptyLabelName     = errors.New("name cannot be empty")
	ErrInvalidColor       = errors.New("invalid color format (must be hex color like #FFFFFF)")

	// Business logic errors
	ErrDuplicateLabelName = errors.New("duplicate label name")
)

// GroupError attaches the failing group's position and prefix to an error
type GroupError struct {
	Index  int
	Prefix string
	Err    error
}

func (e *GroupError) Error() string {
	if e.Prefix == "" {
		return fmt.Sprintf("group %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("group %d (prefix %q): %v", e.Index, e.Prefix, e.Err)
}

func (e *GroupError) Unwrap() error {
	return e.Err
}

// LabelError attaches a label's position and name to an error
type LabelError struct {
	Index int
	Name  string
	Err   error
}

func (e *LabelError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("label %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("label %d (%q): %v", e.Index, e.Name, e.Err)
}

func (e *LabelError) Unwrap() error {
	return e.Err
}

// DuplicateLabelError reports the first resolved name seen twice
type DuplicateLabelError struct {
	Name string
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("%s %q", ErrDuplicateLabelName, e.Name)
}

// Is lets errors.Is match ErrDuplicateLabelName
func (e *DuplicateLabelError) Is(target error) bool {
	return target == ErrDuplicateLabelName
}
