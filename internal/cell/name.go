package cell

import (
	"errors"
	"fmt"
	"regexp"
)

// nameRegex accepts a letter or underscore followed by one or more letters,
// digits or underscores.
var nameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]+$`)

// ErrInvalidName is returned for names that break the naming rule.
var ErrInvalidName = errors.New("invalid cell name")

// ValidName reports whether name is a well-formed cell name. Names are
// case-sensitive.
func ValidName(name string) bool {
	return nameRegex.MatchString(name)
}

// CheckName returns an error wrapping ErrInvalidName if name is malformed.
func CheckName(name string) error {
	if !ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
