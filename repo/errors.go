package repo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownProperty     = errors.New("unknown property")
	ErrUnknownSetter       = errors.New("unknown setter")
	ErrDuplicateProperties = errors.New("duplicate properties")
	ErrEmptyRequirements   = errors.New("empty requirements")
)

// UnknownPropertyError reports an input key or read access that does not
// resolve to an exposed field, even after kebab-case conversion.
type UnknownPropertyError struct {
	Name string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("unknown property %q", e.Name)
}

func (e *UnknownPropertyError) Is(target error) bool { return target == ErrUnknownProperty }

// UnknownSetterError reports a field that received a value but has no setter
// hook while the RequireSetters option is active.
type UnknownSetterError struct {
	Name string
}

func (e *UnknownSetterError) Error() string {
	return fmt.Sprintf("unknown setter for property %q", e.Name)
}

func (e *UnknownSetterError) Is(target error) bool { return target == ErrUnknownSetter }

// DuplicatePropertiesError reports field names declared more than once after
// normalizing the legacy required-name marker.
type DuplicatePropertiesError struct {
	Names []string
}

func (e *DuplicatePropertiesError) Error() string {
	return fmt.Sprintf("duplicate properties: %s", strings.Join(e.Names, ", "))
}

func (e *DuplicatePropertiesError) Is(target error) bool { return target == ErrDuplicateProperties }

// EmptyRequirementsError reports every required field that is still empty
// after defaulting, not just the first one found.
type EmptyRequirementsError struct {
	Names []string
}

func (e *EmptyRequirementsError) Error() string {
	noun := "requirements"
	if len(e.Names) == 1 {
		noun = "requirement"
	}

	return fmt.Sprintf("empty %s: %s", noun, strings.Join(e.Names, ", "))
}

func (e *EmptyRequirementsError) Is(target error) bool { return target == ErrEmptyRequirements }
