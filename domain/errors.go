package domain

import (
	"errors"
	"strings"
)

var (
	ErrPatientNotFound     = errors.New("patient not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrDuplicateRoomNumber = errors.New("room number already exists")
)

// ValidationError carries every field failure found in a single Validate
// pass, so the form can report all of them at once.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, "; ")
}
