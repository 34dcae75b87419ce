package account

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidStatus      = errors.New("invalid account status")
	ErrDisplayNameTooLong = errors.New("display name must be at most 120 characters")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail lowercases the address so that principal comparisons are case-insensitive.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

// ReconstructEmail wraps an address read back from storage without re-validating it.
func ReconstructEmail(s string) Email {
	return Email{value: strings.ToLower(strings.TrimSpace(s))}
}

func (e Email) Value() string {
	return e.value
}

func (e Email) Equals(other string) bool {
	return e.value == strings.ToLower(strings.TrimSpace(other))
}

// SameEmail compares two raw addresses the way NewEmail normalizes them.
func SameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

type Status string

const (
	StatusActive   Status = "active"
	StatusDisabled Status = "disabled"
)

func (s Status) String() string {
	return string(s)
}

func NewStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusActive, StatusDisabled:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}
