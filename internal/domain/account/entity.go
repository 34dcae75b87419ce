package account

import (
	"time"

	"github.com/google/uuid"
)

const maxDisplayNameLength = 120

type Account struct {
	id          uuid.UUID
	email       Email
	displayName string
	photoURL    string
	role        *Role
	status      Status
	createdAt   time.Time
}

// NewAccount registers a customer. Self-registration never grants a staff role.
func NewAccount(email Email, displayName, photoURL string, now time.Time) (*Account, error) {
	if len([]rune(displayName)) > maxDisplayNameLength {
		return nil, ErrDisplayNameTooLong
	}
	role := RoleUser
	return &Account{
		id:          uuid.New(),
		email:       email,
		displayName: displayName,
		photoURL:    photoURL,
		role:        &role,
		status:      StatusActive,
		createdAt:   now,
	}, nil
}

// ReconstructAccount rebuilds an account from storage; role may be unset.
func ReconstructAccount(id uuid.UUID, email Email, displayName, photoURL string, role *Role, status Status, createdAt time.Time) *Account {
	return &Account{
		id:          id,
		email:       email,
		displayName: displayName,
		photoURL:    photoURL,
		role:        role,
		status:      status,
		createdAt:   createdAt,
	}
}

func (a *Account) ID() uuid.UUID        { return a.id }
func (a *Account) Email() Email         { return a.email }
func (a *Account) DisplayName() string  { return a.displayName }
func (a *Account) PhotoURL() string     { return a.photoURL }
func (a *Account) StoredRole() *Role    { return a.role }
func (a *Account) Status() Status       { return a.status }
func (a *Account) CreatedAt() time.Time { return a.createdAt }

func (a *Account) Role() Role {
	if a.role == nil {
		return DefaultRole
	}
	return *a.role
}

func (a *Account) IsActive() bool {
	return a.status != StatusDisabled
}

// HasRole is an exact match: admin does not satisfy a decorator requirement.
func (a *Account) HasRole(required Role) bool {
	return a.Role() == required
}
