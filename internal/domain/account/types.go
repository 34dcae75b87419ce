package account

type Role string

const (
	RoleUser      Role = "user"
	RoleDecorator Role = "decorator"
	RoleAdmin     Role = "admin"
)

// DefaultRole applies to accounts with no stored role and to unknown emails.
const DefaultRole = RoleUser

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleDecorator, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// ResolveRole maps a nullable stored role to an effective role.
func ResolveRole(stored *string) Role {
	if stored == nil || *stored == "" {
		return DefaultRole
	}
	role, err := NewRole(*stored)
	if err != nil {
		return DefaultRole
	}
	return role
}
