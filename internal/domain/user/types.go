package user

type Role string

// Riders buy tickets, inspectors and gate terminals redeem them.
const (
	RoleRider     Role = "rider"
	RoleInspector Role = "inspector"
	RoleAdmin     Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleRider, RoleInspector, RoleAdmin:
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
