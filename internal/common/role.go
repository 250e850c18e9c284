package common

// Role is the closed set of profile classifications. The guard matches on
// it exhaustively; anything unparseable degrades to RoleUnknown, which no
// entry point accepts.
type Role string

const (
	RoleUnknown Role = "unknown"
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// ParseRole maps a stored or wire-level role string onto the closed enum.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleStudent:
		return RoleStudent
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleUnknown
	}
}

func (r Role) String() string {
	return string(r)
}
