package models

// Role is the capability tag assigned to a user
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleScientist Role = "scientist"
	RoleStudent   Role = "student"
	RoleTech      Role = "tech"
	RoleViewer    Role = "viewer"
)

// Valid reports whether the role is one of the known values
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleScientist, RoleStudent, RoleTech, RoleViewer:
		return true
	}
	return false
}
