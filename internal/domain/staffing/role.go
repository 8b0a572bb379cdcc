package staffing

import "fmt"

// Role is the closed set of roles a site member can hold. Roles arrive from
// the membership store as strings; NewRole is the single point where they are
// validated, so the rest of the engine never does ad-hoc string comparison.
type Role string

const (
	RoleMST           Role = "mst"
	RolePropertyAdmin Role = "property_admin"
	RoleSecurity      Role = "security"
	RoleStaff         Role = "staff"
	RoleTenant        Role = "tenant"
)

var validRoles = map[Role]bool{
	RoleMST:           true,
	RolePropertyAdmin: true,
	RoleSecurity:      true,
	RoleStaff:         true,
	RoleTenant:        true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) IsTenant() bool {
	return r == RoleTenant
}

func (r Role) IsPropertyAdmin() bool {
	return r == RolePropertyAdmin
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}
