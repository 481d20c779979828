// Package authorization defines the closed role set and its capability
// predicates. Capabilities are pure functions over the role value; no
// dynamic policy lookup is involved.
package authorization

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleSupervisor UserRole = "supervisor"
	RoleEmployee   UserRole = "employee"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleSupervisor || r == RoleEmployee
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// CanManageSchedule reports whether the role may create schedules,
// assignments, and callout events.
func (r UserRole) CanManageSchedule() bool {
	return r == RoleAdmin || r == RoleSupervisor
}

// CanApproveLeave reports whether the role may review leave requests.
func (r UserRole) CanApproveLeave() bool {
	return r == RoleAdmin || r == RoleSupervisor
}

// ParseUserRole returns the role for s, defaulting to employee for
// unknown values.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleEmployee
}
