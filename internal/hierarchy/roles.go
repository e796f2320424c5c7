package hierarchy

// Role is the closed set of workforce roles. The zero value is not a
// valid role.
type Role string

const (
	RoleAdmin                   Role = "admin"
	RoleHR                      Role = "hr"
	RoleContactCenterOpsManager Role = "contact_center_ops_manager"
	RoleContactCenterManager    Role = "contact_center_manager"
	RoleTeamLeader              Role = "team_leader"
	RoleAgent                   Role = "agent"
)

// unknownRolePriority sorts roles outside the enumeration after every
// known role.
const unknownRolePriority = 999

var rolePriorities = map[Role]int{
	RoleAdmin:                   1,
	RoleHR:                      2,
	RoleContactCenterOpsManager: 3,
	RoleContactCenterManager:    4,
	RoleTeamLeader:              5,
	RoleAgent:                   6,
}

var roleLabels = map[Role]string{
	RoleAdmin:                   "Administrator",
	RoleHR:                      "HR",
	RoleContactCenterOpsManager: "Contact Center Ops Manager",
	RoleContactCenterManager:    "Contact Center Manager",
	RoleTeamLeader:              "Team Leader",
	RoleAgent:                   "Agent",
}

// ParseRole maps a raw string onto the role enumeration.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	_, ok := rolePriorities[r]
	return r, ok
}

func (r Role) Valid() bool {
	_, ok := rolePriorities[r]
	return ok
}

// Priority returns the fixed ordinal rank used to order siblings in
// hierarchy views. Lower means higher in the organization.
func (r Role) Priority() int {
	if p, ok := rolePriorities[r]; ok {
		return p
	}
	return unknownRolePriority
}

func (r Role) Label() string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return string(r)
}

// Roles lists the enumeration in priority order.
func Roles() []Role {
	return []Role{
		RoleAdmin,
		RoleHR,
		RoleContactCenterOpsManager,
		RoleContactCenterManager,
		RoleTeamLeader,
		RoleAgent,
	}
}
