package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolePriorityOrder(t *testing.T) {
	roles := Roles()
	for i := 1; i < len(roles); i++ {
		assert.Less(t, roles[i-1].Priority(), roles[i].Priority(),
			"%s must outrank %s", roles[i-1], roles[i])
	}
}

func TestUnknownRoleSortsLast(t *testing.T) {
	unknown := Role("contractor")
	assert.False(t, unknown.Valid())
	assert.Greater(t, unknown.Priority(), RoleAgent.Priority())
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("team_leader")
	assert.True(t, ok)
	assert.Equal(t, RoleTeamLeader, r)

	_, ok = ParseRole("ceo")
	assert.False(t, ok)
}

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "Contact Center Ops Manager", RoleContactCenterOpsManager.Label())
	assert.Equal(t, "consultant", Role("consultant").Label())
}
