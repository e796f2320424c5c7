package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func member(id string, role Role, firstName, lastName, reportsTo string) Member {
	return Member{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
		ReportsTo: reportsTo,
	}
}

func ids(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Member.ID)
	}
	return out
}

func TestBuild_ExpandedParentEmitsChildren(t *testing.T) {
	members := []Member{
		member("a", RoleAdmin, "Alice", "", ""),
		member("b", RoleAgent, "Bob", "", "a"),
		member("c", RoleAgent, "Carol", "", "a"),
	}

	rows := Build(members, map[string]bool{"a": true})

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"a", "b", "c"}, ids(rows))
	assert.Equal(t, 0, rows[0].Level)
	assert.Equal(t, 1, rows[1].Level)
	assert.Equal(t, 1, rows[2].Level)
	assert.True(t, rows[0].IsExpanded)
	assert.True(t, rows[0].HasChildren)
	assert.False(t, rows[1].HasChildren)
}

func TestBuild_CollapsedParentHidesSubtree(t *testing.T) {
	members := []Member{
		member("a", RoleAdmin, "Alice", "", ""),
		member("b", RoleAgent, "Bob", "", "a"),
		member("c", RoleAgent, "Carol", "", "a"),
	}

	rows := Build(members, map[string]bool{})

	require.Len(t, rows, 1)
	assert.Equal(t, "a", rows[0].Member.ID)
	assert.False(t, rows[0].IsExpanded)
	assert.True(t, rows[0].HasChildren, "existence check must not depend on expansion")
}

func TestBuild_DanglingManagerPromotesToRoot(t *testing.T) {
	members := []Member{
		member("d", RoleTeamLeader, "Dina", "", "ghost-id"),
	}

	rows := Build(members, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].Level)
	assert.False(t, rows[0].HasChildren)
}

func TestBuild_RootsOrderedByRolePriority(t *testing.T) {
	members := []Member{
		member("a", RoleHR, "Anna", "", ""),
		member("z", RoleAdmin, "Zed", "", ""),
	}

	rows := Build(members, nil)

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"z", "a"}, ids(rows), "admin outranks hr regardless of name")
}

func TestBuild_SiblingsTieBrokenByName(t *testing.T) {
	members := []Member{
		member("1", RoleAgent, "zoe", "Adams", "m"),
		member("2", RoleAgent, "Ben", "Cruz", "m"),
		member("m", RoleTeamLeader, "Mara", "", ""),
	}

	rows := Build(members, map[string]bool{"m": true})

	require.Len(t, rows, 3)
	// case-insensitive: "ben cruz" < "zoe adams"
	assert.Equal(t, []string{"m", "2", "1"}, ids(rows))
}

func TestBuild_EveryMemberAppearsExactlyOnceWhenFullyExpanded(t *testing.T) {
	members := []Member{
		member("a", RoleAdmin, "Alice", "", ""),
		member("b", RoleContactCenterManager, "Bob", "", "a"),
		member("c", RoleTeamLeader, "Carol", "", "b"),
		member("d", RoleAgent, "Dave", "", "c"),
		member("e", RoleAgent, "Eve", "", "c"),
		member("f", RoleHR, "Fay", "", ""),
	}
	expanded := map[string]bool{"a": true, "b": true, "c": true, "d": true, "e": true, "f": true}

	rows := Build(members, expanded)

	require.Len(t, rows, len(members))
	seen := make(map[string]int)
	for _, r := range rows {
		seen[r.Member.ID]++
	}
	for _, m := range members {
		assert.Equal(t, 1, seen[m.ID], "member %s must appear exactly once", m.ID)
	}
}

func TestBuild_DeterministicOrder(t *testing.T) {
	members := []Member{
		member("a", RoleAdmin, "Alice", "", ""),
		member("b", RoleAgent, "Bob", "", "a"),
		member("c", RoleAgent, "Bob", "", "a"), // same name, id breaks the tie
		member("d", RoleTeamLeader, "Dina", "", "a"),
	}
	expanded := map[string]bool{"a": true}

	first := Build(members, expanded)
	second := Build(members, expanded)

	assert.Equal(t, ids(first), ids(second))
	assert.Equal(t, []string{"a", "d", "b", "c"}, ids(first))
}

func TestBuild_CollapseRemovesDescendantsButNotSelf(t *testing.T) {
	members := []Member{
		member("a", RoleAdmin, "Alice", "", ""),
		member("b", RoleTeamLeader, "Bob", "", "a"),
		member("c", RoleAgent, "Carol", "", "b"),
	}

	allOpen := Build(members, map[string]bool{"a": true, "b": true})
	require.Equal(t, []string{"a", "b", "c"}, ids(allOpen))

	bCollapsed := Build(members, map[string]bool{"a": true})
	assert.Equal(t, []string{"a", "b"}, ids(bCollapsed))
}

func TestBuild_CyclicDataDoesNotLoop(t *testing.T) {
	// a cycle created outside the application: neither member has a
	// resolvable root, so the pair simply does not render, but the
	// builder must terminate
	members := []Member{
		member("a", RoleAgent, "Ana", "", "b"),
		member("b", RoleAgent, "Bo", "", "a"),
		member("r", RoleAdmin, "Root", "", ""),
	}

	rows := Build(members, map[string]bool{"a": true, "b": true, "r": true})

	assert.Equal(t, []string{"r"}, ids(rows))
}

func TestBuild_SelfReferenceTreatedAsRoot(t *testing.T) {
	members := []Member{
		member("a", RoleAgent, "Ana", "", "a"),
	}

	rows := Build(members, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].Level)
}

func TestBuild_EmptyInput(t *testing.T) {
	rows := Build(nil, nil)
	assert.Empty(t, rows)
}
