package hierarchy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartNodes_ParentOmittedForRoots(t *testing.T) {
	members := []Member{
		member("a", RoleAdmin, "Alice", "Reed", ""),
		member("b", RoleAgent, "Bob", "Stone", "a"),
	}

	nodes := ChartNodes(members)

	require.Len(t, nodes, 2)
	assert.Equal(t, "a", nodes[0].Key)
	assert.Empty(t, nodes[0].Parent)
	assert.Equal(t, "a", nodes[1].Parent)
	assert.Equal(t, "Alice Reed", nodes[0].Name)

	// the widget expects the parent field to be absent, not null
	raw, err := json.Marshal(nodes[0])
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"parent"`)
}

func TestChartNodes_DanglingReferenceDropped(t *testing.T) {
	members := []Member{
		member("d", RoleTeamLeader, "Dina", "", "ghost-id"),
	}

	nodes := ChartNodes(members)

	require.Len(t, nodes, 1)
	assert.Empty(t, nodes[0].Parent)
}

func TestChartReparent_MoveUnderNewManager(t *testing.T) {
	members := []Member{
		member("a", RoleAdmin, "Alice", "", ""),
		member("b", RoleTeamLeader, "Bob", "", "a"),
		member("c", RoleAgent, "Carol", "", "a"),
	}
	chart := NewChart(members)

	err := chart.Reparent("c", "b")
	require.NoError(t, err)

	parent, ok := chart.Parent("c")
	require.True(t, ok)
	assert.Equal(t, "b", parent)
}

func TestChartReparent_SelfRejected(t *testing.T) {
	chart := NewChart([]Member{
		member("a", RoleAdmin, "Alice", "", ""),
	})

	err := chart.Reparent("a", "a")
	assert.ErrorIs(t, err, ErrSelfParent)
}

func TestChartReparent_CycleRejected(t *testing.T) {
	// b reports to a; moving a under b would close a cycle
	members := []Member{
		member("a", RoleAdmin, "Alice", "", ""),
		member("b", RoleAgent, "Bob", "", "a"),
	}
	chart := NewChart(members)

	err := chart.Reparent("a", "b")
	assert.ErrorIs(t, err, ErrCycleDetected)

	// parent pointer unchanged
	_, ok := chart.Parent("a")
	assert.False(t, ok)
	parent, ok := chart.Parent("b")
	require.True(t, ok)
	assert.Equal(t, "a", parent)
}

func TestChartReparent_DeepCycleRejected(t *testing.T) {
	members := []Member{
		member("a", RoleAdmin, "Alice", "", ""),
		member("b", RoleContactCenterManager, "Bob", "", "a"),
		member("c", RoleTeamLeader, "Carol", "", "b"),
		member("d", RoleAgent, "Dave", "", "c"),
	}
	chart := NewChart(members)

	err := chart.Reparent("a", "d")
	assert.ErrorIs(t, err, ErrCycleDetected)
}

func TestChartReparent_UnknownMemberRejected(t *testing.T) {
	chart := NewChart([]Member{
		member("a", RoleAdmin, "Alice", "", ""),
	})

	assert.ErrorIs(t, chart.Reparent("a", "nope"), ErrUnknownMember)
	assert.ErrorIs(t, chart.Reparent("nope", "a"), ErrUnknownMember)
}
