package hierarchy

import "errors"

var (
	ErrSelfParent    = errors.New("a member cannot report to themselves")
	ErrCycleDetected = errors.New("reassignment would create a reporting cycle")
	ErrUnknownMember = errors.New("unknown member")
)

// ChartNode is the parent-keyed node record consumed by the tree
// diagram widget. Parent is omitted, not null, for roots.
type ChartNode struct {
	Key    string `json:"key"`
	Parent string `json:"parent,omitempty"`
	Name   string `json:"name"`
	Title  string `json:"title,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   Role   `json:"role"`
}

// ChartNodes converts the member set into diagram node data. A manager
// reference that does not resolve inside the set is dropped, which
// turns the member into a root. Output order is deterministic.
func ChartNodes(members []Member) []ChartNode {
	sorted := make([]Member, len(members))
	copy(sorted, members)
	sortSiblings(sorted)

	byID := make(map[string]bool, len(sorted))
	for _, m := range sorted {
		byID[m.ID] = true
	}

	nodes := make([]ChartNode, 0, len(sorted))
	for _, m := range sorted {
		parent := m.ReportsTo
		if parent == m.ID || !byID[parent] {
			parent = ""
		}
		nodes = append(nodes, ChartNode{
			Key:    m.ID,
			Parent: parent,
			Name:   m.FullName(),
			Title:  m.Title,
			Email:  m.Email,
			Role:   m.Role,
		})
	}
	return nodes
}

// Chart holds the in-memory parent pointers behind the org-chart
// widget and validates interactive reparenting against them.
type Chart struct {
	parents map[string]string
	ids     map[string]bool
}

func NewChart(members []Member) *Chart {
	c := &Chart{
		parents: make(map[string]string, len(members)),
		ids:     make(map[string]bool, len(members)),
	}
	for _, m := range members {
		c.ids[m.ID] = true
	}
	for _, m := range members {
		if m.ReportsTo != "" && m.ReportsTo != m.ID && c.ids[m.ReportsTo] {
			c.parents[m.ID] = m.ReportsTo
		}
	}
	return c
}

// Parent returns the current manager of a member, if any.
func (c *Chart) Parent(id string) (string, bool) {
	p, ok := c.parents[id]
	return p, ok
}

// Reparent moves member id under newManagerID. The move is rejected
// when the two are the same node or when the new manager is already a
// descendant of the member, since accepting the edge would close a
// cycle. On rejection the existing parent pointer is left untouched.
// Only the in-memory chart is mutated; persisting the change is the
// caller's job.
func (c *Chart) Reparent(id, newManagerID string) error {
	if !c.ids[id] || !c.ids[newManagerID] {
		return ErrUnknownMember
	}
	if id == newManagerID {
		return ErrSelfParent
	}
	if c.isDescendant(newManagerID, id) {
		return ErrCycleDetected
	}
	c.parents[id] = newManagerID
	return nil
}

// isDescendant reports whether node is in the subtree rooted at
// ancestor, following parent pointers upward. The step limit keeps a
// corrupted chain from looping forever.
func (c *Chart) isDescendant(node, ancestor string) bool {
	current := node
	for steps := 0; steps <= len(c.ids); steps++ {
		parent, ok := c.parents[current]
		if !ok {
			return false
		}
		if parent == ancestor {
			return true
		}
		current = parent
	}
	return false
}
