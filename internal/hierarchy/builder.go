package hierarchy

import (
	"sort"
	"strings"
)

// Member is the slice of a user the hierarchy cares about. The service
// layer maps entities onto it so this package stays free of storage
// concerns.
type Member struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	Title     string `json:"title,omitempty"`
	Role      Role   `json:"role"`
	// ReportsTo is the id of the manager; empty means none.
	ReportsTo string `json:"reports_to,omitempty"`
}

func (m Member) FullName() string {
	if m.LastName == "" {
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}

// Row is one rendered line of the reporting-hierarchy table.
type Row struct {
	Member      Member `json:"user"`
	Level       int    `json:"level"`
	IsExpanded  bool   `json:"is_expanded"`
	HasChildren bool   `json:"has_children"`
}

// Build flattens the reporting forest into display order.
//
// A member is a root when it has no manager reference or the reference
// does not resolve inside the given set; a dangling reference promotes
// the member rather than hiding it. Siblings are ordered by role
// priority, then case-insensitive full name. Children of a member are
// emitted depth-first at level+1 only while the member id is present
// in expanded; a collapsed subtree is omitted entirely. HasChildren is
// an existence check and does not depend on expansion.
//
// The computation is pure; neither input is mutated.
func Build(members []Member, expanded map[string]bool) []Row {
	byID := make(map[string]Member, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}

	children := make(map[string][]Member)
	roots := make([]Member, 0)
	for _, m := range members {
		parent := m.ReportsTo
		// a self-reference can only come from bad data; treat it
		// like a dangling reference
		if parent == m.ID {
			parent = ""
		}
		if parent == "" {
			roots = append(roots, m)
			continue
		}
		if _, ok := byID[parent]; !ok {
			roots = append(roots, m)
			continue
		}
		children[parent] = append(children[parent], m)
	}

	sortSiblings(roots)
	for _, kids := range children {
		sortSiblings(kids)
	}

	rows := make([]Row, 0, len(members))
	visited := make(map[string]bool, len(members))

	var walk func(m Member, level int)
	walk = func(m Member, level int) {
		// guards against cycles introduced outside the application
		if visited[m.ID] {
			return
		}
		visited[m.ID] = true

		kids := children[m.ID]
		hasChildren := len(kids) > 0
		isExpanded := hasChildren && expanded[m.ID]

		rows = append(rows, Row{
			Member:      m,
			Level:       level,
			IsExpanded:  isExpanded,
			HasChildren: hasChildren,
		})

		if !isExpanded {
			return
		}
		for _, kid := range kids {
			walk(kid, level+1)
		}
	}

	for _, root := range roots {
		walk(root, 0)
	}

	return rows
}

// sortSiblings orders members at the same tree level: role priority
// ascending, then case-insensitive full name, then id so the order is
// total.
func sortSiblings(members []Member) {
	sort.SliceStable(members, func(i, j int) bool {
		pi, pj := members[i].Role.Priority(), members[j].Role.Priority()
		if pi != pj {
			return pi < pj
		}
		ni, nj := strings.ToLower(members[i].FullName()), strings.ToLower(members[j].FullName())
		if ni != nj {
			return ni < nj
		}
		return members[i].ID < members[j].ID
	})
}
