package stack

// visitState is the three-color marking of the dependency DFS
type visitState int

const (
	unvisited visitState = iota
	inProgress
	visited
)

// TopologicalSort orders stacked branches so that a branch always appears
// after its parent when that parent is itself in the input. Parents outside
// the input carry no ordering constraint. Ties among independent subtrees
// keep input order.
//
// A cycle does not abort the sort: the closing edge is treated as absent,
// onCycle (if non-nil) is called with the branch whose parent edge was
// dropped, and every branch is still emitted exactly once.
func TopologicalSort(branches []Branch, parentOf map[string]string, onCycle func(branch string)) []Branch {
	byName := make(map[string]Branch, len(branches))
	state := make(map[string]visitState, len(branches))
	for _, b := range branches {
		byName[b.Name] = b
		state[b.Name] = unvisited
	}

	sorted := make([]Branch, 0, len(branches))

	var visit func(name string)
	visit = func(name string) {
		switch state[name] {
		case visited:
			return
		case inProgress:
			if onCycle != nil {
				onCycle(name)
			}
			return
		}

		state[name] = inProgress
		if parent, ok := parentOf[name]; ok {
			if _, inSet := byName[parent]; inSet {
				visit(parent)
			}
		}
		state[name] = visited
		sorted = append(sorted, byName[name])
	}

	for _, b := range branches {
		visit(b.Name)
	}

	return sorted
}
