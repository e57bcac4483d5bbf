package stack

// ResolveParent maps a stacked branch to the local branch owning its parent
// ticket. Every other branch whose normalized ticket equals the stacked
// branch's parent ticket is a candidate; a non-stacked branch wins over
// stacked candidates, otherwise the first candidate in enumeration order is
// taken, with ambiguous reported when more than one matched so the caller
// can warn.
//
// found is false when no candidate matches; the caller falls back to treating
// the branch as parentless.
func ResolveParent(branch Branch, all []Branch) (parent string, ambiguous, found bool) {
	if branch.Kind != KindStacked || branch.ParentTicket == "" {
		return "", false, false
	}

	var candidates []Branch
	for _, candidate := range all {
		if candidate.Name == branch.Name {
			continue
		}
		if candidate.Ticket == "" || candidate.Ticket != branch.ParentTicket {
			continue
		}
		candidates = append(candidates, candidate)
	}

	if len(candidates) == 0 {
		return "", false, false
	}

	for _, candidate := range candidates {
		if candidate.Kind != KindStacked {
			return candidate.Name, false, true
		}
	}

	// Only stacked candidates match; the first encountered wins
	return candidates[0].Name, len(candidates) > 1, true
}
