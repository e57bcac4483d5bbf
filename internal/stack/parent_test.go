package stack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveParent(t *testing.T) {
	t.Parallel()

	child := Branch{
		Name:         "stacked/br1234/BR-5555-child",
		Kind:         KindStacked,
		Ticket:       "br5555",
		ParentTicket: "br1234",
	}

	t.Run("regular candidate wins over stacked", func(t *testing.T) {
		t.Parallel()
		all := []Branch{
			{Name: "stacked/br9/BR-1234-mid", Kind: KindStacked, Ticket: "br1234", ParentTicket: "br9"},
			{Name: "BR-1234-base", Kind: KindRegular, Ticket: "br1234"},
			child,
		}
		parent, ambiguous, found := ResolveParent(child, all)
		require.True(t, found)
		require.False(t, ambiguous)
		require.Equal(t, "BR-1234-base", parent)
	})

	t.Run("ignored candidate still resolves", func(t *testing.T) {
		t.Parallel()
		all := []Branch{
			{Name: "BR-1234-wip-base", Kind: KindIgnored, Ticket: "br1234", IgnoreReason: "matches exclusion pattern wip"},
			child,
		}
		parent, ambiguous, found := ResolveParent(child, all)
		require.True(t, found)
		require.False(t, ambiguous)
		require.Equal(t, "BR-1234-wip-base", parent)
	})

	t.Run("single stacked candidate is not ambiguous", func(t *testing.T) {
		t.Parallel()
		all := []Branch{
			{Name: "stacked/br9/BR-1234-only", Kind: KindStacked, Ticket: "br1234", ParentTicket: "br9"},
			child,
		}
		parent, ambiguous, found := ResolveParent(child, all)
		require.True(t, found)
		require.False(t, ambiguous)
		require.Equal(t, "stacked/br9/BR-1234-only", parent)
	})

	t.Run("stacked-only candidates are ambiguous", func(t *testing.T) {
		t.Parallel()
		all := []Branch{
			{Name: "stacked/br9/BR-1234-first", Kind: KindStacked, Ticket: "br1234", ParentTicket: "br9"},
			{Name: "stacked/br8/BR-1234-second", Kind: KindStacked, Ticket: "br1234", ParentTicket: "br8"},
			child,
		}
		parent, ambiguous, found := ResolveParent(child, all)
		require.True(t, found)
		require.True(t, ambiguous)
		require.Equal(t, "stacked/br9/BR-1234-first", parent)
	})

	t.Run("no candidate", func(t *testing.T) {
		t.Parallel()
		all := []Branch{
			{Name: "BR-9999-other", Kind: KindRegular, Ticket: "br9999"},
			child,
		}
		_, _, found := ResolveParent(child, all)
		require.False(t, found)
	})

	t.Run("branch never matches itself", func(t *testing.T) {
		t.Parallel()
		self := Branch{
			Name:         "stacked/br5555/BR-5555-loop",
			Kind:         KindStacked,
			Ticket:       "br5555",
			ParentTicket: "br5555",
		}
		_, _, found := ResolveParent(self, []Branch{self})
		require.False(t, found)
	})

	t.Run("non-stacked branches have no parent", func(t *testing.T) {
		t.Parallel()
		regular := Branch{Name: "BR-1234-base", Kind: KindRegular, Ticket: "br1234"}
		_, _, found := ResolveParent(regular, []Branch{regular, child})
		require.False(t, found)
	})
}
