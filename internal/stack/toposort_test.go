package stack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func stackedBranch(name string) Branch {
	return Branch{Name: name, Kind: KindStacked}
}

func names(branches []Branch) []string {
	out := make([]string, len(branches))
	for i, b := range branches {
		out[i] = b.Name
	}
	return out
}

func TestTopologicalSort(t *testing.T) {
	t.Parallel()

	t.Run("parent precedes child", func(t *testing.T) {
		t.Parallel()
		branches := []Branch{
			stackedBranch("grandchild"),
			stackedBranch("child"),
			stackedBranch("parent"),
		}
		parentOf := map[string]string{
			"grandchild": "child",
			"child":      "parent",
		}
		sorted := TopologicalSort(branches, parentOf, nil)
		require.Equal(t, []string{"parent", "child", "grandchild"}, names(sorted))
	})

	t.Run("independent branches keep input order", func(t *testing.T) {
		t.Parallel()
		branches := []Branch{
			stackedBranch("c"),
			stackedBranch("a"),
			stackedBranch("b"),
		}
		sorted := TopologicalSort(branches, map[string]string{}, nil)
		require.Equal(t, []string{"c", "a", "b"}, names(sorted))
	})

	t.Run("parent outside the set carries no constraint", func(t *testing.T) {
		t.Parallel()
		branches := []Branch{stackedBranch("child")}
		parentOf := map[string]string{"child": "BR-1-base"}
		sorted := TopologicalSort(branches, parentOf, nil)
		require.Equal(t, []string{"child"}, names(sorted))
	})

	t.Run("cycle terminates and emits every branch once", func(t *testing.T) {
		t.Parallel()
		branches := []Branch{
			stackedBranch("a"),
			stackedBranch("b"),
			stackedBranch("c"),
		}
		parentOf := map[string]string{
			"a": "b",
			"b": "c",
			"c": "a",
		}

		var cyclic []string
		sorted := TopologicalSort(branches, parentOf, func(branch string) {
			cyclic = append(cyclic, branch)
		})

		require.Len(t, sorted, 3)
		require.ElementsMatch(t, []string{"a", "b", "c"}, names(sorted))
		require.NotEmpty(t, cyclic)

		// With the closing edge dropped the remaining order still holds
		require.Equal(t, []string{"c", "b", "a"}, names(sorted))
	})

	t.Run("shared parent fans out", func(t *testing.T) {
		t.Parallel()
		branches := []Branch{
			stackedBranch("left"),
			stackedBranch("right"),
			stackedBranch("base"),
		}
		parentOf := map[string]string{
			"left":  "base",
			"right": "base",
		}
		sorted := TopologicalSort(branches, parentOf, nil)
		require.Equal(t, []string{"base", "left", "right"}, names(sorted))
	})
}
