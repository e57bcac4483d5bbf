package stack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractTicket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{
			name:     "hyphenated ticket",
			input:    "BR-1234-add-feature",
			expected: "BR-1234",
			found:    true,
		},
		{
			name:     "underscore ticket",
			input:    "br_1234_add_feature",
			expected: "br_1234",
			found:    true,
		},
		{
			name:     "no separator",
			input:    "Br1234X",
			expected: "Br1234",
			found:    true,
		},
		{
			name:     "only the leading match is taken",
			input:    "BR-1234-see-also-BR-9999",
			expected: "BR-1234",
			found:    true,
		},
		{
			name:  "no digits",
			input: "feature-branch",
			found: false,
		},
		{
			name:  "starts with digits",
			input: "1234-feature",
			found: false,
		},
		{
			name:  "stacked prefix has no leading ticket",
			input: "stacked/br1234/BR-5555-child",
			found: false,
		},
		{
			name:  "empty name",
			input: "",
			found: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ticket, found := ExtractTicket(tt.input)
			require.Equal(t, tt.found, found)
			require.Equal(t, tt.expected, ticket)
		})
	}
}

func TestNormalizeTicket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "hyphen stripped and lowercased",
			input:    "BR-1234",
			expected: "br1234",
		},
		{
			name:     "underscore stripped",
			input:    "br_1234",
			expected: "br1234",
		},
		{
			name:     "already canonical",
			input:    "br1234",
			expected: "br1234",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, NormalizeTicket(tt.input))
		})
	}
}

func TestNormalizeTicketIdempotent(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"BR-1234", "br_1234", "Br1234", "x-1_Y-2"} {
		once := NormalizeTicket(input)
		require.Equal(t, once, NormalizeTicket(once))
	}
}

func TestNormalizedTicketEquivalence(t *testing.T) {
	t.Parallel()

	// Case and separator variants of the same ticket normalize to one key
	variants := []string{"BR-1234-x", "br_1234_x", "Br1234X"}
	for _, v := range variants {
		require.Equal(t, "br1234", NormalizedTicket(v))
	}

	require.Equal(t, "", NormalizedTicket("no-ticket-here"))
}
