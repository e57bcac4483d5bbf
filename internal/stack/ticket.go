// Package stack classifies local branches, resolves stacked-branch parents
// via ticket identifiers, and orders stacked branches by dependency.
package stack

import (
	"regexp"
	"strings"
)

// ticketRegex matches the leading ticket token of a branch name:
// letters, an optional separator, digits. "BR-1234-x", "br_1234_x" and
// "Br1234X" all carry the same ticket.
var ticketRegex = regexp.MustCompile(`^[A-Za-z]+[-_]?[0-9]+`)

// ExtractTicket parses the leading ticket identifier out of a branch name.
// Returns false when the name does not start with one; never errors.
func ExtractTicket(branchName string) (string, bool) {
	ticket := ticketRegex.FindString(branchName)
	if ticket == "" {
		return "", false
	}
	return ticket, true
}

// NormalizeTicket canonicalizes a ticket for comparison: hyphens and
// underscores stripped, lowercased. Idempotent.
func NormalizeTicket(ticket string) string {
	ticket = strings.ReplaceAll(ticket, "-", "")
	ticket = strings.ReplaceAll(ticket, "_", "")
	return strings.ToLower(ticket)
}

// NormalizedTicket extracts and normalizes in one step, returning "" when the
// name carries no ticket.
func NormalizedTicket(branchName string) string {
	ticket, ok := ExtractTicket(branchName)
	if !ok {
		return ""
	}
	return NormalizeTicket(ticket)
}
