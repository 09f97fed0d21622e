// Package query implements pure filtering and ordering over the in-memory
// collections. Nothing here mutates its input; callers get fresh slices.
package query

import (
	"strings"

	"github.com/andy/freelink/internal/domain"
)

// StatusAll is the sentinel status meaning "do not filter by status".
const StatusAll = "all"

// Filter is a set of predicates combined with AND semantics. A zero-value
// predicate (or the StatusAll sentinel) matches every record.
type Filter struct {
	Search   string
	Status   string
	ClientID string
}

// matchStatus applies the status predicate. Comparison is case-sensitive;
// "" and "all" are no-ops.
func (f Filter) matchStatus(status string) bool {
	if f.Status == "" || f.Status == StatusAll {
		return true
	}
	return f.Status == status
}

func (f Filter) matchClientID(clientID string) bool {
	return f.ClientID == "" || f.ClientID == clientID
}

// matchSearch reports whether any of the fields contains the search text,
// case-insensitively. Empty fields never match a non-empty search.
func (f Filter) matchSearch(fields ...string) bool {
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	for _, field := range fields {
		if field != "" && strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// FilterClients returns the clients satisfying all active predicates.
// Search covers name, company, email, phone, and tags.
func FilterClients(clients []*domain.Client, f Filter) []*domain.Client {
	out := make([]*domain.Client, 0, len(clients))
	for _, c := range clients {
		if !f.matchStatus(string(c.Status)) {
			continue
		}
		fields := []string{c.Name, c.Company, c.Email, c.Phone}
		fields = append(fields, c.Tags...)
		if !f.matchSearch(fields...) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FilterInvoices returns the invoices satisfying all active predicates.
// Search covers the invoice id and the denormalized client name.
func FilterInvoices(invoices []*domain.Invoice, f Filter) []*domain.Invoice {
	out := make([]*domain.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if !f.matchStatus(string(inv.Status)) {
			continue
		}
		if !f.matchClientID(inv.ClientID) {
			continue
		}
		if !f.matchSearch(inv.ID, inv.ClientName) {
			continue
		}
		out = append(out, inv)
	}
	return out
}

// FilterProjects returns the projects satisfying all active predicates.
// Search covers the project name and description.
func FilterProjects(projects []*domain.Project, f Filter) []*domain.Project {
	out := make([]*domain.Project, 0, len(projects))
	for _, p := range projects {
		if !f.matchStatus(string(p.Status)) {
			continue
		}
		if !f.matchClientID(p.ClientID) {
			continue
		}
		if !f.matchSearch(p.Name, p.Description) {
			continue
		}
		out = append(out, p)
	}
	return out
}
