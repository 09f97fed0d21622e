package query

import (
	"sort"
	"strings"
	"time"

	"github.com/andy/freelink/internal/domain"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort orders a collection by a named field. Unknown fields leave the
// input order untouched.
type Sort struct {
	Field     string
	Direction Direction
}

// Toggle implements the UI contract for clicking a column header: the same
// field flips direction, a new field resets to ascending.
func (s Sort) Toggle(field string) Sort {
	if s.Field == field {
		if s.Direction == Asc {
			return Sort{Field: field, Direction: Desc}
		}
		return Sort{Field: field, Direction: Asc}
	}
	return Sort{Field: field, Direction: Asc}
}

// Sortable field names.
const (
	FieldName            = "name"
	FieldCompany         = "company"
	FieldStatus          = "status"
	FieldCreatedAt       = "createdAt"
	FieldLastInteraction = "lastInteraction"
	FieldID              = "id"
	FieldClientName      = "clientName"
	FieldIssueDate       = "issueDate"
	FieldDueDate         = "dueDate"
	FieldAmount          = "amount"
	FieldStartDate       = "startDate"
	FieldEndDate         = "endDate"
	FieldProgress        = "progress"
)

// compareStrings orders strings case-insensitively. Strings equal under
// folding are ties, so the stable sort keeps their original order.
func compareStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// compareDates orders instants; the zero time sorts first (earliest).
func compareDates(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// stableSort copies the slice and orders it with cmp, honoring direction.
// Ties keep their original relative order in both directions.
func stableSort[T any](list []T, dir Direction, cmp func(a, b T) int) []T {
	out := make([]T, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		if dir == Desc {
			return cmp(out[j], out[i]) < 0
		}
		return cmp(out[i], out[j]) < 0
	})
	return out
}

// SortClients returns a new slice of clients ordered by the sort spec.
func SortClients(clients []*domain.Client, s Sort) []*domain.Client {
	var cmp func(a, b *domain.Client) int
	switch s.Field {
	case FieldName:
		cmp = func(a, b *domain.Client) int { return compareStrings(a.Name, b.Name) }
	case FieldCompany:
		cmp = func(a, b *domain.Client) int { return compareStrings(a.Company, b.Company) }
	case FieldStatus:
		cmp = func(a, b *domain.Client) int { return compareStrings(string(a.Status), string(b.Status)) }
	case FieldCreatedAt:
		cmp = func(a, b *domain.Client) int { return compareDates(a.CreatedAt, b.CreatedAt) }
	case FieldLastInteraction:
		cmp = func(a, b *domain.Client) int { return compareDates(a.LastInteraction, b.LastInteraction) }
	default:
		out := make([]*domain.Client, len(clients))
		copy(out, clients)
		return out
	}
	return stableSort(clients, s.Direction, cmp)
}

// SortInvoices returns a new slice of invoices ordered by the sort spec.
// FieldAmount orders by total.
func SortInvoices(invoices []*domain.Invoice, s Sort) []*domain.Invoice {
	var cmp func(a, b *domain.Invoice) int
	switch s.Field {
	case FieldID:
		cmp = func(a, b *domain.Invoice) int { return compareStrings(a.ID, b.ID) }
	case FieldClientName:
		cmp = func(a, b *domain.Invoice) int { return compareStrings(a.ClientName, b.ClientName) }
	case FieldStatus:
		cmp = func(a, b *domain.Invoice) int { return compareStrings(string(a.Status), string(b.Status)) }
	case FieldIssueDate:
		cmp = func(a, b *domain.Invoice) int { return compareDates(a.IssueDate.Time, b.IssueDate.Time) }
	case FieldDueDate:
		cmp = func(a, b *domain.Invoice) int { return compareDates(a.DueDate.Time, b.DueDate.Time) }
	case FieldAmount:
		cmp = func(a, b *domain.Invoice) int { return compareFloats(a.Total, b.Total) }
	default:
		out := make([]*domain.Invoice, len(invoices))
		copy(out, invoices)
		return out
	}
	return stableSort(invoices, s.Direction, cmp)
}

// SortProjects returns a new slice of projects ordered by the sort spec.
func SortProjects(projects []*domain.Project, s Sort) []*domain.Project {
	var cmp func(a, b *domain.Project) int
	switch s.Field {
	case FieldName:
		cmp = func(a, b *domain.Project) int { return compareStrings(a.Name, b.Name) }
	case FieldStatus:
		cmp = func(a, b *domain.Project) int { return compareStrings(string(a.Status), string(b.Status)) }
	case FieldStartDate:
		cmp = func(a, b *domain.Project) int { return compareDates(a.StartDate.Time, b.StartDate.Time) }
	case FieldEndDate:
		cmp = func(a, b *domain.Project) int { return compareDates(a.EndDate.Time, b.EndDate.Time) }
	case FieldProgress:
		cmp = func(a, b *domain.Project) int { return compareFloats(float64(a.Progress), float64(b.Progress)) }
	default:
		out := make([]*domain.Project, len(projects))
		copy(out, projects)
		return out
	}
	return stableSort(projects, s.Direction, cmp)
}
