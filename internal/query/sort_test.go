package query

import (
	"testing"
	"time"

	"github.com/andy/freelink/internal/domain"
)

func TestSortClientsByName(t *testing.T) {
	clients := []*domain.Client{
		{ID: "1", Name: "charlie"},
		{ID: "2", Name: "Alice"},
		{ID: "3", Name: "bob"},
	}

	got := SortClients(clients, Sort{Field: FieldName, Direction: Asc})
	if got[0].Name != "Alice" || got[1].Name != "bob" || got[2].Name != "charlie" {
		t.Errorf("asc order: %s, %s, %s", got[0].Name, got[1].Name, got[2].Name)
	}

	got = SortClients(clients, Sort{Field: FieldName, Direction: Desc})
	if got[0].Name != "charlie" || got[2].Name != "Alice" {
		t.Errorf("desc order: %s, %s, %s", got[0].Name, got[1].Name, got[2].Name)
	}

	// Input order untouched
	if clients[0].Name != "charlie" {
		t.Error("sort mutated its input slice")
	}
}

func TestSortStability(t *testing.T) {
	// A has the highest total; B and C tie. Ties must keep insertion
	// order in both directions.
	invoices := []*domain.Invoice{
		{ID: "A", Total: 300},
		{ID: "B", Total: 100},
		{ID: "C", Total: 100},
	}

	asc := SortInvoices(invoices, Sort{Field: FieldAmount, Direction: Asc})
	if asc[0].ID != "B" || asc[1].ID != "C" || asc[2].ID != "A" {
		t.Errorf("asc: got %s, %s, %s; want B, C, A", asc[0].ID, asc[1].ID, asc[2].ID)
	}

	desc := SortInvoices(invoices, Sort{Field: FieldAmount, Direction: Desc})
	if desc[0].ID != "A" || desc[1].ID != "B" || desc[2].ID != "C" {
		t.Errorf("desc: got %s, %s, %s; want A, B, C", desc[0].ID, desc[1].ID, desc[2].ID)
	}
}

func TestSortCaseInsensitiveTiesAreStable(t *testing.T) {
	clients := []*domain.Client{
		{ID: "1", Name: "ACME"},
		{ID: "2", Name: "acme"},
		{ID: "3", Name: "Acme"},
	}

	got := SortClients(clients, Sort{Field: FieldName, Direction: Asc})
	if got[0].ID != "1" || got[1].ID != "2" || got[2].ID != "3" {
		t.Errorf("case-folded ties reordered: %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestSortZeroDatesFirst(t *testing.T) {
	projects := []*domain.Project{
		{ID: "1", EndDate: domain.NewDate(2026, time.June, 1)},
		{ID: "2"}, // no end date
		{ID: "3", EndDate: domain.NewDate(2026, time.January, 1)},
	}

	got := SortProjects(projects, Sort{Field: FieldEndDate, Direction: Asc})
	if got[0].ID != "2" || got[1].ID != "3" || got[2].ID != "1" {
		t.Errorf("got %s, %s, %s; want 2, 3, 1", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestSortUnknownFieldKeepsOrder(t *testing.T) {
	clients := []*domain.Client{
		{ID: "2", Name: "b"},
		{ID: "1", Name: "a"},
	}

	got := SortClients(clients, Sort{Field: "bogus", Direction: Asc})
	if got[0].ID != "2" || got[1].ID != "1" {
		t.Errorf("unknown field reordered: %s, %s", got[0].ID, got[1].ID)
	}

	// Still a copy, not the same backing array
	got[0] = nil
	if clients[0] == nil {
		t.Error("unknown-field sort returned the input slice")
	}
}

func TestSortToggle(t *testing.T) {
	s := Sort{Field: FieldName, Direction: Asc}

	s = s.Toggle(FieldName)
	if s.Direction != Desc {
		t.Errorf("toggling the same field should flip to desc, got %s", s.Direction)
	}

	s = s.Toggle(FieldName)
	if s.Direction != Asc {
		t.Errorf("toggling again should flip back to asc, got %s", s.Direction)
	}

	s = Sort{Field: FieldName, Direction: Desc}
	s = s.Toggle(FieldCompany)
	if s.Field != FieldCompany || s.Direction != Asc {
		t.Errorf("toggling a new field should reset to asc, got %+v", s)
	}
}
