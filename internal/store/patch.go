package store

import (
	"time"

	"github.com/andy/freelink/internal/domain"
)

// Patches carry partial updates: nil fields are left untouched, set
// fields are shallow-merged into the stored record. The id and creation
// timestamp are never patchable.

type ClientPatch struct {
	Name            *string
	Company         *string
	Email           *string
	Phone           *string
	Status          *domain.ClientStatus
	Tags            *[]string
	Notes           *string
	LastInteraction *time.Time
}

func (p ClientPatch) apply(c *domain.Client) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Company != nil {
		c.Company = *p.Company
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Tags != nil {
		c.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.LastInteraction != nil {
		c.LastInteraction = *p.LastInteraction
	}
}

type ProjectPatch struct {
	Name        *string
	Description *string
	StartDate   *domain.Date
	EndDate     *domain.Date
	Status      *domain.ProjectStatus
	Progress    *int
	Milestones  *[]domain.Milestone
}

func (p ProjectPatch) apply(pr *domain.Project) {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.StartDate != nil {
		pr.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		pr.EndDate = *p.EndDate
	}
	if p.Status != nil {
		pr.Status = *p.Status
	}
	if p.Progress != nil {
		pr.Progress = *p.Progress
	}
	if p.Milestones != nil {
		pr.Milestones = append([]domain.Milestone(nil), (*p.Milestones)...)
	}
}

type InvoicePatch struct {
	ClientID   *string
	ClientName *string
	IssueDate  *domain.Date
	DueDate    *domain.Date
	Status     *domain.InvoiceStatus
	Items      *[]domain.LineItem
	Subtotal   *float64
	Tax        *float64
	Total      *float64
	Payments   *[]domain.Payment
	Notes      *string
}

func (p InvoicePatch) apply(inv *domain.Invoice) {
	if p.ClientID != nil {
		inv.ClientID = *p.ClientID
	}
	if p.ClientName != nil {
		inv.ClientName = *p.ClientName
	}
	if p.IssueDate != nil {
		inv.IssueDate = *p.IssueDate
	}
	if p.DueDate != nil {
		inv.DueDate = *p.DueDate
	}
	if p.Status != nil {
		inv.Status = *p.Status
	}
	if p.Items != nil {
		inv.Items = append([]domain.LineItem(nil), (*p.Items)...)
	}
	if p.Subtotal != nil {
		inv.Subtotal = *p.Subtotal
	}
	if p.Tax != nil {
		inv.Tax = *p.Tax
	}
	if p.Total != nil {
		inv.Total = *p.Total
	}
	if p.Payments != nil {
		inv.Payments = append([]domain.Payment(nil), (*p.Payments)...)
	}
	if p.Notes != nil {
		inv.Notes = *p.Notes
	}
}
