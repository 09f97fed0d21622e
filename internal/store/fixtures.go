package store

import (
	"time"

	"github.com/andy/freelink/internal/domain"
)

// Fixtures is the demo dataset loaded by `freelink seed`. The records
// mirror the sample data the app ships with so a fresh install has
// something to show.
type Fixtures struct {
	Clients  []*domain.Client
	Projects []*domain.Project
	Invoices []*domain.Invoice
}

// DemoFixtures returns the demo dataset.
func DemoFixtures() Fixtures {
	return Fixtures{
		Clients:  demoClients(),
		Projects: demoProjects(),
		Invoices: demoInvoices(),
	}
}

func demoClients() []*domain.Client {
	return []*domain.Client{
		{
			ID:              "1",
			Name:            "Jane Cooper",
			Company:         "Acme Inc",
			Email:           "jane.cooper@example.com",
			Phone:           "+1 (555) 123-4567",
			Status:          domain.ClientStatusActive,
			Tags:            []string{"design", "website"},
			Notes:           "Website redesign project",
			CreatedAt:       time.Date(2023, 5, 15, 8, 30, 0, 0, time.UTC),
			LastInteraction: time.Date(2023, 9, 12, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:              "2",
			Name:            "Michael Johnson",
			Company:         "XYZ Corporation",
			Email:           "michael.johnson@example.com",
			Phone:           "+1 (555) 987-6543",
			Status:          domain.ClientStatusActive,
			Tags:            []string{"seo", "marketing"},
			Notes:           "Ongoing monthly SEO services",
			CreatedAt:       time.Date(2023, 6, 20, 10, 15, 0, 0, time.UTC),
			LastInteraction: time.Date(2023, 9, 5, 16, 30, 0, 0, time.UTC),
		},
		{
			ID:        "3",
			Name:      "Sarah Williams",
			Company:   "Innovative Solutions",
			Email:     "sarah.williams@example.com",
			Phone:     "+1 (555) 567-8901",
			Status:    domain.ClientStatusInactive,
			Notes:     "Project completed, may need maintenance in the future",
			CreatedAt: time.Date(2023, 3, 10, 14, 45, 0, 0, time.UTC),
		},
		{
			ID:        "4",
			Name:      "Robert Brown",
			Company:   "Tech Startups Ltd",
			Email:     "robert.brown@example.com",
			Phone:     "+1 (555) 234-5678",
			Status:    domain.ClientStatusLead,
			Tags:      []string{"mobile"},
			Notes:     "Interested in mobile app development",
			CreatedAt: time.Date(2023, 8, 5, 9, 0, 0, 0, time.UTC),
		},
	}
}

func demoProjects() []*domain.Project {
	return []*domain.Project{
		{
			ID:          "1",
			ClientID:    "1",
			Name:        "Website Redesign",
			Description: "Complete overhaul of company website with new branding and improved user experience.",
			StartDate:   domain.NewDate(2023, 8, 1),
			EndDate:     domain.NewDate(2023, 10, 30),
			Status:      domain.ProjectStatusActive,
			Progress:    65,
			Milestones: []domain.Milestone{
				{Name: "Design Approval", Completed: true, Date: domain.NewDate(2023, 8, 15)},
				{Name: "Homepage Development", Completed: true, Date: domain.NewDate(2023, 9, 1)},
				{Name: "Content Migration", Completed: false, Date: domain.NewDate(2023, 9, 30)},
				{Name: "Testing & Launch", Completed: false, Date: domain.NewDate(2023, 10, 25)},
			},
		},
		{
			ID:          "2",
			ClientID:    "2",
			Name:        "Mobile App Development",
			Description: "Native mobile application for iOS and Android platforms with customer loyalty features.",
			StartDate:   domain.NewDate(2023, 9, 15),
			EndDate:     domain.NewDate(2023, 12, 15),
			Status:      domain.ProjectStatusActive,
			Progress:    30,
			Milestones: []domain.Milestone{
				{Name: "Requirements Gathering", Completed: true, Date: domain.NewDate(2023, 9, 30)},
				{Name: "UI/UX Design", Completed: true, Date: domain.NewDate(2023, 10, 15)},
				{Name: "Core Functionality", Completed: false, Date: domain.NewDate(2023, 11, 15)},
				{Name: "Beta Testing", Completed: false, Date: domain.NewDate(2023, 12, 1)},
				{Name: "App Store Submission", Completed: false, Date: domain.NewDate(2023, 12, 10)},
			},
		},
	}
}

func demoInvoices() []*domain.Invoice {
	return []*domain.Invoice{
		{
			ID:         "INV-2023-001",
			ClientID:   "1",
			ClientName: "Acme Inc",
			IssueDate:  domain.NewDate(2023, 9, 1),
			DueDate:    domain.NewDate(2023, 9, 15),
			Status:     domain.InvoiceStatusPaid,
			Items: []domain.LineItem{
				{Description: "Website Development", Quantity: 25, Rate: 100, Amount: 2500},
			},
			Subtotal: 2500,
			Tax:      0,
			Total:    2500,
			Payments: []domain.Payment{
				{Date: domain.NewDate(2023, 9, 10), Amount: 2500, Method: domain.PaymentMethodBankTransfer, Reference: "REF123456"},
			},
			Notes: "Thank you for your business!",
		},
		{
			ID:         "INV-2023-002",
			ClientID:   "2",
			ClientName: "XYZ Corporation",
			IssueDate:  domain.NewDate(2023, 9, 5),
			DueDate:    domain.NewDate(2023, 9, 19),
			Status:     domain.InvoiceStatusPending,
			Items: []domain.LineItem{
				{Description: "UI/UX Design", Quantity: 20, Rate: 120, Amount: 2400},
				{Description: "Front-end Development", Quantity: 10, Rate: 140, Amount: 1400},
			},
			Subtotal: 3800,
			Tax:      200,
			Total:    4000,
			Payments: []domain.Payment{},
			Notes:    "Net 14 payment terms",
		},
		{
			ID:         "INV-2023-003",
			ClientID:   "3",
			ClientName: "Innovative Solutions",
			IssueDate:  domain.NewDate(2023, 9, 10),
			DueDate:    domain.NewDate(2023, 10, 10),
			Status:     domain.InvoiceStatusOverdue,
			Items: []domain.LineItem{
				{Description: "Content Writing", Quantity: 8, Rate: 150, Amount: 1200},
			},
			Subtotal: 1200,
			Tax:      0,
			Total:    1200,
			Payments: []domain.Payment{},
			Notes:    "Please remit payment within terms",
		},
		{
			ID:         "INV-2023-004",
			ClientID:   "1",
			ClientName: "Acme Inc",
			IssueDate:  domain.NewDate(2023, 9, 20),
			DueDate:    domain.NewDate(2023, 10, 4),
			Status:     domain.InvoiceStatusDraft,
			Items: []domain.LineItem{
				{Description: "SEO Audit", Quantity: 6, Rate: 125, Amount: 750},
			},
			Subtotal: 750,
			Tax:      37.5,
			Total:    787.5,
			Payments: []domain.Payment{},
		},
	}
}
