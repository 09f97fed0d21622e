package app

import (
	"context"
	"fmt"

	"github.com/andy/freelink/internal/auth"
	"github.com/andy/freelink/internal/config"
	"github.com/andy/freelink/internal/pdf"
	"github.com/andy/freelink/internal/service"
	"github.com/andy/freelink/internal/storage"
	"github.com/andy/freelink/internal/store"
)

// App is the dependency injection container for all application components
type App struct {
	Config *config.Config
	Local  *storage.LocalStore

	// Stores
	ClientStore  store.ClientStore
	ProjectStore store.ProjectStore
	InvoiceStore store.InvoiceStore

	// Services
	InvoiceService service.InvoiceService
	PortalService  service.PortalService
	AuthService    auth.Service

	// Concrete stores, kept for seeding and reset
	clientMem  *store.MemClientStore
	projectMem *store.MemProjectStore
	invoiceMem *store.MemInvoiceStore
}

// New creates a new App instance, initializing all dependencies:
// 1. Loading config
// 2. Opening the localstore
// 3. Creating stores
// 4. Creating services
func New(ctx context.Context) (*App, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(ctx, cfg)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	local, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open localstore: %w", err)
	}

	latency := cfg.Store.Latency()
	clientStore, err := store.NewMemClientStore(local, latency)
	if err != nil {
		return nil, err
	}
	projectStore, err := store.NewMemProjectStore(local, latency)
	if err != nil {
		return nil, err
	}
	invoiceStore, err := store.NewMemInvoiceStore(local, latency)
	if err != nil {
		return nil, err
	}

	business := pdf.Business{
		Name:    cfg.Business.Name,
		Email:   cfg.Business.Email,
		Address: cfg.Business.Address,
		Phone:   cfg.Business.Phone,
	}

	invoiceService := service.NewInvoiceService(invoiceStore, clientStore, business)
	portalService := service.NewPortalService(clientStore, projectStore, invoiceStore)
	authService := auth.NewService(auth.DemoAccounts(), local, auth.SystemKeyring{}, latency)

	return &App{
		Config:         cfg,
		Local:          local,
		ClientStore:    clientStore,
		ProjectStore:   projectStore,
		InvoiceStore:   invoiceStore,
		InvoiceService: invoiceService,
		PortalService:  portalService,
		AuthService:    authService,
		clientMem:      clientStore,
		projectMem:     projectStore,
		invoiceMem:     invoiceStore,
	}, nil
}

// Seed loads the demo dataset into the stores, replacing current data.
func (a *App) Seed() error {
	fixtures := store.DemoFixtures()
	if err := a.clientMem.Seed(fixtures.Clients); err != nil {
		return err
	}
	if err := a.projectMem.Seed(fixtures.Projects); err != nil {
		return err
	}
	return a.invoiceMem.Seed(fixtures.Invoices)
}

// Reset clears all stored data.
func (a *App) Reset() error {
	if err := a.clientMem.Seed(nil); err != nil {
		return err
	}
	if err := a.projectMem.Seed(nil); err != nil {
		return err
	}
	return a.invoiceMem.Seed(nil)
}

// DarkMode reads the persisted theme flag.
func (a *App) DarkMode() bool {
	v, _, _ := a.Local.GetString(storage.KeyDarkMode)
	return v == "true"
}

// SetDarkMode persists the theme flag.
func (a *App) SetDarkMode(on bool) error {
	v := "false"
	if on {
		v = "true"
	}
	return a.Local.SetString(storage.KeyDarkMode, v)
}

// SaveConfig saves the current configuration to disk
func (a *App) SaveConfig() error {
	return a.Config.Save(config.DefaultConfigPath())
}
