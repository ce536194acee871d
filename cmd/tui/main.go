package main

import (
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/rentroll/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/rentroll/internal/billing"
	billingStore "github.com/MrJamesThe3rd/rentroll/internal/billing/store"
	"github.com/MrJamesThe3rd/rentroll/internal/config"
	"github.com/MrJamesThe3rd/rentroll/internal/database"
	"github.com/MrJamesThe3rd/rentroll/internal/export"
	"github.com/MrJamesThe3rd/rentroll/internal/ownership"
	ownershipStore "github.com/MrJamesThe3rd/rentroll/internal/ownership/store"
)

type model struct {
	billingService   *billing.Service
	ownershipService *ownership.Service
	exportService    *export.Service
	now              func() time.Time

	currentView View

	leasesView view.LeasesModel
	ledgerView view.LedgerModel
	reportView view.ReportModel
	exportView view.ExportModel
}

type View int

const (
	ViewMenu   View = 0
	ViewLeases View = 1
	ViewLedger View = 2
	ViewReport View = 3
	ViewExport View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	clock, err := cfg.Clock()
	if err != nil {
		slog.Error("failed to load billing timezone", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	billingSvc := billing.NewService(billingStore.New(db),
		billing.WithClock(clock),
		billing.WithExpiringSoonWindow(cfg.Billing.ExpiringSoonWindow),
	)
	ownershipSvc := ownership.NewService(ownershipStore.New(db))
	exportSvc := export.NewService(billingSvc)

	return model{
		billingService:   billingSvc,
		ownershipService: ownershipSvc,
		exportService:    exportSvc,
		now:              clock,
		currentView:      ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewLeases
				m.leasesView = view.NewLeasesModel(m.billingService)

				return m, m.leasesView.Init()
			case "2":
				m.currentView = ViewReport
				m.reportView = view.NewReportModel(m.ownershipService, m.now)

				return m, m.reportView.Init()
			case "3":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService, m.billingService)

				return m, m.exportView.Init()
			}
		}
	case view.OpenLedgerMsg:
		m.currentView = ViewLedger
		m.ledgerView = view.NewLedgerModel(m.billingService, msg.TenantID, msg.TenantName)

		return m, m.ledgerView.Init()
	case view.BackMsg:
		if m.currentView == ViewLedger {
			m.currentView = ViewLeases
			return m, m.leasesView.Init()
		}

		m.currentView = ViewMenu

		return m, nil
	}

	switch m.currentView {
	case ViewLeases:
		var newModel tea.Model
		newModel, cmd = m.leasesView.Update(msg)
		m.leasesView = newModel.(view.LeasesModel)
	case ViewLedger:
		var newModel tea.Model
		newModel, cmd = m.ledgerView.Update(msg)
		m.ledgerView = newModel.(view.LedgerModel)
	case ViewReport:
		var newModel tea.Model
		newModel, cmd = m.reportView.Update(msg)
		m.reportView = newModel.(view.ReportModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Rentroll TUI\n\n" +
				"1. Leases\n" +
				"2. Owner Report\n" +
				"3. Export Statements\n\n" +
				"q. Quit",
		)
	case ViewLeases:
		return m.leasesView.View()
	case ViewLedger:
		return m.ledgerView.View()
	case ViewReport:
		return m.reportView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
