package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/billing"
)

type LedgerModel struct {
	CommonModel
	billing *billing.Service

	tenantID   uuid.UUID
	tenantName string

	table   table.Model
	ledger  *billing.Ledger
	loading bool
	err     error
}

func NewLedgerModel(svc *billing.Service, tenantID uuid.UUID, tenantName string) LedgerModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Lease", Width: 10},
			{Title: "Description", Width: 36},
			{Title: "Debit", Width: 12},
			{Title: "Credit", Width: 12},
			{Title: "Balance", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	t.SetStyles(s)

	return LedgerModel{
		billing:    svc,
		tenantID:   tenantID,
		tenantName: tenantName,
		table:      t,
		loading:    true,
	}
}

func (m LedgerModel) Title() string { return "Ledger: " + m.tenantName }

func (m LedgerModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m LedgerModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m LedgerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadLedgerMsg:
		m.loading = false
		m.err = msg.err
		m.ledger = msg.ledger

		if m.ledger != nil {
			m.table.SetRows(ledgerRows(m.ledger))
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func ledgerRows(l *billing.Ledger) []table.Row {
	rows := make([]table.Row, 0, len(l.Rows))
	for _, r := range l.Rows {
		lease := ""
		if r.LeaseID != uuid.Nil {
			lease = shortID(r.LeaseID)
		}

		rows = append(rows, table.Row{
			FormatDate(r.Date),
			lease,
			r.Description,
			blankZero(r.Debit),
			blankZero(r.Credit),
			FormatAmount(r.Balance),
		})
	}

	return rows
}

func blankZero(cents int64) string {
	if cents == 0 {
		return ""
	}

	return FormatAmount(cents)
}

func (m LedgerModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading ledger...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	label := "Balance due"
	if m.ledger.ClosingBalance < 0 {
		label = "Credit"
	}

	footer := fmt.Sprintf("%s: %s", label, activeStyle(FormatAmount(abs(m.ledger.ClosingBalance))))

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).PaddingBottom(1).Render(m.tenantName),
		lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(m.table.View()),
		footer,
	))
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

type loadLedgerMsg struct {
	ledger *billing.Ledger
	err    error
}

func (m LedgerModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		ledger, err := m.billing.BuildTenantLedger(ctx, m.tenantID)

		return loadLedgerMsg{ledger: ledger, err: err}
	}
}
