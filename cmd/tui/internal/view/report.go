package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/ownership"
)

type reportState int

const (
	reportStateLoading reportState = iota
	reportStateOwner
	reportStateTimeframe
	reportStateResult
)

type ReportModel struct {
	CommonModel
	ownership *ownership.Service

	state           reportState
	form            *huh.Form
	timeframePicker TimeframePicker

	ownerID uuid.UUID
	report  *ownership.OwnerReport
	err     error
}

func NewReportModel(svc *ownership.Service, now func() time.Time) ReportModel {
	return ReportModel{
		ownership:       svc,
		state:           reportStateLoading,
		timeframePicker: NewTimeframePicker(TimeframeThisMonth, now),
	}
}

func (m ReportModel) Title() string { return "Owner Report" }

func (m ReportModel) ShortHelp() string {
	if m.state == reportStateResult {
		return "Esc: back | n: new period"
	}

	return "Esc: back | Enter: confirm"
}

func (m ReportModel) Init() tea.Cmd {
	return m.loadOwnersCmd()
}

func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadOwnersMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = reportStateResult

			return m, nil
		}

		if len(msg.owners) == 0 {
			m.err = ownership.ErrNoOwners
			m.state = reportStateResult

			return m, nil
		}

		m.form = m.buildOwnerForm(msg.owners)
		m.state = reportStateOwner

		return m, m.form.Init()

	case TimeframeSelectedMsg:
		return m, m.reportCmd(msg.Start, msg.End)

	case reportResultMsg:
		m.report = msg.report
		m.err = msg.err
		m.state = reportStateResult

		return m, nil
	}

	switch m.state {
	case reportStateOwner:
		return m.updateOwner(msg)
	case reportStateTimeframe:
		return m.updateTimeframe(msg)
	case reportStateResult:
		return m.updateResult(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	return m, nil
}

func (m ReportModel) buildOwnerForm(owners []*ownership.Owner) *huh.Form {
	options := make([]huh.Option[uuid.UUID], len(owners))
	for i, o := range owners {
		options[i] = huh.NewOption(o.Name, o.ID)
	}

	selected := owners[0].ID

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[uuid.UUID]().
				Key("owner").
				Title("Owner").
				Options(options...).
				Value(&selected),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ReportModel) updateOwner(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.ownerID = m.form.Get("owner").(uuid.UUID)
	m.state = reportStateTimeframe
	m.timeframePicker.Reset()

	return m, nil
}

func (m ReportModel) updateTimeframe(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc && m.timeframePicker.IsSelecting() {
			return m, Back
		}
	}

	var cmd tea.Cmd
	m.timeframePicker, cmd = m.timeframePicker.Update(msg)

	return m, cmd
}

func (m ReportModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "n":
		if m.report != nil {
			m.state = reportStateTimeframe
			m.timeframePicker.Reset()
		}
	}

	return m, nil
}

func (m ReportModel) View() string {
	switch m.state {
	case reportStateLoading:
		return lipgloss.NewStyle().Padding(2).Render("Loading owners...")
	case reportStateOwner:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	case reportStateTimeframe:
		return lipgloss.NewStyle().Padding(1).Render(m.timeframePicker.View())
	case reportStateResult:
		if m.err != nil {
			return lipgloss.NewStyle().Padding(1).Render(
				lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)),
			)
		}

		return lipgloss.NewStyle().Padding(1).Render(RenderReport(m.report))
	}

	return ""
}

// RenderReport lays an owner report out as plain text.
func RenderReport(r *ownership.OwnerReport) string {
	var sb strings.Builder

	header := lipgloss.NewStyle().Bold(true).Render(r.Owner.Name)
	fmt.Fprintf(&sb, "%s  %s to %s (%d owners)\n\n", header, FormatDate(r.From), FormatDate(r.To), r.OwnerCount)

	fmt.Fprintf(&sb, "%-10s %-7s %14s %14s\n", "Shop", "Type", "Collected", "Share")
	for _, line := range r.Shops {
		fmt.Fprintf(&sb, "%-10s %-7s %14s %14s\n",
			line.ShopNumber, line.Type, FormatAmount(line.Collected), FormatAmount(line.Share))
	}

	sb.WriteString("\n")

	totals := []struct {
		label  string
		amount int64
	}{
		{"Rent collected", r.RentCollected},
		{"Own expenses", r.OwnExpenses},
		{"Common expenses", r.CommonExpenses},
		{"Net income", r.NetIncome},
		{"Banked", r.Banked},
		{"Unbanked", r.Unbanked},
		{"Deposits held", r.DepositsHeld},
	}

	for _, t := range totals {
		fmt.Fprintf(&sb, "%-18s %14s\n", t.label, FormatAmount(t.amount))
	}

	return strings.TrimRight(sb.String(), "\n")
}

type loadOwnersMsg struct {
	owners []*ownership.Owner
	err    error
}

func (m ReportModel) loadOwnersCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		owners, err := m.ownership.ListOwners(ctx)

		return loadOwnersMsg{owners: owners, err: err}
	}
}

type reportResultMsg struct {
	report *ownership.OwnerReport
	err    error
}

func (m ReportModel) reportCmd(from, to time.Time) tea.Cmd {
	ownerID := m.ownerID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		report, err := m.ownership.OwnerReport(ctx, ownerID, from, to)

		return reportResultMsg{report: report, err: err}
	}
}
