package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/billing"
	"github.com/MrJamesThe3rd/rentroll/internal/money"
)

type leasesState int

const (
	leasesStateBrowse leasesState = iota
	leasesStatePayment
	leasesStateTerminate
	leasesStatePreview
)

var statusFilters = []*billing.LeaseStatus{
	nil,
	new(billing.StatusActive),
	new(billing.StatusExpiringSoon),
	new(billing.StatusExpired),
	new(billing.StatusTerminated),
}

// OpenLedgerMsg asks the app to show a tenant's ledger.
type OpenLedgerMsg struct {
	TenantID   uuid.UUID
	TenantName string
}

type LeasesModel struct {
	CommonModel
	billing *billing.Service

	state    leasesState
	table    table.Model
	leases   []*billing.Lease
	tenants  map[uuid.UUID]string
	balances map[uuid.UUID]billing.Balance
	form     *huh.Form

	statusFilterIdx int

	loading bool
	err     error
	status  string

	// Form bindings
	formAmount    string
	formDate      string
	formNote      string
	formDeposit   bool
	formTransfer  string
	formEffective string

	pending billing.SettlementRequest
	preview *billing.Settlement
}

func NewLeasesModel(svc *billing.Service) LeasesModel {
	columns := []table.Column{
		{Title: "Tenant", Width: 20},
		{Title: "Shop", Width: 10},
		{Title: "Rent", Width: 12},
		{Title: "Start", Width: 12},
		{Title: "End", Width: 12},
		{Title: "Status", Width: 14},
		{Title: "Due", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return LeasesModel{
		billing: svc,
		table:   t,
		loading: true,
	}
}

func (m LeasesModel) Title() string { return "Leases" }

func (m LeasesModel) ShortHelp() string {
	switch m.state {
	case leasesStatePayment, leasesStateTerminate:
		return "Navigate form | Esc: cancel"
	case leasesStatePreview:
		return "y: terminate | n/Esc: cancel"
	}

	return "Esc: back | p: payment | g: regenerate | t: terminate | l: ledger | s: status filter | r: refresh"
}

func (m LeasesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m LeasesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadLeasesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.leases = msg.leases
		m.tenants = msg.tenants
		m.balances = msg.balances
		m.refreshTable()

		return m, nil

	case leaseActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.done
		}

		m.reset()

		return m, m.loadCmd()

	case settlementPreviewMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			m.reset()

			return m, nil
		}

		m.preview = msg.settlement
		m.state = leasesStatePreview

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case leasesStateBrowse:
		return m.updateBrowse(msg)
	case leasesStatePayment, leasesStateTerminate:
		return m.updateForm(msg)
	case leasesStatePreview:
		return m.updatePreview(msg)
	}

	return m, nil
}

func (m *LeasesModel) reset() {
	m.state = leasesStateBrowse
	m.form = nil
	m.preview = nil
	m.table.Focus()
}

func (m LeasesModel) selected() *billing.Lease {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.leases) {
		return nil
	}

	return m.leases[idx]
}

func (m LeasesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % len(statusFilters)
			m.loading = true

			return m, m.loadCmd()
		case "p":
			return m.enterPaymentMode()
		case "t":
			return m.enterTerminateMode()
		case "g":
			if lease := m.selected(); lease != nil {
				return m, m.regenerateCmd(lease.ID)
			}
		case "l":
			if lease := m.selected(); lease != nil {
				return m, func() tea.Msg {
					return OpenLedgerMsg{TenantID: lease.TenantID, TenantName: m.tenants[lease.TenantID]}
				}
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func validateAmount(s string) error {
	_, err := money.ParsePositive(s)
	return err
}

func validateOptionalAmount(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return validateAmount(s)
}

func validateDate(s string) error {
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}

	return nil
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return validateDate(s)
}

func (m LeasesModel) enterPaymentMode() (tea.Model, tea.Cmd) {
	lease := m.selected()
	if lease == nil || lease.IsTerminated() {
		return m, nil
	}

	m.formAmount = money.Format(lease.MonthlyRent)
	m.formDate = FormatDate(time.Now())
	m.formNote = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title("Amount").
				Value(&m.formAmount).
				Validate(validateAmount),

			huh.NewInput().
				Key("date").
				Title("Payment Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.formDate).
				Validate(validateDate),

			huh.NewInput().
				Key("note").
				Title("Note").
				Value(&m.formNote),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = leasesStatePayment
	m.table.Blur()

	return m, m.form.Init()
}

func (m LeasesModel) enterTerminateMode() (tea.Model, tea.Cmd) {
	lease := m.selected()
	if lease == nil || lease.IsTerminated() {
		return m, nil
	}

	m.formDeposit = true
	m.formTransfer = ""
	m.formEffective = ""
	m.formNote = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("deposit").
				Title("Use security deposit?").
				Description("Deposit held: "+money.Format(lease.SecurityDeposit-lease.SecurityDepositUsed)).
				Value(&m.formDeposit),

			huh.NewInput().
				Key("transfer").
				Title("Transfer from other leases").
				Description("Leave empty for no transfer").
				Value(&m.formTransfer).
				Validate(validateOptionalAmount),

			huh.NewInput().
				Key("effective").
				Title("Termination Date").
				Placeholder("YYYY-MM-DD, empty for lease end").
				Value(&m.formEffective).
				Validate(validateOptionalDate),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = leasesStateTerminate
	m.table.Blur()

	return m, m.form.Init()
}

func (m LeasesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.reset()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	lease := m.selected()
	if lease == nil {
		m.reset()
		return m, nil
	}

	if m.state == leasesStatePayment {
		return m, m.paymentCmd(lease.ID)
	}

	m.pending = m.settlementRequest()

	return m, m.previewCmd(lease.ID, m.pending)
}

// settlementRequest builds the request from form values that already passed validation.
func (m LeasesModel) settlementRequest() billing.SettlementRequest {
	req := billing.SettlementRequest{UseSecurityDeposit: m.formDeposit}

	if amount, err := money.ParsePositive(m.formTransfer); err == nil {
		req.TransferAmount = &amount
	}

	if date, err := time.Parse(time.DateOnly, m.formEffective); err == nil {
		req.EffectiveDate = &date
	}

	return req
}

func (m LeasesModel) updatePreview(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y":
		if lease := m.selected(); lease != nil {
			return m, m.terminateCmd(lease.ID, m.pending)
		}
	case "n", "esc":
		m.reset()
	}

	return m, nil
}

func (m LeasesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading leases...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	filterLabel := "All"
	if f := statusFilters[m.statusFilterIdx]; f != nil {
		filterLabel = string(*f)
	}

	header := fmt.Sprintf("Filter: [s] Status: %s", activeStyle(filterLabel))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	var panel string

	switch {
	case m.state == leasesStatePreview && m.preview != nil:
		panel = "Settlement Preview\n\n" + renderSettlement(m.preview) + "\n\nTerminate this lease? (y/n)"
	case m.state == leasesStatePayment && m.form != nil:
		panel = "Record Payment\n\n" + m.form.View()
	case m.state == leasesStateTerminate && m.form != nil:
		panel = "Terminate Lease\n\n" + m.form.View()
	}

	if panel != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(panel))
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func renderSettlement(s *billing.Settlement) string {
	lines := []struct {
		label  string
		amount int64
	}{
		{"Opening due", s.OpeningDue},
		{"Invoiced", s.Invoiced},
		{"Paid", s.Paid},
		{"Due", s.DueBeforeTransfers},
		{"Transferred", s.Transferred},
		{"Current due", s.CurrentDue},
		{"Deposit used", s.SecurityDepositUsed},
		{"Deposit refund", s.DepositRefund},
		{"Final settled", s.FinalSettledAmount},
	}

	var sb strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&sb, "%-16s %14s\n", l.label, FormatAmount(l.amount))
	}

	for _, t := range s.Transfers {
		fmt.Fprintf(&sb, "\nfrom lease %s: %s", shortID(t.SourceLeaseID), FormatAmount(t.Amount))
	}

	return strings.TrimRight(sb.String(), "\n")
}

func (m *LeasesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.leases))
	for _, l := range m.leases {
		rows = append(rows, table.Row{
			m.tenants[l.TenantID],
			shortID(l.ShopID),
			FormatAmount(l.MonthlyRent),
			FormatDate(l.StartDate),
			FormatDate(l.EndDate),
			string(l.Status),
			FormatAmount(m.balances[l.ID].Due),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadLeasesMsg struct {
	leases   []*billing.Lease
	tenants  map[uuid.UUID]string
	balances map[uuid.UUID]billing.Balance
	err      error
}

func (m LeasesModel) loadCmd() tea.Cmd {
	filter := billing.LeaseFilter{Status: statusFilters[m.statusFilterIdx]}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		leases, err := m.billing.ListLeases(ctx, filter)
		if err != nil {
			return loadLeasesMsg{err: err}
		}

		tenants, err := m.billing.ListTenants(ctx)
		if err != nil {
			return loadLeasesMsg{err: err}
		}

		names := make(map[uuid.UUID]string, len(tenants))
		for _, t := range tenants {
			names[t.ID] = t.Name
		}

		balances := make(map[uuid.UUID]billing.Balance, len(leases))
		for _, l := range leases {
			b, err := m.billing.LeaseBalance(ctx, l.ID)
			if err != nil {
				return loadLeasesMsg{err: err}
			}

			balances[l.ID] = b
		}

		return loadLeasesMsg{leases: leases, tenants: names, balances: balances}
	}
}

type leaseActionMsg struct {
	done string
	err  error
}

func (m LeasesModel) paymentCmd(leaseID uuid.UUID) tea.Cmd {
	amount, _ := money.ParsePositive(m.formAmount)
	date, _ := time.Parse(time.DateOnly, m.formDate)
	note := m.formNote

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.billing.RecordPayment(ctx, billing.PaymentParams{
			LeaseID:     leaseID,
			Amount:      amount,
			PaymentDate: date,
			Note:        note,
		})

		return leaseActionMsg{done: "Payment of " + FormatAmount(amount) + " recorded", err: err}
	}
}

func (m LeasesModel) regenerateCmd(leaseID uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		err := m.billing.RegenerateInvoices(ctx, leaseID)

		return leaseActionMsg{done: "Invoices regenerated", err: err}
	}
}

type settlementPreviewMsg struct {
	settlement *billing.Settlement
	err        error
}

func (m LeasesModel) previewCmd(leaseID uuid.UUID, req billing.SettlementRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		s, err := m.billing.ComputeSettlement(ctx, leaseID, req)

		return settlementPreviewMsg{settlement: s, err: err}
	}
}

func (m LeasesModel) terminateCmd(leaseID uuid.UUID, req billing.SettlementRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		s, err := m.billing.TerminateLease(ctx, leaseID, req)
		if err != nil {
			return leaseActionMsg{err: err}
		}

		return leaseActionMsg{done: "Lease terminated, final settled amount " + FormatAmount(s.FinalSettledAmount)}
	}
}
