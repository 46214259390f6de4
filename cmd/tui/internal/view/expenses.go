package view

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/openvol/fundledger/internal/expense"
	"github.com/openvol/fundledger/internal/ledger"
)

type expenseState int

const (
	expenseStateBrowse expenseState = iota
	expenseStateConfirm
)

type ExpenseModel struct {
	CommonModel
	svc        *expense.Service
	reviewerID string

	state    expenseState
	table    table.Model
	expenses []*expense.Expense

	form            *huh.Form
	pendingDecision expense.Decision
	confirmed       bool

	loading bool
	status  string
}

func NewExpenseModel(svc *expense.Service, reviewerID string) ExpenseModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Entity", Width: 28},
		{Title: "Title", Width: 30},
		{Title: "Category", Width: 14},
		{Title: "Amount", Width: 12},
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

	return ExpenseModel{
		svc:        svc,
		reviewerID: reviewerID,
		table:      t,
		loading:    true,
	}
}

func (m ExpenseModel) Init() tea.Cmd {
	return m.loadPendingCmd()
}

func (m ExpenseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadExpensesMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error loading expenses: %v", msg.err)
			return m, nil
		}

		m.expenses = msg.expenses
		m.refreshTable()

		return m, nil

	case decideExpenseMsg:
		if msg.err != nil {
			m.status = decisionErrorStatus(msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("Expense %s.", msg.decision+"d")
		m.loading = true

		return m, m.loadPendingCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case expenseStateBrowse:
		return m.updateBrowse(msg)
	case expenseStateConfirm:
		return m.updateConfirm(msg)
	}

	return m, nil
}

func (m ExpenseModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadPendingCmd()
		case "a":
			return m.enterConfirm(expense.DecisionApprove)
		case "x":
			return m.enterConfirm(expense.DecisionReject)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ExpenseModel) enterConfirm(decision expense.Decision) (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.expenses) {
		return m, nil
	}

	e := m.expenses[idx]
	m.pendingDecision = decision
	m.confirmed = false
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(fmt.Sprintf("%s expense %q (%s) against %s?",
					decision, e.Title, FormatAmount(e.Amount), e.Entity.String())).
				Affirmative("Yes").
				Negative("No").
				Value(&m.confirmed),
		),
	).WithWidth(60).WithShowHelp(false)

	m.state = expenseStateConfirm
	m.table.Blur()

	return m, m.form.Init()
}

func (m ExpenseModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = expenseStateBrowse
			m.form = nil
			m.table.Focus()

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

	m.state = expenseStateBrowse
	m.form = nil
	m.table.Focus()

	if !m.confirmed {
		return m, nil
	}

	return m, m.decideCmd(m.pendingDecision)
}

func (m ExpenseModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading pending expenses...")
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	help := "(a: approve, x: reject, r: refresh, esc: back)"
	content := lipgloss.JoinVertical(lipgloss.Left, tableView, help)

	if m.state == expenseStateConfirm && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(64).
			Render(m.form.View())

		content = lipgloss.JoinVertical(lipgloss.Left, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *ExpenseModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.expenses))
	for _, e := range m.expenses {
		rows = append(rows, table.Row{
			FormatDate(e.CreatedAt),
			e.Entity.String(),
			e.Title,
			e.Category,
			FormatAmount(e.Amount),
		})
	}

	m.table.SetRows(rows)
}

func decisionErrorStatus(err error) string {
	var insufficient *ledger.InsufficientFundsError
	if errors.As(err, &insufficient) {
		return fmt.Sprintf("Insufficient funds: short %s (have %s, need %s)",
			FormatAmount(insufficient.Shortfall()),
			FormatAmount(insufficient.Available),
			FormatAmount(insufficient.Requested),
		)
	}

	return fmt.Sprintf("Error deciding expense: %v", err)
}

type loadExpensesMsg struct {
	expenses []*expense.Expense
	err      error
}

func (m ExpenseModel) loadPendingCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		es, err := m.svc.ListPending(ctx, reviewQueueSize)

		return loadExpensesMsg{expenses: es, err: err}
	}
}

type decideExpenseMsg struct {
	decision expense.Decision
	err      error
}

func (m ExpenseModel) decideCmd(decision expense.Decision) tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.expenses) {
		return nil
	}

	id := m.expenses[idx].ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.svc.Decide(ctx, id, decision, m.reviewerID)

		return decideExpenseMsg{decision: decision, err: err}
	}
}
