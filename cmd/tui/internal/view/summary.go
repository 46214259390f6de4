package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/openvol/fundledger/internal/fund"
	"github.com/openvol/fundledger/internal/summary"
)

type SummaryModel struct {
	CommonModel
	registry *fund.Registry
	svc      *summary.Service

	kindInput  textinput.Model
	idInput    textinput.Model
	focusIndex int

	account *fund.Account
	result  *summary.Summary

	loading bool
	status  string
}

func NewSummaryModel(registry *fund.Registry, svc *summary.Service) SummaryModel {
	kindIn := textinput.New()
	kindIn.Placeholder = "wing | campaign | direct_aid | central"
	kindIn.Width = 40
	kindIn.Prompt = "Kind: "
	kindIn.Focus()

	idIn := textinput.New()
	idIn.Placeholder = "00000000-0000-0000-0000-000000000000"
	idIn.CharLimit = 36
	idIn.Width = 40
	idIn.Prompt = "ID:   "

	return SummaryModel{
		registry:  registry,
		svc:       svc,
		kindInput: kindIn,
		idInput:   idIn,
		status:    "Enter an account to summarize",
	}
}

func (m SummaryModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SummaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.Type {
		case tea.KeyEsc:
			return m, Back

		case tea.KeyTab, tea.KeyShiftTab:
			m.focusIndex = (m.focusIndex + 1) % 2
			if m.focusIndex == 0 {
				m.kindInput.Focus()
				m.idInput.Blur()
			} else {
				m.kindInput.Blur()
				m.idInput.Focus()
			}

			return m, textinput.Blink

		case tea.KeyEnter:
			if m.focusIndex == 0 {
				m.focusIndex = 1
				m.kindInput.Blur()
				m.idInput.Focus()

				return m, textinput.Blink
			}

			id, err := uuid.Parse(m.idInput.Value())
			if err != nil {
				m.status = "Invalid account ID (expected a UUID)"
				return m, nil
			}

			m.loading = true
			m.status = "Loading summary..."

			return m, m.summarizeCmd(fund.Kind(m.kindInput.Value()), id)
		}

	case summaryResultMsg:
		m.loading = false
		if msg.err != nil {
			m.result = nil
			m.status = fmt.Sprintf("Error: %v", msg.err)

			break
		}

		m.account = msg.account
		m.result = msg.summary
		m.status = ""
	}

	var cmd1, cmd2 tea.Cmd
	m.kindInput, cmd1 = m.kindInput.Update(msg)
	m.idInput, cmd2 = m.idInput.Update(msg)

	return m, tea.Batch(cmd1, cmd2)
}

func (m SummaryModel) View() string {
	content := fmt.Sprintf("Account Summary\n\n%s\n%s\n", m.kindInput.View(), m.idInput.View())

	if m.status != "" {
		content += "\n" + m.status + "\n"
	}

	if m.result != nil {
		content += fmt.Sprintf(
			"\n%s (%s)\n\nBalance:           %s\nTotal In:          %s\nTotal Out:         %s\nPending Donations: %s\nPending Expenses:  %s\n",
			m.account.Name,
			m.account.Ref.String(),
			FormatAmount(m.result.Balance),
			FormatAmount(m.result.TotalIn),
			FormatAmount(m.result.TotalOut),
			FormatAmount(m.result.PendingDonationTotal),
			FormatAmount(m.result.PendingExpenseTotal),
		)
	}

	content += "\n(Enter to load, Tab to switch, Esc to back)"

	return lipgloss.NewStyle().Padding(2).Render(content)
}

type summaryResultMsg struct {
	account *fund.Account
	summary *summary.Summary
	err     error
}

func (m SummaryModel) summarizeCmd(kind fund.Kind, id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		acct, err := m.registry.Resolve(ctx, kind, id)
		if err != nil {
			return summaryResultMsg{err: err}
		}

		s, err := m.svc.Summarize(ctx, acct.Ref)

		return summaryResultMsg{account: acct, summary: s, err: err}
	}
}
