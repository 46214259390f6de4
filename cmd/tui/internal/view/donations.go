package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/openvol/fundledger/internal/donation"
)

const reviewQueueSize = 50

type donationState int

const (
	donationStateLoading donationState = iota
	donationStateReviewing
	donationStateConfirming
)

type DonationModel struct {
	CommonModel
	svc        *donation.Service
	reviewerID string

	state   donationState
	queue   []*donation.Donation
	current *donation.Donation

	form            *huh.Form
	pendingDecision donation.Decision
	confirmed       bool

	status     string
	totalCount int
}

func NewDonationModel(svc *donation.Service, reviewerID string) DonationModel {
	return DonationModel{
		svc:        svc,
		reviewerID: reviewerID,
		state:      donationStateLoading,
		status:     "Loading pending donations...",
	}
}

func (m DonationModel) Init() tea.Cmd {
	return m.loadPendingCmd()
}

func (m DonationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadDonationsMsg:
		if msg.err != nil {
			m.state = donationStateReviewing
			m.status = fmt.Sprintf("Error loading donations: %v", msg.err)
			return m, nil
		}

		m.queue = msg.donations
		m.totalCount = len(m.queue)
		m.state = donationStateReviewing
		m.nextDonation()

		return m, nil

	case decideDonationMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error deciding donation: %v", msg.err)
			return m, nil
		}

		m.nextDonation()

		return m, nil

	case tea.KeyMsg:
		if m.state == donationStateLoading {
			return m, nil
		}

		if m.state == donationStateConfirming {
			if msg.Type == tea.KeyEsc {
				m.state = donationStateReviewing
				m.form = nil

				return m, nil
			}

			break
		}

		switch msg.String() {
		case "esc", "q":
			return m, Back
		case "a":
			if m.current != nil {
				return m.enterConfirm(donation.DecisionApprove)
			}
		case "r":
			if m.current != nil {
				return m.enterConfirm(donation.DecisionReject)
			}
		case "s":
			if m.current != nil {
				m.nextDonation()
				return m, nil
			}
		}
	}

	if m.state == donationStateConfirming && m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		if m.form.State != huh.StateCompleted {
			return m, cmd
		}

		m.state = donationStateReviewing
		m.form = nil

		if !m.confirmed {
			return m, nil
		}

		return m, m.decideCmd(m.pendingDecision)
	}

	return m, nil
}

func (m DonationModel) View() string {
	if m.state == donationStateLoading {
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	}

	if m.current == nil {
		return lipgloss.NewStyle().Padding(2).Render(m.status + "\n\n(Esc to back)")
	}

	d := m.current
	info := fmt.Sprintf(
		"Donor:    %s\nTarget:   %s\nAmount:   %s\nMethod:   %s\nRef:      %s\nDate:     %s",
		d.DisplayName(),
		d.Target.String(),
		FormatAmount(d.Amount),
		d.PaymentMethod,
		d.ExternalRef,
		FormatDate(d.CreatedAt),
	)

	content := fmt.Sprintf("%s\n\n%s\n\n(a: approve, r: reject, s: skip, esc: back)", m.status, info)

	if m.state == donationStateConfirming && m.form != nil {
		content += "\n\n" + m.form.View()
	}

	return lipgloss.NewStyle().Padding(2).Render(content)
}

func (m DonationModel) enterConfirm(decision donation.Decision) (tea.Model, tea.Cmd) {
	m.pendingDecision = decision
	m.confirmed = false
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(fmt.Sprintf("%s donation of %s from %s?",
					decision, FormatAmount(m.current.Amount), m.current.DisplayName())).
				Affirmative("Yes").
				Negative("No").
				Value(&m.confirmed),
		),
	).WithWidth(60).WithShowHelp(false)
	m.state = donationStateConfirming

	return m, m.form.Init()
}

func (m *DonationModel) nextDonation() {
	if len(m.queue) == 0 {
		m.current = nil
		m.status = "No pending donations left."

		return
	}

	m.current = m.queue[0]
	m.queue = m.queue[1:]

	currentIdx := m.totalCount - len(m.queue)
	m.status = fmt.Sprintf("Reviewing %d/%d", currentIdx, m.totalCount)
}

type loadDonationsMsg struct {
	donations []*donation.Donation
	err       error
}

func (m DonationModel) loadPendingCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		ds, err := m.svc.ListPending(ctx, reviewQueueSize)

		return loadDonationsMsg{donations: ds, err: err}
	}
}

type decideDonationMsg struct {
	err error
}

func (m DonationModel) decideCmd(decision donation.Decision) tea.Cmd {
	id := m.current.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.svc.Decide(ctx, id, decision, m.reviewerID)

		return decideDonationMsg{err: err}
	}
}
