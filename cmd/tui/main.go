package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/openvol/fundledger/cmd/tui/internal/view"
	"github.com/openvol/fundledger/internal/activity"
	"github.com/openvol/fundledger/internal/config"
	"github.com/openvol/fundledger/internal/database"
	"github.com/openvol/fundledger/internal/donation"
	donationStore "github.com/openvol/fundledger/internal/donation/store"
	"github.com/openvol/fundledger/internal/expense"
	expenseStore "github.com/openvol/fundledger/internal/expense/store"
	"github.com/openvol/fundledger/internal/fund"
	fundStore "github.com/openvol/fundledger/internal/fund/store"
	ledgerStore "github.com/openvol/fundledger/internal/ledger/store"
	"github.com/openvol/fundledger/internal/logging"
	"github.com/openvol/fundledger/internal/summary"
	summaryStore "github.com/openvol/fundledger/internal/summary/store"
)

type model struct {
	donationService *donation.Service
	expenseService  *expense.Service
	summaryService  *summary.Service
	registry        *fund.Registry
	reviewerID      string

	currentView View

	donationView view.DonationModel
	expenseView  view.ExpenseModel
	summaryView  view.SummaryModel
}

type View int

const (
	ViewMenu     View = 0
	ViewDonation View = 1
	ViewExpense  View = 2
	ViewSummary  View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	log := logging.New(cfg.App.Env)

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	sink := activity.NewLogSink(log)
	registry := fund.NewRegistry(fundStore.New(db))
	donationSvc := donation.NewService(donationStore.New(db), registry, sink)
	expenseSvc := expense.NewService(expenseStore.New(db), registry, sink)
	summarySvc := summary.NewService(
		ledgerStore.New(db),
		donationSvc,
		expenseSvc,
		summaryStore.New(db),
		log,
	)

	reviewerID := cfg.Review.ReviewerID

	return model{
		donationService: donationSvc,
		expenseService:  expenseSvc,
		summaryService:  summarySvc,
		registry:        registry,
		reviewerID:      reviewerID,
		currentView:     ViewMenu,
		donationView:    view.NewDonationModel(donationSvc, reviewerID),
		expenseView:     view.NewExpenseModel(expenseSvc, reviewerID),
		summaryView:     view.NewSummaryModel(registry, summarySvc),
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
				m.currentView = ViewDonation
				m.donationView = view.NewDonationModel(m.donationService, m.reviewerID)

				return m, m.donationView.Init()
			case "2":
				m.currentView = ViewExpense
				m.expenseView = view.NewExpenseModel(m.expenseService, m.reviewerID)

				return m, m.expenseView.Init()
			case "3":
				m.currentView = ViewSummary
				m.summaryView = view.NewSummaryModel(m.registry, m.summaryService)

				return m, m.summaryView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDonation:
		var newModel tea.Model
		newModel, cmd = m.donationView.Update(msg)
		m.donationView = newModel.(view.DonationModel)
	case ViewExpense:
		var newModel tea.Model
		newModel, cmd = m.expenseView.Update(msg)
		m.expenseView = newModel.(view.ExpenseModel)
	case ViewSummary:
		var newModel tea.Model
		newModel, cmd = m.summaryView.Update(msg)
		m.summaryView = newModel.(view.SummaryModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Fund Ledger TUI\n\n" +
				"1. Review Pending Donations\n" +
				"2. Review Pending Expenses\n" +
				"3. Account Summary\n\n" +
				"q. Quit",
		)
	case ViewDonation:
		return m.donationView.View()
	case ViewExpense:
		return m.expenseView.View()
	case ViewSummary:
		return m.summaryView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to run TUI:", err)
		os.Exit(1)
	}
}
