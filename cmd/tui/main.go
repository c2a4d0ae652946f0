package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/carteira-app/carteira/cmd/tui/internal/view"
	"github.com/carteira-app/carteira/internal/analytics"
	"github.com/carteira-app/carteira/internal/config"
	"github.com/carteira-app/carteira/internal/database"
	"github.com/carteira-app/carteira/internal/goal"
	goalStore "github.com/carteira-app/carteira/internal/goal/store"
	"github.com/carteira-app/carteira/internal/space"
	spaceStore "github.com/carteira-app/carteira/internal/space/store"
	"github.com/carteira-app/carteira/internal/transaction"
	txStore "github.com/carteira-app/carteira/internal/transaction/store"
)

type model struct {
	txService   *transaction.Service
	goalService *goal.Service

	currentView View

	dashboardView    view.DashboardModel
	transactionsView view.TransactionsModel
	goalsView        view.GoalsModel
}

type View int

const (
	ViewMenu         View = 0
	ViewDashboard    View = 1
	ViewTransactions View = 2
	ViewGoals        View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	userID, err := uuid.Parse(cfg.TUI.UserID)
	if err != nil {
		slog.Error("TUI_USER_ID must be a valid uuid", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	txSvc := transaction.NewService(txStore.New(db))
	goalSvc := goal.NewService(goalStore.New(db))
	analyticsSvc := analytics.NewService(txSvc, goalSvc)
	spaceSvc := space.NewService(spaceStore.New(db))

	spaceID, err := spaceSvc.ResolveOrCreate(context.Background(), userID)
	if err != nil {
		slog.Error("failed to resolve space", "error", err)
		os.Exit(1)
	}

	return model{
		txService:        txSvc,
		goalService:      goalSvc,
		currentView:      ViewMenu,
		dashboardView:    view.NewDashboardModel(analyticsSvc, spaceID),
		transactionsView: view.NewTransactionsModel(txSvc, spaceID, userID),
		goalsView:        view.NewGoalsModel(goalSvc, spaceID),
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
				m.currentView = ViewDashboard
				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewTransactions
				return m, m.transactionsView.Init()
			case "3":
				m.currentView = ViewGoals
				return m, m.goalsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	case ViewGoals:
		var newModel tea.Model
		newModel, cmd = m.goalsView.Update(msg)
		m.goalsView = newModel.(view.GoalsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Minha Carteira\n\n" +
				"1. Dashboard\n" +
				"2. Movimentacoes\n" +
				"3. Metas\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewTransactions:
		return m.transactionsView.View()
	case ViewGoals:
		return m.goalsView.View()
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
