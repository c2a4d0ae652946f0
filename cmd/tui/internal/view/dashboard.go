package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/carteira-app/carteira/internal/analytics"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	incomeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	expenseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	boxStyle     = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

type DashboardModel struct {
	CommonModel
	analyticsService *analytics.Service
	spaceID          uuid.UUID

	summary analytics.Summary
	loading bool
	err     error
}

func NewDashboardModel(analyticsSvc *analytics.Service, spaceID uuid.UUID) DashboardModel {
	return DashboardModel{
		analyticsService: analyticsSvc,
		spaceID:          spaceID,
		loading:          true,
	}
}

func (m DashboardModel) Title() string     { return "Dashboard" }
func (m DashboardModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m DashboardModel) Init() tea.Cmd {
	return m.loadSummaryCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadSummaryMsg:
		m.loading = false
		m.summary = msg.summary
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadSummaryCmd()
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Carregando resumo...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	s := m.summary

	totals := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Este mes"),
		labelStyle.Render("Receitas:  ")+incomeStyle.Render(FormatAmount(s.TotalIncome)),
		labelStyle.Render("Despesas:  ")+expenseStyle.Render(FormatAmount(s.TotalExpense)),
		labelStyle.Render("Investido: ")+FormatAmount(s.TotalInvested),
		labelStyle.Render("Saldo:     ")+FormatAmount(s.AvailableBalance),
	))

	var categories strings.Builder

	categories.WriteString(titleStyle.Render("Top categorias") + "\n")
	for _, ct := range s.TopCategories {
		categories.WriteString(fmt.Sprintf("%-16s %s\n", ct.Category, FormatAmount(ct.Total)))
	}

	forecast := fmt.Sprintf("Previsao de gastos: %s (%s)",
		FormatAmount(s.Forecast.ForecastedSpend), forecastLabel(s.Forecast.Status))

	var insights strings.Builder
	for _, in := range s.Insights {
		insights.WriteString("- " + in.Message + "\n")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		totals,
		"",
		boxStyle.Render(strings.TrimRight(categories.String(), "\n")),
		"",
		forecast,
		"",
		strings.TrimRight(insights.String(), "\n"),
		"",
		labelStyle.Render(m.ShortHelp()),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func forecastLabel(status analytics.ForecastStatus) string {
	switch status {
	case analytics.StatusDanger:
		return expenseStyle.Render("perigo")
	case analytics.StatusWarning:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render("atencao")
	case analytics.StatusSafe:
		return incomeStyle.Render("tranquilo")
	}

	return labelStyle.Render("sem renda")
}

type loadSummaryMsg struct {
	summary analytics.Summary
	err     error
}

func (m DashboardModel) loadSummaryCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		summary, err := m.analyticsService.Summary(ctx, m.spaceID)
		return loadSummaryMsg{summary: summary, err: err}
	}
}
