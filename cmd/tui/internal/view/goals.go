package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/carteira-app/carteira/internal/goal"
)

type goalState int

const (
	goalStateBrowse goalState = iota
	goalStateDeposit
)

type GoalsModel struct {
	CommonModel
	goalService *goal.Service
	spaceID     uuid.UUID

	state goalState
	table table.Model
	goals []*goal.Goal
	form  *huh.Form

	loading bool
	err     error
	status  string

	formAmount string
}

func NewGoalsModel(goalSvc *goal.Service, spaceID uuid.UUID) GoalsModel {
	columns := []table.Column{
		{Title: "Meta", Width: 28},
		{Title: "Guardado", Width: 14},
		{Title: "Alvo", Width: 14},
		{Title: "Progresso", Width: 10},
		{Title: "Status", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
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

	return GoalsModel{
		goalService: goalSvc,
		spaceID:     spaceID,
		table:       t,
		loading:     true,
	}
}

func (m GoalsModel) Title() string { return "Metas" }
func (m GoalsModel) ShortHelp() string {
	if m.state == goalStateDeposit {
		return "Enter: confirm | Esc: cancel"
	}
	return "Esc: back | g: guardar | r: refresh"
}

func (m GoalsModel) Init() tea.Cmd {
	return m.loadGoalsCmd()
}

func (m GoalsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadGoalsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.goals = msg.goals
		m.refreshTable()
		return m, nil

	case depositMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = "Guardado."
		}
		m.state = goalStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadGoalsCmd()
	}

	switch m.state {
	case goalStateBrowse:
		return m.updateBrowse(msg)
	case goalStateDeposit:
		return m.updateDeposit(msg)
	}

	return m, nil
}

func (m GoalsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadGoalsCmd()
		case "g":
			return m.enterDepositMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m GoalsModel) enterDepositMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.goals) {
		return m, nil
	}

	m.formAmount = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title("Quanto guardar (R$)").
				Placeholder("50.00").
				Value(&m.formAmount).
				Validate(func(s string) error {
					if _, err := parseAmount(s); err != nil {
						return fmt.Errorf("valor invalido")
					}
					return nil
				}),
		),
	).WithWidth(40).WithShowHelp(false)

	m.state = goalStateDeposit
	m.table.Blur()
	return m, m.form.Init()
}

func (m GoalsModel) updateDeposit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = goalStateBrowse
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

	return m, m.depositCmd()
}

func (m GoalsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Carregando metas...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

	if m.state == goalStateDeposit && m.form != nil {
		idx := m.table.Cursor()
		title := ""
		if idx >= 0 && idx < len(m.goals) {
			title = m.goals[idx].Title
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(44).
			Render(fmt.Sprintf("Guardar em: %s\n\n%s", title, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *GoalsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.goals))
	for _, g := range m.goals {
		title := g.Title
		if g.Icon != "" {
			title = g.Icon + " " + title
		}

		rows = append(rows, table.Row{
			title,
			FormatAmount(g.CurrentAmount),
			FormatAmount(g.TargetAmount),
			fmt.Sprintf("%.0f%%", g.Progress()),
			string(g.Status),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadGoalsMsg struct {
	goals []*goal.Goal
	err   error
}

func (m GoalsModel) loadGoalsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		goals, err := m.goalService.List(ctx, m.spaceID)
		return loadGoalsMsg{goals: goals, err: err}
	}
}

type depositMsg struct {
	err error
}

func (m GoalsModel) depositCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.goals) {
		return nil
	}

	id := m.goals[idx].ID

	amount, err := parseAmount(m.formAmount)
	if err != nil {
		return func() tea.Msg { return depositMsg{err: err} }
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.goalService.Deposit(ctx, id, amount)
		return depositMsg{err: err}
	}
}
