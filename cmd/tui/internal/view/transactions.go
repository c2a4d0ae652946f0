package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/carteira-app/carteira/internal/transaction"
)

type txState int

const (
	txStateBrowse txState = iota
	txStateAdd
)

type TransactionsModel struct {
	CommonModel
	txService *transaction.Service
	spaceID   uuid.UUID
	profileID uuid.UUID

	state txState
	table table.Model
	txs   []*transaction.Transaction
	form  *huh.Form

	// Month offset cycled with d: 0 current, 1 previous, 2 all time.
	dateFilterIdx int

	loading bool
	err     error
	status  string

	// Form bindings
	formDesc     string
	formAmount   string
	formCategory string
	formType     string
	formDate     string
}

func NewTransactionsModel(txSvc *transaction.Service, spaceID, profileID uuid.UUID) TransactionsModel {
	columns := []table.Column{
		{Title: "Data", Width: 12},
		{Title: "Tipo", Width: 9},
		{Title: "Valor", Width: 14},
		{Title: "Categoria", Width: 16},
		{Title: "Descricao", Width: 36},
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

	return TransactionsModel{
		txService: txSvc,
		spaceID:   spaceID,
		profileID: profileID,
		table:     t,
		loading:   true,
	}
}

func (m TransactionsModel) Title() string { return "Movimentacoes" }
func (m TransactionsModel) ShortHelp() string {
	if m.state == txStateAdd {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | a: add | x: delete | d: date filter | r: refresh"
}

func (m TransactionsModel) Init() tea.Cmd {
	return m.loadTxsCmd()
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadTxsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.txs = msg.txs
		m.refreshTable()
		return m, nil

	case txSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = "Saved."
		}
		m.state = txStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadTxsCmd()

	case txDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error deleting: %v", msg.err)
		}
		return m, m.loadTxsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case txStateBrowse:
		return m.updateBrowse(msg)
	case txStateAdd:
		return m.updateAdd(msg)
	}

	return m, nil
}

func (m TransactionsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadTxsCmd()
		case "a":
			return m.enterAddMode()
		case "x":
			return m, m.deleteCmd()
		case "d":
			m.dateFilterIdx = (m.dateFilterIdx + 1) % 3
			m.loading = true
			return m, m.loadTxsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m TransactionsModel) enterAddMode() (tea.Model, tea.Cmd) {
	m.formDesc = ""
	m.formAmount = ""
	m.formCategory = ""
	m.formType = string(transaction.TypeExpense)
	m.formDate = FormatDate(time.Now())

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("description").
				Title("Descricao").
				Value(&m.formDesc).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("descricao obrigatoria")
					}
					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title("Valor (R$)").
				Placeholder("123.45").
				Value(&m.formAmount).
				Validate(func(s string) error {
					if _, err := parseAmount(s); err != nil {
						return fmt.Errorf("valor invalido")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("type").
				Title("Tipo").
				Options(
					huh.NewOption("Despesa", string(transaction.TypeExpense)),
					huh.NewOption("Receita", string(transaction.TypeIncome)),
				).
				Value(&m.formType),

			huh.NewInput().
				Key("category").
				Title("Categoria").
				Placeholder("Outros").
				Value(&m.formCategory),

			huh.NewInput().
				Key("date").
				Title("Data").
				Placeholder("2025-01-31").
				Value(&m.formDate).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, s); err != nil {
						return fmt.Errorf("use o formato AAAA-MM-DD")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = txStateAdd
	m.table.Blur()
	return m, m.form.Init()
}

func (m TransactionsModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = txStateBrowse
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

	return m, m.saveCmd()
}

func (m TransactionsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Carregando movimentacoes...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	dateLabels := []string{"Este mes", "Mes passado", "Tudo"}

	header := fmt.Sprintf("Filtro: [d] Periodo: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(dateLabels[m.dateFilterIdx]))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == txStateAdd && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("Nova movimentacao\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *TransactionsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))
	for _, tx := range m.txs {
		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			string(tx.Type),
			FormatAmount(tx.Amount),
			tx.Category,
			tx.Description,
		})
	}
	m.table.SetRows(rows)
}

func (m TransactionsModel) filter() transaction.Filter {
	now := time.Now()

	switch m.dateFilterIdx {
	case 0:
		s := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return transaction.Filter{Start: s, End: s.AddDate(0, 1, -1)}
	case 1:
		s := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, time.UTC)
		return transaction.Filter{Start: s, End: s.AddDate(0, 1, -1)}
	}

	return transaction.Filter{}
}

// parseAmount turns a reais string like "123.45" or "123,45" into cents.
func parseAmount(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}

	return int64(value*100 + 0.5), nil
}

// Messages

type loadTxsMsg struct {
	txs []*transaction.Transaction
	err error
}

func (m TransactionsModel) loadTxsCmd() tea.Cmd {
	filter := m.filter()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.txService.List(ctx, m.spaceID, filter)
		return loadTxsMsg{txs: txs, err: err}
	}
}

type txSavedMsg struct {
	err error
}

func (m TransactionsModel) saveCmd() tea.Cmd {
	amount, err := parseAmount(m.formAmount)
	if err != nil {
		return func() tea.Msg { return txSavedMsg{err: err} }
	}

	date, err := time.Parse(time.DateOnly, m.formDate)
	if err != nil {
		return func() tea.Msg { return txSavedMsg{err: err} }
	}

	category := m.formCategory
	if category == "" {
		category = "Outros"
	}

	params := transaction.CreateParams{
		SpaceID:     m.spaceID,
		ProfileID:   m.profileID,
		Amount:      amount,
		Description: m.formDesc,
		Category:    category,
		Type:        transaction.Type(m.formType),
		Date:        date,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.txService.Create(ctx, params)
		return txSavedMsg{err: err}
	}
}

type txDeletedMsg struct {
	err error
}

func (m TransactionsModel) deleteCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.txs) {
		return nil
	}

	id := m.txs[idx].ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return txDeletedMsg{err: m.txService.Delete(ctx, id)}
	}
}
