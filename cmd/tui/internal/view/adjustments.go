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

	"github.com/bullseye-app/bullseye/internal/budget"
)

type adjustmentsState int

const (
	adjustmentsStateBrowse adjustmentsState = iota
	adjustmentsStateSchedule
)

// AdjustmentsModel lists scheduled limit changes and lets the user schedule,
// cancel and apply them.
type AdjustmentsModel struct {
	CommonModel
	budgetService *budget.Service

	state       adjustmentsState
	table       table.Model
	adjustments []*budget.Adjustment
	pendingOnly bool
	form        *huh.Form
	loading     bool
	status      string
	err         error

	formCategory string
	formLimit    string
	formMonth    string
	formReason   string
}

func NewAdjustmentsModel(budgetSvc *budget.Service) AdjustmentsModel {
	columns := []table.Column{
		{Title: "Category", Width: 18},
		{Title: "Current", Width: 10},
		{Title: "New", Width: 10},
		{Title: "Kind", Width: 10},
		{Title: "Effective", Width: 10},
		{Title: "Applied", Width: 8},
		{Title: "Reason", Width: 24},
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

	return AdjustmentsModel{
		budgetService: budgetSvc,
		table:         t,
		pendingOnly:   true,
	}
}

func (m AdjustmentsModel) Title() string { return "Scheduled Adjustments" }

func (m AdjustmentsModel) ShortHelp() string {
	if m.state == adjustmentsStateSchedule {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | n: schedule | c: cancel selected | a: apply due | p: toggle pending | r: refresh"
}

func (m AdjustmentsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m AdjustmentsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case adjustmentsLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.adjustments = msg.adjustments
		m.refreshTable()

		return m, nil

	case adjustmentsActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.status
		}

		m.state = adjustmentsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case adjustmentsStateBrowse:
		return m.updateBrowse(msg)
	case adjustmentsStateSchedule:
		return m.updateSchedule(msg)
	}

	return m, nil
}

func (m AdjustmentsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "p":
			m.pendingOnly = !m.pendingOnly
			m.loading = true
			return m, m.loadCmd()
		case "n":
			return m.startSchedule()
		case "c":
			return m, m.cancelCmd()
		case "a":
			return m, m.applyDueCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m AdjustmentsModel) startSchedule() (tea.Model, tea.Cmd) {
	next := time.Now().AddDate(0, 1, 0)

	m.formCategory = ""
	m.formLimit = ""
	m.formMonth = fmt.Sprintf("%04d-%02d", next.Year(), int(next.Month()))
	m.formReason = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("category").
				Title("Category").
				Value(&m.formCategory).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("category cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("limit").
				Title("New monthly limit").
				Placeholder("250.00").
				Value(&m.formLimit).
				Validate(func(s string) error {
					_, err := parseCents(s)
					return err
				}),

			huh.NewInput().
				Key("month").
				Title("Effective month").
				Placeholder("YYYY-MM").
				Value(&m.formMonth).
				Validate(func(s string) error {
					_, _, err := parseYearMonth(s)
					return err
				}),

			huh.NewInput().
				Key("reason").
				Title("Reason (optional)").
				Value(&m.formReason),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = adjustmentsStateSchedule
	m.table.Blur()

	return m, m.form.Init()
}

func (m AdjustmentsModel) updateSchedule(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = adjustmentsStateBrowse
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

	return m, m.scheduleCmd()
}

func (m AdjustmentsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading adjustments...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	filter := "All"
	if m.pendingOnly {
		filter = "Pending"
	}

	header := fmt.Sprintf("Scheduled Adjustments | [p] Showing: %s", activeStyle(filter))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == adjustmentsStateSchedule && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(54).
			Render("Schedule Adjustment\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *AdjustmentsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.adjustments))
	for _, a := range m.adjustments {
		applied := "no"
		if a.Applied {
			applied = "yes"
		}

		rows = append(rows, table.Row{
			a.CategoryName,
			FormatAmount(a.CurrentLimit),
			FormatAmount(a.NewLimit),
			string(a.Kind),
			fmt.Sprintf("%04d-%02d", a.EffectiveYear, int(a.EffectiveMonth)),
			applied,
			a.Reason,
		})
	}
	m.table.SetRows(rows)
}

func parseYearMonth(s string) (int, time.Month, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected YYYY-MM")
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1 {
		return 0, 0, fmt.Errorf("invalid year")
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month")
	}

	return year, time.Month(month), nil
}

// Messages

type adjustmentsLoadMsg struct {
	adjustments []*budget.Adjustment
	err         error
}

func (m AdjustmentsModel) loadCmd() tea.Cmd {
	pendingOnly := m.pendingOnly

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		adjustments, err := m.budgetService.ListAdjustments(ctx, pendingOnly)
		return adjustmentsLoadMsg{adjustments: adjustments, err: err}
	}
}

type adjustmentsActionMsg struct {
	status string
	err    error
}

func (m AdjustmentsModel) scheduleCmd() tea.Cmd {
	newLimit, _ := parseCents(m.formLimit)
	year, month, _ := parseYearMonth(m.formMonth)

	params := budget.ScheduleParams{
		CategoryName:   strings.TrimSpace(m.formCategory),
		NewLimit:       newLimit,
		EffectiveYear:  year,
		EffectiveMonth: month,
		Reason:         strings.TrimSpace(m.formReason),
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.budgetService.ScheduleAdjustment(ctx, params); err != nil {
			return adjustmentsActionMsg{err: err}
		}

		return adjustmentsActionMsg{status: "Adjustment scheduled."}
	}
}

func (m AdjustmentsModel) cancelCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.adjustments) {
		return nil
	}

	id := m.adjustments[idx].ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.budgetService.CancelAdjustment(ctx, id); err != nil {
			return adjustmentsActionMsg{err: err}
		}

		return adjustmentsActionMsg{status: "Adjustment cancelled."}
	}
}

func (m AdjustmentsModel) applyDueCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		result, err := m.budgetService.ApplyDue(ctx, time.Now())
		if err != nil {
			return adjustmentsActionMsg{err: err}
		}

		if result.Applied == 0 {
			return adjustmentsActionMsg{status: "No adjustments due."}
		}

		return adjustmentsActionMsg{
			status: fmt.Sprintf("Applied %d adjustments, new budget version %d.", result.Applied, result.NewVersion),
		}
	}
}
