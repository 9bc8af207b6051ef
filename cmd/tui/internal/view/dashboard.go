package view

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bullseye-app/bullseye/internal/analysis"
	"github.com/bullseye-app/bullseye/internal/budget"
	"github.com/bullseye-app/bullseye/internal/report"
)

type DashboardModel struct {
	CommonModel
	reportService *report.Service

	year  int
	month time.Month

	table    table.Model
	result   *analysis.Analysis
	loading  bool
	noBudget bool
	err      error
}

func NewDashboardModel(reportSvc *report.Service) DashboardModel {
	columns := []table.Column{
		{Title: "Category", Width: 20},
		{Title: "Budgeted", Width: 10},
		{Title: "Actual", Width: 10},
		{Title: "Variance", Width: 10},
		{Title: "Spent", Width: 8},
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

	now := time.Now()

	return DashboardModel{
		reportService: reportSvc,
		year:          now.Year(),
		month:         now.Month(),
		table:         t,
	}
}

func (m DashboardModel) Title() string { return "Dashboard" }

func (m DashboardModel) ShortHelp() string {
	return "Esc: back | left/right: change month | r: refresh"
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadMsg:
		m.loading = false
		m.result = nil
		m.noBudget = false
		m.err = nil

		switch {
		case errors.Is(msg.err, budget.ErrNoActiveBudget):
			m.noBudget = true
		case msg.err != nil:
			m.err = msg.err
		default:
			m.result = msg.result
			m.refreshTable()
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 14)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "left":
			m.year, m.month = ShiftMonth(m.year, m.month, -1)
			m.loading = true
			return m, m.loadCmd()
		case "right":
			m.year, m.month = ShiftMonth(m.year, m.month, 1)
			m.loading = true
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m DashboardModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("Budget Dashboard - %s", MonthLabel(m.year, m.month)),
	)

	if m.loading {
		return lipgloss.NewStyle().Padding(1).Render(title + "\n\nLoading...")
	}

	if m.noBudget {
		return lipgloss.NewStyle().Padding(1).Render(
			title + "\n\nNo active budget. Create a budget version first.",
		)
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(fmt.Sprintf("%s\n\nError: %v", title, m.err))
	}

	if m.result == nil {
		return lipgloss.NewStyle().Padding(1).Render(title)
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	totals := fmt.Sprintf(
		"Budgeted: %s  Spent: %s  Variance: %s  |  Income: %s  Savings rate: %.1f%%",
		FormatAmount(m.result.TotalBudgeted),
		FormatAmount(m.result.TotalSpent),
		FormatAmount(m.result.TotalVariance),
		FormatAmount(m.result.Income),
		m.result.SavingsRate,
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		tableView,
		lipgloss.NewStyle().PaddingTop(1).Render(totals),
		m.alertsView(),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m DashboardModel) alertsView() string {
	if len(m.result.Alerts) == 0 {
		return lipgloss.NewStyle().Faint(true).Render("No alerts.")
	}

	out := ""
	for _, a := range m.result.Alerts {
		badge := "!"
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
		if a.Severity == analysis.SeverityHigh {
			badge = "!!"
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
		}

		out += fmt.Sprintf("%s %s\n", style.Render(badge), a.Message)
	}

	return out
}

func (m *DashboardModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.result.Comparisons))
	for _, c := range m.result.Comparisons {
		budgeted := FormatAmount(c.Budgeted)
		spent := fmt.Sprintf("%.0f%%", c.SpentPercentage)
		if c.Unlimited {
			budgeted = "-"
			spent = "-"
		}

		rows = append(rows, table.Row{
			c.Category,
			budgeted,
			FormatAmount(c.Actual),
			FormatAmount(c.Variance),
			spent,
			string(c.Status),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type dashboardLoadMsg struct {
	result *analysis.Analysis
	err    error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	year, month := m.year, m.month

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		result, err := m.reportService.Monthly(ctx, year, month)
		return dashboardLoadMsg{result: result, err: err}
	}
}
