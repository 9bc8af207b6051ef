package view

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bullseye-app/bullseye/internal/analysis"
	"github.com/bullseye-app/bullseye/internal/budget"
	"github.com/bullseye-app/bullseye/internal/report"
)

var targetRanges = []int{3, 6, 12}

// TargetModel shows long-run budgeting accuracy as dartboard hits, one per
// category, closest to the center meaning closest to budget.
type TargetModel struct {
	CommonModel
	reportService *report.Service

	rangeIdx int
	table    table.Model
	results  []analysis.CategoryAccuracy
	loading  bool
	noBudget bool
	err      error
}

func NewTargetModel(reportSvc *report.Service) TargetModel {
	columns := []table.Column{
		{Title: "Category", Width: 20},
		{Title: "Zone", Width: 10},
		{Title: "Accuracy", Width: 10},
		{Title: "Avg Budget", Width: 11},
		{Title: "Avg Actual", Width: 11},
		{Title: "Position", Width: 9},
		{Title: "Angle", Width: 7},
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

	return TargetModel{
		reportService: reportSvc,
		table:         t,
	}
}

func (m TargetModel) Title() string { return "Accuracy Target" }

func (m TargetModel) ShortHelp() string {
	return "Esc: back | t: change range | r: refresh"
}

func (m TargetModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m TargetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case targetLoadMsg:
		m.loading = false
		m.results = nil
		m.noBudget = false
		m.err = nil

		switch {
		case errors.Is(msg.err, budget.ErrNoActiveBudget):
			m.noBudget = true
		case msg.err != nil:
			m.err = msg.err
		default:
			m.results = msg.results
			m.refreshTable()
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "t":
			m.rangeIdx = (m.rangeIdx + 1) % len(targetRanges)
			m.loading = true
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m TargetModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("Accuracy Target - last %d months", targetRanges[m.rangeIdx]),
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

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	legend := lipgloss.NewStyle().Faint(true).Render(
		"bullseye: on budget | ring1-ring5: increasing miss | bust: over budget | unused: no spend",
	)

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", tableView, legend),
	)
}

func (m *TargetModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.results))
	for _, r := range m.results {
		rows = append(rows, table.Row{
			r.Category,
			zoneLabel(r.Zone),
			fmt.Sprintf("%.1f%%", r.AccuracyPercentage),
			fmt.Sprintf("%.2f", r.BudgetAverage/100),
			fmt.Sprintf("%.2f", r.ActualAverage/100),
			fmt.Sprintf("%.2f", r.Position),
			fmt.Sprintf("%.0f", r.HitAngle*180/math.Pi),
		})
	}
	m.table.SetRows(rows)
}

func zoneLabel(z analysis.Zone) string {
	color := "252"
	switch z {
	case analysis.ZoneBullseye:
		color = "46"
	case analysis.ZoneBust:
		color = "196"
	case analysis.ZoneUnused:
		color = "240"
	}

	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(z))
}

// Messages

type targetLoadMsg struct {
	results []analysis.CategoryAccuracy
	err     error
}

func (m TargetModel) loadCmd() tea.Cmd {
	start, end := LastMonthsRange(targetRanges[m.rangeIdx])

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		results, err := m.reportService.Accuracy(ctx, start, end)
		return targetLoadMsg{results: results, err: err}
	}
}
