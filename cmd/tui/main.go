package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/bullseye-app/bullseye/cmd/tui/internal/view"
	"github.com/bullseye-app/bullseye/internal/budget"
	budgetStore "github.com/bullseye-app/bullseye/internal/budget/store"
	"github.com/bullseye-app/bullseye/internal/category"
	categoryStore "github.com/bullseye-app/bullseye/internal/category/store"
	"github.com/bullseye-app/bullseye/internal/config"
	"github.com/bullseye-app/bullseye/internal/database"
	"github.com/bullseye-app/bullseye/internal/report"
	"github.com/bullseye-app/bullseye/internal/transaction"
	txStore "github.com/bullseye-app/bullseye/internal/transaction/store"
)

type model struct {
	currentView View

	dashboardView   view.DashboardModel
	targetView      view.TargetModel
	recordView      view.RecordModel
	adjustmentsView view.AdjustmentsModel
}

type View int

const (
	ViewMenu        View = 0
	ViewDashboard   View = 1
	ViewTarget      View = 2
	ViewRecord      View = 3
	ViewAdjustments View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	zones, err := cfg.ZoneConfig()
	if err != nil {
		slog.Error("failed to parse zone config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	txSvc := transaction.NewService(txStore.New(db))
	catSvc := category.NewService(categoryStore.New(db))
	budgetSvc := budget.NewService(budgetStore.New(db))
	reportSvc := report.NewService(txSvc, budgetSvc, catSvc, zones)

	return model{
		currentView:     ViewMenu,
		dashboardView:   view.NewDashboardModel(reportSvc),
		targetView:      view.NewTargetModel(reportSvc),
		recordView:      view.NewRecordModel(txSvc, catSvc),
		adjustmentsView: view.NewAdjustmentsModel(budgetSvc),
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
				m.currentView = ViewTarget
				return m, m.targetView.Init()
			case "3":
				m.currentView = ViewRecord
				return m, m.recordView.Init()
			case "4":
				m.currentView = ViewAdjustments
				return m, m.adjustmentsView.Init()
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
	case ViewTarget:
		var newModel tea.Model
		newModel, cmd = m.targetView.Update(msg)
		m.targetView = newModel.(view.TargetModel)
	case ViewRecord:
		var newModel tea.Model
		newModel, cmd = m.recordView.Update(msg)
		m.recordView = newModel.(view.RecordModel)
	case ViewAdjustments:
		var newModel tea.Model
		newModel, cmd = m.adjustmentsView.Update(msg)
		m.adjustmentsView = newModel.(view.AdjustmentsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Bullseye TUI\n\n" +
				"1. Budget Dashboard\n" +
				"2. Accuracy Target\n" +
				"3. Record Entry\n" +
				"4. Scheduled Adjustments\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewTarget:
		return m.targetView.View()
	case ViewRecord:
		return m.recordView.View()
	case ViewAdjustments:
		return m.adjustmentsView.View()
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
