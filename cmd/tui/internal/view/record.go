package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bullseye-app/bullseye/internal/category"
	"github.com/bullseye-app/bullseye/internal/transaction"
)

type recordState int

const (
	recordStateLoading recordState = iota
	recordStateForm
	recordStateDone
)

// RecordModel is the manual entry form. More than one installment turns the
// entry into a series of monthly transactions starting at the given date.
type RecordModel struct {
	CommonModel
	txService       *transaction.Service
	categoryService *category.Service

	state      recordState
	categories []*category.Category
	form       *huh.Form
	status     string
	err        error

	formType         string
	formCategoryID   string
	formAmount       string
	formDesc         string
	formDate         string
	formInstallments string
}

func NewRecordModel(txSvc *transaction.Service, catSvc *category.Service) RecordModel {
	return RecordModel{
		txService:       txSvc,
		categoryService: catSvc,
		state:           recordStateLoading,
	}
}

func (m RecordModel) Title() string { return "Record Entry" }

func (m RecordModel) ShortHelp() string {
	if m.state == recordStateForm {
		return "Navigate form | Esc: back"
	}
	return "Esc: back | n: new entry"
}

func (m RecordModel) Init() tea.Cmd {
	return m.loadCategoriesCmd()
}

func (m RecordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordCategoriesMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = recordStateDone
			return m, nil
		}

		m.categories = msg.categories
		return m.startForm()

	case recordSavedMsg:
		m.state = recordStateDone
		m.form = nil
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		if msg.count > 1 {
			m.status = fmt.Sprintf("Recorded %d installments.", msg.count)
		} else {
			m.status = "Recorded."
		}

		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case recordStateForm:
			if msg.Type == tea.KeyEsc {
				return m, Back
			}
		case recordStateDone:
			switch msg.String() {
			case "esc":
				return m, Back
			case "n":
				return m.startForm()
			}
		}
	}

	if m.state != recordStateForm || m.form == nil {
		return m, nil
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

func (m RecordModel) startForm() (tea.Model, tea.Cmd) {
	if len(m.categories) == 0 {
		m.err = fmt.Errorf("no categories exist yet, create one first")
		m.state = recordStateDone
		return m, nil
	}

	m.formType = string(transaction.TypeExpense)
	m.formCategoryID = m.categories[0].ID.String()
	m.formAmount = ""
	m.formDesc = ""
	m.formDate = FormatDate(time.Now())
	m.formInstallments = "1"
	m.status = ""
	m.err = nil

	categoryOpts := make([]huh.Option[string], len(m.categories))
	for i, c := range m.categories {
		categoryOpts[i] = huh.NewOption(c.Name, c.ID.String())
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("type").
				Title("Type").
				Options(
					huh.NewOption("Expense", string(transaction.TypeExpense)),
					huh.NewOption("Income", string(transaction.TypeIncome)),
				).
				Value(&m.formType),

			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(categoryOpts...).
				Value(&m.formCategoryID),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("12.50").
				Value(&m.formAmount).
				Validate(func(s string) error {
					_, err := parseCents(s)
					return err
				}),

			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.formDate).
				Validate(func(s string) error {
					_, err := time.Parse("2006-01-02", s)
					return err
				}),

			huh.NewInput().
				Key("installments").
				Title("Installments").
				Value(&m.formInstallments).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 {
						return fmt.Errorf("must be a number >= 1")
					}
					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = recordStateForm

	return m, m.form.Init()
}

func (m RecordModel) View() string {
	switch m.state {
	case recordStateLoading:
		return lipgloss.NewStyle().Padding(2).Render("Loading categories...")

	case recordStateForm:
		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.NewStyle().Bold(true).Render("Record Entry") + "\n\n" + m.form.View(),
		)

	case recordStateDone:
		if m.err != nil {
			return lipgloss.NewStyle().Padding(2).Render(
				fmt.Sprintf("Error: %v\n\nEsc: back", m.err),
			)
		}

		return lipgloss.NewStyle().Padding(2).Render(
			m.status + "\n\nn: record another | Esc: back",
		)
	}

	return ""
}

// parseCents converts a decimal amount string into cents.
func parseCents(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid amount")
	}

	if d.IsNegative() {
		return 0, fmt.Errorf("amount must be positive")
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// Messages

type recordCategoriesMsg struct {
	categories []*category.Category
	err        error
}

func (m RecordModel) loadCategoriesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		categories, err := m.categoryService.List(ctx)
		return recordCategoriesMsg{categories: categories, err: err}
	}
}

type recordSavedMsg struct {
	count int
	err   error
}

func (m RecordModel) saveCmd() tea.Cmd {
	amount, _ := parseCents(m.formAmount)
	date, _ := time.Parse("2006-01-02", m.formDate)
	installments, _ := strconv.Atoi(m.formInstallments)
	categoryID, err := uuid.Parse(m.formCategoryID)

	params := transaction.CreateParams{
		Amount:      amount,
		Type:        transaction.Type(m.formType),
		CategoryID:  categoryID,
		Description: strings.TrimSpace(m.formDesc),
		Date:        date,
	}

	return func() tea.Msg {
		if err != nil {
			return recordSavedMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		if installments > 1 {
			txs, err := m.txService.CreateSeries(ctx, params, installments)
			return recordSavedMsg{count: len(txs), err: err}
		}

		_, err := m.txService.Create(ctx, params)
		return recordSavedMsg{count: 1, err: err}
	}
}
