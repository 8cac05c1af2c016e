// Package tui renders the interactive dashboard: monthly summary,
// daily chart and category breakdown over the view-state layer.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nmtri/soquy/internal/currency"
	"github.com/nmtri/soquy/internal/model"
	"github.com/nmtri/soquy/internal/storage"
	"github.com/nmtri/soquy/internal/view"
)

var sparks = []rune("▁▂▃▄▅▆▇█")

type homeLoadedMsg view.State[view.HomeData]

type reportLoadedMsg view.State[view.ReportData]

// Model is the dashboard TUI model.
type Model struct {
	ctx         context.Context
	home        *view.Home
	reportVM    *view.Report
	homeState   view.State[view.HomeData]
	reportState view.State[view.ReportData]
	settings    model.Settings
	styles      Styles
	spinner     spinner.Model
	month       model.Month
	typ         model.TransactionType
	width       int
	quitting    bool
}

// NewModel builds the dashboard for the given month.
func NewModel(ctx context.Context, store *storage.Store, settings model.Settings, month model.Month) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:      ctx,
		home:     view.NewHome(store, month),
		reportVM: view.NewReport(store, month),
		settings: settings,
		styles:   NewStyles(settings.Theme),
		spinner:  sp,
		month:    month,
		typ:      model.TypeExpense,
		width:    80,
	}
}

// Run starts the dashboard program.
func Run(ctx context.Context, store *storage.Store, settings model.Settings, month model.Month) error {
	_, err := tea.NewProgram(NewModel(ctx, store, settings, month), tea.WithAltScreen()).Run()
	return err
}

// Init kicks off the first load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadHome(), m.loadReport())
}

func (m Model) loadHome() tea.Cmd {
	return func() tea.Msg {
		m.home.SetMonth(m.ctx, m.month)
		return homeLoadedMsg(m.home.State())
	}
}

func (m Model) loadReport() tea.Cmd {
	return func() tea.Msg {
		m.reportVM.SetMonth(m.ctx, m.month)
		m.reportVM.SetType(m.ctx, m.typ)
		return reportLoadedMsg(m.reportVM.State())
	}
}

// Update handles key presses and load completions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "left", "h":
			m.month = prevMonth(m.month)
			return m.reload()
		case "right", "l":
			m.month = nextMonth(m.month)
			return m.reload()
		case "tab":
			if m.typ == model.TypeExpense {
				m.typ = model.TypeIncome
			} else {
				m.typ = model.TypeExpense
			}
			return m.reload()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case homeLoadedMsg:
		m.homeState = view.State[view.HomeData](msg)

	case reportLoadedMsg:
		m.reportState = view.State[view.ReportData](msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	m.homeState.Phase = view.PhaseLoading
	m.reportState.Phase = view.PhaseLoading
	return m, tea.Batch(m.loadHome(), m.loadReport())
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("soquy · %s", m.month)))
	b.WriteString("\n\n")

	switch m.homeState.Phase {
	case view.PhaseIdle, view.PhaseLoading:
		b.WriteString(m.spinner.View() + " loading...\n")
	case view.PhaseFailed:
		b.WriteString(m.styles.Error.Render(m.homeState.Err) + "\n")
	case view.PhaseLoaded:
		b.WriteString(m.renderSummary(m.homeState.Data))
		b.WriteString(m.renderChart(m.homeState.Data))
	}

	b.WriteString("\n")
	b.WriteString(m.renderBreakdown())
	b.WriteString("\n")
	b.WriteString(m.styles.Dim.Render("←/→ month · tab income/expense · q quit"))
	return b.String()
}

func (m Model) renderSummary(data view.HomeData) string {
	code := m.settings.Currency
	income := m.styles.Income.Render("thu " + currency.Format(data.Summary.Income, code))
	expense := m.styles.Expense.Render("chi " + currency.Format(data.Summary.Expense, code))
	balance := m.styles.Balance.Render("số dư " + currency.Format(data.Summary.Balance, code))
	return lipgloss.JoinHorizontal(lipgloss.Top, income, "   ", expense, "   ", balance) + "\n\n"
}

// renderChart draws one spark per calendar day, scaled against the
// month's largest daily flow.
func (m Model) renderChart(data view.HomeData) string {
	var max int64
	for _, p := range data.Series {
		if p.Income > max {
			max = p.Income
		}
		if p.Expense > max {
			max = p.Expense
		}
	}
	if max == 0 {
		return m.styles.Dim.Render("no transactions this month") + "\n"
	}

	var income, expense strings.Builder
	for _, p := range data.Series {
		income.WriteRune(spark(p.Income, max))
		expense.WriteRune(spark(p.Expense, max))
	}
	return m.styles.Income.Render(income.String()) + "\n" +
		m.styles.Expense.Render(expense.String()) + "\n"
}

func spark(v, max int64) rune {
	if v <= 0 {
		return sparks[0]
	}
	idx := int(v * int64(len(sparks)-1) / max)
	if idx >= len(sparks) {
		idx = len(sparks) - 1
	}
	return sparks[idx]
}

func (m Model) renderBreakdown() string {
	header := "Chi tiêu theo danh mục"
	if m.typ == model.TypeIncome {
		header = "Thu nhập theo danh mục"
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(header) + "\n")

	switch m.reportState.Phase {
	case view.PhaseIdle, view.PhaseLoading:
		b.WriteString(m.spinner.View() + " loading...\n")
	case view.PhaseFailed:
		b.WriteString(m.styles.Error.Render(m.reportState.Err) + "\n")
	case view.PhaseLoaded:
		stats := m.reportState.Data.Breakdown.Stats
		if len(stats) == 0 {
			b.WriteString(m.styles.Dim.Render("nothing recorded") + "\n")
			return b.String()
		}
		for _, stat := range stats {
			name := m.styles.StatName.Render(stat.Category.Icon + " " + stat.Category.Name)
			amount := m.styles.StatValue.Render(currency.Format(stat.Amount, m.settings.Currency))
			bar := m.styles.Bar.Render(strings.Repeat("█", int(stat.Percentage/5)))
			b.WriteString(fmt.Sprintf("%s %s %5.1f%% %s\n", name, bar, stat.Percentage, amount))
		}
	}
	return b.String()
}

func prevMonth(m model.Month) model.Month {
	if m.Month == 1 {
		return model.Month{Year: m.Year - 1, Month: 12}
	}
	return model.Month{Year: m.Year, Month: m.Month - 1}
}

func nextMonth(m model.Month) model.Month {
	if m.Month == 12 {
		return model.Month{Year: m.Year + 1, Month: 1}
	}
	return model.Month{Year: m.Year, Month: m.Month + 1}
}
