package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/cashup/internal/auth"
	"github.com/MrJamesThe3rd/cashup/internal/statement"
)

// StatementModel shows one week's running cash-up totals, including the empty
// days that have already passed.
type StatementModel struct {
	CommonModel
	svc *statement.Service

	week   string
	table  table.Model
	report *statement.Report

	loading bool
	err     error
	status  string
}

func NewStatementModel(actor auth.Actor, svc *statement.Service) StatementModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Lead", Width: 24},
		{Title: "Net", Width: 14},
		{Title: "Running", Width: 14},
	}

	return StatementModel{
		CommonModel: CommonModel{Actor: actor},
		svc:         svc,
		week:        statement.WeekKey(time.Now().UTC()),
		table:       newTable(columns),
		loading:     true,
	}
}

func (m StatementModel) Title() string { return "Weekly Statement" }
func (m StatementModel) ShortHelp() string {
	return "Esc: back | h/←: previous week | l/→: next week | t: this week | s: send statement"
}

func (m StatementModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m StatementModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadStatementMsg:
		m.loading = false
		m.err = msg.err
		m.report = msg.report
		m.refreshTable()

		return m, nil

	case statementSentMsg:
		if msg.err != nil {
			m.status = errorStyle(fmt.Sprintf("Not sent: %v", msg.err))
		} else {
			m.status = fmt.Sprintf("Statement for %s sent", m.week)
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 14)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "h", "left":
			m.week = shiftWeek(m.week, -1)
			m.status = ""
			m.loading = true

			return m, m.loadCmd()
		case "l", "right":
			m.week = shiftWeek(m.week, 1)
			m.status = ""
			m.loading = true

			return m, m.loadCmd()
		case "t":
			m.week = statement.WeekKey(time.Now().UTC())
			m.loading = true

			return m, m.loadCmd()
		case "s":
			m.status = "Sending..."
			return m, m.sendCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m StatementModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading statement...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v\n\n(Esc to back)", m.err))
	}

	_, week := statement.WeekNumber(m.report.Range.Start)

	header := fmt.Sprintf("%s  %s to %s",
		activeStyle(fmt.Sprintf("Week %d", week)),
		FormatDate(m.report.Range.Start),
		FormatDate(m.report.Range.End),
	)

	totals := fmt.Sprintf("Trips: %d | Pax: %d | Cash: %s | Net: %s",
		m.report.Totals.Trips,
		m.report.Totals.Pax,
		FormatAmount(m.report.Totals.Cash),
		FormatAmount(m.report.Totals.NetTotal),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(m.table.View()),
		lipgloss.NewStyle().PaddingTop(1).Render(totals),
	)

	if m.status != "" {
		content = m.status + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *StatementModel) refreshTable() {
	if m.report == nil {
		m.table.SetRows(nil)
		return
	}

	rows := make([]table.Row, 0, len(m.report.Running))
	for _, r := range m.report.Running {
		lead, net := r.LeadName, FormatAmount(r.NetTotal)
		if r.IsGap() {
			lead = lipgloss.NewStyle().Faint(true).Render(statement.NoTrips)
			net = "-"
		}

		rows = append(rows, table.Row{
			FormatDate(r.Date),
			lead,
			net,
			FormatAmount(r.RunningTotal),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadStatementMsg struct {
	report *statement.Report
	err    error
}

func (m StatementModel) loadCmd() tea.Cmd {
	week := m.week

	return func() tea.Msg {
		rng, err := statement.ParseWeek(week)
		if err != nil {
			return loadStatementMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		report, err := m.svc.Period(ctx, m.Actor, rng, statement.BucketDay)

		return loadStatementMsg{report: report, err: err}
	}
}

type statementSentMsg struct {
	err error
}

func (m StatementModel) sendCmd() tea.Cmd {
	week := m.week

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.svc.HandOff(ctx, m.Actor, week)

		return statementSentMsg{err: err}
	}
}
