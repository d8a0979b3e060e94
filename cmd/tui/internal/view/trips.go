package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/cashup/internal/auth"
	"github.com/MrJamesThe3rd/cashup/internal/trip"
)

type tripsState int

const (
	tripsBrowse tripsState = iota
	tripsStatus
)

var statusFilters = []*trip.Status{
	nil,
	new(trip.StatusSubmitted),
	new(trip.StatusApproved),
	new(trip.StatusRejected),
	new(trip.StatusLocked),
	new(trip.StatusDraft),
}

// TripsModel lists every trip with status and date filters and lets an admin
// move a trip between statuses.
type TripsModel struct {
	CommonModel
	svc *trip.Service

	state tripsState
	table table.Model
	trips []*trip.Trip
	form  *huh.Form

	statusFilterIdx int
	dateFilter      dateFilter

	loading bool
	err     error
	status  string

	// formStatus is heap-allocated so the form's binding survives model copies.
	formStatus *trip.Status
}

func NewTripsModel(actor auth.Actor, svc *trip.Service) TripsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Lead", Width: 22},
		{Title: "Pax", Width: 5},
		{Title: "Status", Width: 10},
		{Title: "Guides", Width: 30},
		{Title: "Net", Width: 12},
	}

	return TripsModel{
		CommonModel: CommonModel{Actor: actor},
		svc:         svc,
		table:       newTable(columns),
		loading:     true,
	}
}

func (m TripsModel) Title() string { return "Trips" }
func (m TripsModel) ShortHelp() string {
	if m.state == tripsStatus {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | Enter: change status | s: status filter | d: date filter | r: refresh"
}

func (m TripsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m TripsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadTripsMsg:
		m.loading = false
		m.err = msg.err
		m.trips = msg.trips
		m.refreshTable()

		return m, nil

	case tripSavedMsg:
		m.state = tripsBrowse
		m.form = nil
		m.table.Focus()

		if msg.err != nil {
			m.status = errorStyle(fmt.Sprintf("Status not changed: %v", msg.err))
		} else {
			m.status = ""
		}

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == tripsStatus {
		return m.updateStatus(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % len(statusFilters)
			return m, m.loadCmd()
		case "d":
			m.dateFilter = (m.dateFilter + 1) % dateFilterCount
			return m, m.loadCmd()
		case "enter":
			return m.enterStatus()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m TripsModel) enterStatus() (tea.Model, tea.Cmd) {
	t := m.selected()
	if t == nil {
		return m, nil
	}

	m.formStatus = new(t.Status)

	options := make([]huh.Option[trip.Status], 0, len(statusFilters)-1)
	for _, s := range statusFilters[1:] {
		options = append(options, huh.NewOption(string(*s), *s))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[trip.Status]().
				Key("status").
				Title("Status").
				Options(options...).
				Value(m.formStatus),
		),
	).WithWidth(40).WithShowHelp(false)

	m.state = tripsStatus
	m.table.Blur()

	return m, m.form.Init()
}

func (m TripsModel) updateStatus(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = tripsBrowse
		m.form = nil
		m.table.Focus()

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

func (m TripsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading trips...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v\n\n(Esc to back)", m.err))
	}

	statusLabel := "All"
	if s := statusFilters[m.statusFilterIdx]; s != nil {
		statusLabel = string(*s)
	}

	header := fmt.Sprintf(
		"Filter: [s] Status: %s | [d] Date: %s | %d trips",
		activeStyle(statusLabel),
		activeStyle(m.dateFilter.String()),
		len(m.trips),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(m.table.View()),
	)

	if m.state == tripsStatus && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(44).
			Render("Change Status\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = m.status + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m TripsModel) selected() *trip.Trip {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.trips) {
		return nil
	}

	return m.trips[idx]
}

func (m *TripsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.trips))
	for _, t := range m.trips {
		names := make([]string, 0, len(t.Guides))
		for _, g := range t.Guides {
			name := g.GuideName
			if t.IsLeader(g.GuideID) {
				name += "*"
			}

			names = append(names, name)
		}

		rows = append(rows, table.Row{
			FormatDate(t.TripDate),
			t.LeadName,
			fmt.Sprint(t.TotalPax),
			string(t.Status),
			strings.Join(names, ", "),
			FormatAmount(t.NetTotal()),
		})
	}

	m.table.SetRows(rows)
}

func (m TripsModel) filter() trip.ListFilter {
	f := trip.ListFilter{Status: statusFilters[m.statusFilterIdx]}

	if rng := m.dateFilter.dateRange(time.Now().UTC()); rng != nil {
		f.Start = &rng.Start
		f.End = &rng.End
	}

	return f
}

// Messages

type loadTripsMsg struct {
	trips []*trip.Trip
	err   error
}

func (m TripsModel) loadCmd() tea.Cmd {
	filter := m.filter()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		trips, err := m.svc.List(ctx, m.Actor, filter, true)

		return loadTripsMsg{trips: trips, err: err}
	}
}

type tripSavedMsg struct {
	err error
}

func (m TripsModel) saveCmd() tea.Cmd {
	t := m.selected()
	if t == nil || m.formStatus == nil || *m.formStatus == t.Status {
		return func() tea.Msg { return tripSavedMsg{} }
	}

	status := *m.formStatus

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.svc.SetStatus(ctx, m.Actor, t.ID, status)

		return tripSavedMsg{err: err}
	}
}
