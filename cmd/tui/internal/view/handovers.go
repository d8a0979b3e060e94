package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/cashup/internal/auth"
	"github.com/MrJamesThe3rd/cashup/internal/exception"
)

type handoverState int

const (
	handoverBrowse handoverState = iota
	handoverConfirm
)

// HandoverModel is the queue of open payment exceptions waiting for an admin
// to confirm the money was handed over.
type HandoverModel struct {
	CommonModel
	svc *exception.Service

	state handoverState
	table table.Model
	queue []*exception.Exception
	form  *huh.Form

	loading bool
	err     error
	status  string

	input *handoverInput
}

// handoverInput holds the form bindings on the heap so they survive model
// copies.
type handoverInput struct {
	counted string
	comment string
}

func NewHandoverModel(actor auth.Actor, svc *exception.Service) HandoverModel {
	columns := []table.Column{
		{Title: "Logged", Width: 12},
		{Title: "Guide", Width: 20},
		{Title: "Type", Width: 6},
		{Title: "Hint", Width: 12},
		{Title: "Trip", Width: 20},
		{Title: "Reference", Width: 24},
	}

	return HandoverModel{
		CommonModel: CommonModel{Actor: actor},
		svc:         svc,
		table:       newTable(columns),
		loading:     true,
	}
}

func newTable(columns []table.Column) table.Model {
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

	return t
}

func (m HandoverModel) Title() string { return "Handover Queue" }
func (m HandoverModel) ShortHelp() string {
	if m.state == handoverConfirm {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | Enter: confirm handover | r: refresh"
}

func (m HandoverModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m HandoverModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadHandoversMsg:
		m.loading = false
		m.err = msg.err
		m.queue = msg.open
		m.refreshTable()

		return m, nil

	case handoverSavedMsg:
		m.state = handoverBrowse
		m.form = nil
		m.table.Focus()

		if msg.err != nil {
			m.status = errorStyle(fmt.Sprintf("Handover not saved: %v", msg.err))
		} else {
			m.status = fmt.Sprintf("Handover confirmed for %s", msg.guide)
		}

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == handoverConfirm {
		return m.updateConfirm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "enter":
			return m.enterConfirm()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m HandoverModel) enterConfirm() (tea.Model, tea.Cmd) {
	e := m.selected()
	if e == nil {
		return m, nil
	}

	m.input = &handoverInput{}
	if e.AmountHint != nil {
		m.input.counted = e.AmountHint.StringFixed(2)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("counted").
				Title("Counted amount").
				Description("Leave blank when not counted").
				Value(&m.input.counted).
				Validate(validateAmount),

			huh.NewText().
				Key("comment").
				Title("Comment").
				Value(&m.input.comment),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = handoverConfirm
	m.table.Blur()

	return m, m.form.Init()
}

func validateAmount(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("not a number")
	}

	if d.IsNegative() {
		return fmt.Errorf("cannot be negative")
	}

	return nil
}

func (m HandoverModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = handoverBrowse
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

	return m, m.resolveCmd()
}

func (m HandoverModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading open exceptions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v\n\n(Esc to back)", m.err))
	}

	if len(m.queue) == 0 {
		return lipgloss.NewStyle().Padding(2).Render(m.status + "\n\nNo open handovers.\n\n(Esc to back)")
	}

	header := fmt.Sprintf("Open handovers: %s", activeStyle(fmt.Sprint(len(m.queue))))

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(m.table.View()),
	)

	if m.state == handoverConfirm && m.form != nil {
		e := m.selected()

		note := ""
		if e != nil && e.Note != nil {
			note = *e.Note
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("Confirm Handover\n\nNote: %s\n\n%s", note, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m HandoverModel) selected() *exception.Exception {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.queue) {
		return nil
	}

	return m.queue[idx]
}

func (m *HandoverModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.queue))
	for _, e := range m.queue {
		trip, ref := "", ""
		if e.TripLeadName != nil {
			trip = *e.TripLeadName
		}

		if e.Reference != nil {
			ref = *e.Reference
		}

		rows = append(rows, table.Row{
			FormatDate(e.CreatedAt),
			e.GuideName,
			string(e.Type),
			FormatOptionalAmount(e.AmountHint),
			trip,
			ref,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadHandoversMsg struct {
	open []*exception.Exception
	err  error
}

func (m HandoverModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		open, err := m.svc.List(ctx, m.Actor, exception.ListFilter{OpenOnly: true})

		return loadHandoversMsg{open: open, err: err}
	}
}

type handoverSavedMsg struct {
	guide string
	err   error
}

func (m HandoverModel) resolveCmd() tea.Cmd {
	e := m.selected()
	if e == nil || m.input == nil {
		return nil
	}

	params := exception.ResolveParams{}

	if s := strings.TrimSpace(m.input.counted); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return func() tea.Msg { return handoverSavedMsg{err: err} }
		}

		params.CountedAmount = &d
	}

	if c := strings.TrimSpace(m.input.comment); c != "" {
		params.Comment = &c
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.svc.Resolve(ctx, m.Actor, e.ID, params)

		return handoverSavedMsg{guide: e.GuideName, err: err}
	}
}
