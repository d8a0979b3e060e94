package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/cashup/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/cashup/internal/account"
	accountStore "github.com/MrJamesThe3rd/cashup/internal/account/store"
	"github.com/MrJamesThe3rd/cashup/internal/auth"
	"github.com/MrJamesThe3rd/cashup/internal/config"
	"github.com/MrJamesThe3rd/cashup/internal/database"
	"github.com/MrJamesThe3rd/cashup/internal/exception"
	exceptionStore "github.com/MrJamesThe3rd/cashup/internal/exception/store"
	"github.com/MrJamesThe3rd/cashup/internal/fee"
	"github.com/MrJamesThe3rd/cashup/internal/notify"
	"github.com/MrJamesThe3rd/cashup/internal/statement"
	"github.com/MrJamesThe3rd/cashup/internal/trip"
	tripStore "github.com/MrJamesThe3rd/cashup/internal/trip/store"
)

type model struct {
	actor auth.Actor

	exceptionService *exception.Service
	tripService      *trip.Service
	statementService *statement.Service

	currentView View

	handoverView  view.HandoverModel
	tripsView     view.TripsModel
	statementView view.StatementModel
}

type View int

const (
	ViewMenu      View = 0
	ViewHandovers View = 1
	ViewTrips     View = 2
	ViewStatement View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rates := fee.DefaultTable()
	if cfg.Rates.File != "" {
		if rates, err = fee.LoadTable(cfg.Rates.File); err != nil {
			slog.Error("failed to load rate table", "path", cfg.Rates.File, "error", err)
			os.Exit(1)
		}
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	actor, err := consoleActor(account.NewService(accountStore.New(db), cfg.Recipients()), cfg.TUI.AccountID)
	if err != nil {
		slog.Error("failed to resolve console account", "error", err)
		os.Exit(1)
	}

	trips := tripStore.New(db)
	excSvc := exception.NewService(exceptionStore.New(db))
	tripSvc := trip.NewService(trips, fee.NewEngine(rates))
	stmtSvc := statement.NewService(trips, notify.NewClient(cfg.Notify.URL, cfg.Notify.Token), cfg.Recipients(), nil)

	return model{
		actor:            actor,
		exceptionService: excSvc,
		tripService:      tripSvc,
		statementService: stmtSvc,
		currentView:      ViewMenu,
		handoverView:     view.NewHandoverModel(actor, excSvc),
		tripsView:        view.NewTripsModel(actor, tripSvc),
		statementView:    view.NewStatementModel(actor, stmtSvc),
	}
}

// consoleActor loads the configured account and insists it is an admin.
func consoleActor(accounts *account.Service, rawID string) (auth.Actor, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return auth.Actor{}, fmt.Errorf("TUI_ACCOUNT_ID must be an account id: %w", err)
	}

	ctx, cancel := view.DbCtx()
	defer cancel()

	a, err := accounts.Get(ctx, auth.Actor{AccountID: id}, id)
	if err != nil {
		return auth.Actor{}, err
	}

	actor := a.Actor()
	if err := actor.RequireAdmin(); err != nil {
		return auth.Actor{}, fmt.Errorf("account %s: %w", a.Email, err)
	}

	return actor, nil
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
				m.currentView = ViewHandovers
				m.handoverView = view.NewHandoverModel(m.actor, m.exceptionService)

				return m, m.handoverView.Init()
			case "2":
				m.currentView = ViewTrips
				m.tripsView = view.NewTripsModel(m.actor, m.tripService)

				return m, m.tripsView.Init()
			case "3":
				m.currentView = ViewStatement
				m.statementView = view.NewStatementModel(m.actor, m.statementService)

				return m, m.statementView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewHandovers:
		var newModel tea.Model
		newModel, cmd = m.handoverView.Update(msg)
		m.handoverView = newModel.(view.HandoverModel)
	case ViewTrips:
		var newModel tea.Model
		newModel, cmd = m.tripsView.Update(msg)
		m.tripsView = newModel.(view.TripsModel)
	case ViewStatement:
		var newModel tea.Model
		newModel, cmd = m.statementView.Update(msg)
		m.statementView = newModel.(view.StatementModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Cash-Up Ledger\n\n" +
				"Signed in as " + m.actor.Email + "\n\n" +
				"1. Handover Queue\n" +
				"2. Trips\n" +
				"3. Weekly Statement\n\n" +
				"q. Quit",
		)
	case ViewHandovers:
		return withHelp(m.handoverView)
	case ViewTrips:
		return withHelp(m.tripsView)
	case ViewStatement:
		return withHelp(m.statementView)
	}

	return "Unknown View"
}

func withHelp(v view.View) string {
	help := lipgloss.NewStyle().Faint(true).PaddingLeft(1).Render(v.Title() + " | " + v.ShortHelp())
	return v.View() + "\n" + help
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
