package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/cashup/internal/account"
	accountStore "github.com/MrJamesThe3rd/cashup/internal/account/store"
	"github.com/MrJamesThe3rd/cashup/internal/audit"
	auditStore "github.com/MrJamesThe3rd/cashup/internal/audit/store"
	"github.com/MrJamesThe3rd/cashup/internal/auth"
	"github.com/MrJamesThe3rd/cashup/internal/config"
	"github.com/MrJamesThe3rd/cashup/internal/database"
	"github.com/MrJamesThe3rd/cashup/internal/exception"
	exceptionStore "github.com/MrJamesThe3rd/cashup/internal/exception/store"
	"github.com/MrJamesThe3rd/cashup/internal/fee"
	"github.com/MrJamesThe3rd/cashup/internal/guide"
	guideStore "github.com/MrJamesThe3rd/cashup/internal/guide/store"
	cashupHttp "github.com/MrJamesThe3rd/cashup/internal/http"
	accountHandler "github.com/MrJamesThe3rd/cashup/internal/http/account"
	adminHandler "github.com/MrJamesThe3rd/cashup/internal/http/admin"
	auditHandler "github.com/MrJamesThe3rd/cashup/internal/http/audit"
	exceptionHandler "github.com/MrJamesThe3rd/cashup/internal/http/exception"
	guideHandler "github.com/MrJamesThe3rd/cashup/internal/http/guide"
	invoiceHandler "github.com/MrJamesThe3rd/cashup/internal/http/invoice"
	reportHandler "github.com/MrJamesThe3rd/cashup/internal/http/report"
	sessionHandler "github.com/MrJamesThe3rd/cashup/internal/http/session"
	tripHandler "github.com/MrJamesThe3rd/cashup/internal/http/trip"
	"github.com/MrJamesThe3rd/cashup/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/cashup/internal/invoice/store"
	"github.com/MrJamesThe3rd/cashup/internal/notify"
	"github.com/MrJamesThe3rd/cashup/internal/roster"
	"github.com/MrJamesThe3rd/cashup/internal/statement"
	"github.com/MrJamesThe3rd/cashup/internal/trip"
	tripStore "github.com/MrJamesThe3rd/cashup/internal/trip/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.Auth.Secret == "" {
		slog.Error("AUTH_SECRET is required")
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
	defer db.Close()

	var (
		recipients = cfg.Recipients()
		tokens     = auth.NewVerifier(cfg.Auth.Secret, cfg.Auth.Issuer)
		notifier   = notify.NewClient(cfg.Notify.URL, cfg.Notify.Token)
		trips      = tripStore.New(db)
	)

	var (
		accountService   = account.NewService(accountStore.New(db), recipients)
		guideService     = guide.NewService(guideStore.New(db))
		tripService      = trip.NewService(trips, fee.NewEngine(rates))
		exceptionService = exception.NewService(exceptionStore.New(db))
		invoiceService   = invoice.NewService(invoiceStore.New(db), notifier, recipients)
		statementService = statement.NewService(trips, notifier, recipients, nil)
		auditService     = audit.NewService(auditStore.New(db))
	)

	router := cashupHttp.New(tokens, cfg.CORS.AllowedOrigins, cashupHttp.Handlers{
		Session:    sessionHandler.NewHandler(accountService, tokens, cfg.Auth.SessionTTL),
		Guides:     guideHandler.NewHandler(guideService, roster.NewParser()),
		Accounts:   accountHandler.NewHandler(accountService),
		Trips:      tripHandler.NewHandler(tripService, exceptionService),
		Exceptions: exceptionHandler.NewHandler(exceptionService),
		Invoices:   invoiceHandler.NewHandler(invoiceService),
		Reports:    reportHandler.NewHandler(statementService),
		Admin:      adminHandler.NewHandler(tripService),
		Audit:      auditHandler.NewHandler(auditService),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "port", srv.Addr, "rate_version", rates.Version, "notify", cfg.Notify.URL != "")

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
