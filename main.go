package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"paydash/adapters/api"
	"paydash/adapters/postgres"
	"paydash/adapters/sheets"
	"paydash/internal/config"
	"paydash/internal/pipeline"
	"paydash/ports"
	"paydash/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Optional refresh audit log
	var db *sqlx.DB
	var refreshLog ports.RefreshLogRepository
	if appConfig.Database.URL != "" {
		db, err = postgres.Connect(appConfig.Database.URL)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()
		refreshLog = postgres.NewRefreshLogRepository(db)
	} else {
		log.Println("No DATABASE_URL configured, refresh audit log disabled")
	}

	paymentSources, proposalSources := buildSources(appConfig)

	refresher := pipeline.NewRefreshService(paymentSources, proposalSources, refreshLog, appConfig.Refresh.Timeout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if appConfig.Refresh.AutoRefresh {
		go refresher.RunAutoRefresh(ctx, appConfig.Refresh.Interval)
	} else {
		if _, err := refresher.Refresh(ctx); err != nil {
			log.Printf("Initial refresh failed: %v", err)
		}
	}

	// JSON API on its own port
	apiService := api.NewService(refresher, refreshLog, appConfig.Server.GinMode)
	go func() {
		if err := apiService.Start(appConfig.Server.APIPort); err != nil {
			log.Fatalf("API server failed: %v", err)
		}
	}()

	// Dashboard UI
	app, err := ui.NewApp(refresher)
	if err != nil {
		log.Fatalf("Failed to initialize dashboard: %v", err)
	}

	log.Printf("Starting dashboard on port %s", appConfig.Server.UIPort)
	log.Fatal(app.Start(appConfig.Server.UIPort))
}

// buildSources assembles the per-dataset source chains. A configured
// workbook file takes precedence over the network export; payments end
// with the built-in demo rows while proposals degrade to empty.
func buildSources(appConfig *config.Config) (payments, proposals []ports.RowSource) {
	if appConfig.Paths.WorkbookFile != "" {
		log.Printf("Using workbook data source: %s", appConfig.Paths.WorkbookFile)
		payments = append(payments, sheets.NewWorkbookSource(appConfig.Paths.WorkbookFile, ""))
	}

	if appConfig.Sheets.SpreadsheetID != "" {
		payments = append(payments, sheets.NewCSVSource(
			appConfig.Sheets.SpreadsheetID, appConfig.Sheets.PaymentGID, "payments", appConfig.Refresh.Timeout))
		proposals = append(proposals, sheets.NewCSVSource(
			appConfig.Sheets.SpreadsheetID, appConfig.Sheets.ProposalGID, "proposals", appConfig.Refresh.Timeout))
	} else {
		log.Println("No SPREADSHEET_ID configured, network sources disabled")
	}

	payments = append(payments, sheets.NewDemoSource())
	return payments, proposals
}
