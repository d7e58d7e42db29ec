// Command export runs one fetch-normalize-export cycle and writes the
// resulting CSV files, without starting any servers.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"paydash/adapters/export"
	"paydash/adapters/sheets"
	"paydash/internal/config"
	"paydash/internal/pipeline"
	"paydash/ports"
)

func main() {
	outDir := flag.String("out", "", "output directory (defaults to EXPORT_DIR)")
	withDemo := flag.Bool("demo", false, "fall back to built-in demo rows when no source answers")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dir := *outDir
	if dir == "" {
		dir = appConfig.Paths.ExportDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	var paymentSources, proposalSources []ports.RowSource
	if appConfig.Paths.WorkbookFile != "" {
		paymentSources = append(paymentSources, sheets.NewWorkbookSource(appConfig.Paths.WorkbookFile, ""))
	}
	if appConfig.Sheets.SpreadsheetID != "" {
		paymentSources = append(paymentSources, sheets.NewCSVSource(
			appConfig.Sheets.SpreadsheetID, appConfig.Sheets.PaymentGID, "payments", appConfig.Refresh.Timeout))
		proposalSources = append(proposalSources, sheets.NewCSVSource(
			appConfig.Sheets.SpreadsheetID, appConfig.Sheets.ProposalGID, "proposals", appConfig.Refresh.Timeout))
	}
	if *withDemo {
		paymentSources = append(paymentSources, sheets.NewDemoSource())
	}

	refresher := pipeline.NewRefreshService(paymentSources, proposalSources, nil, appConfig.Refresh.Timeout)

	snapshot, err := refresher.Refresh(context.Background())
	if err != nil {
		log.Fatalf("Refresh failed: %v", err)
	}

	paymentPath := filepath.Join(dir, "payments.csv")
	if err := writeFile(paymentPath, func(f *os.File) error {
		return export.WritePayments(f, snapshot.Payments)
	}); err != nil {
		log.Fatalf("Payment export failed: %v", err)
	}

	proposalPath := filepath.Join(dir, "proposals.csv")
	if err := writeFile(proposalPath, func(f *os.File) error {
		return export.WriteProposals(f, snapshot.Proposals)
	}); err != nil {
		log.Fatalf("Proposal export failed: %v", err)
	}

	fmt.Printf("Exported %d payment rows (%s) and %d proposal rows (%s) to %s\n",
		snapshot.Payments.Len(), snapshot.PaymentSource,
		snapshot.Proposals.Len(), snapshot.ProposalSource, dir)
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}
