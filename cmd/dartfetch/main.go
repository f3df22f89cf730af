package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/valofosho/opendart-rag-report/pkg/core/config"
	"github.com/valofosho/opendart-rag-report/pkg/core/report"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	if len(os.Args) < 2 {
		fmt.Println("usage: dartfetch <company name>")
		fmt.Println("example: dartfetch 삼성전자")
		os.Exit(1)
	}
	corpName := os.Args[1]

	settings, err := config.LoadSettings("config/settings.yaml")
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	apiKey, err := config.ResolveAPIKey(
		config.EnvSource{Var: config.EnvKeyName},
		config.KeyFileSource{Path: settings.KeyFilePath},
	)
	if err != nil {
		log.Fatalf("Error: %v (set %s or provide %s)", err, config.EnvKeyName, settings.KeyFilePath)
	}

	pipeline := report.NewPipeline(apiKey, settings)

	fmt.Printf("Fetching latest business report for %s...\n", corpName)
	result, err := pipeline.FetchLatestReportText(corpName)
	if err != nil {
		log.Fatalf("Pipeline failed: %v", err)
	}

	if err := os.MkdirAll(settings.OutputDir, 0755); err != nil {
		log.Fatalf("Error: create output dir: %v", err)
	}
	outPath := filepath.Join(settings.OutputDir, fmt.Sprintf("report_%s.txt", result.RunID))
	if err := os.WriteFile(outPath, []byte(result.Text), 0644); err != nil {
		log.Fatalf("Error: write output: %v", err)
	}

	fmt.Printf("Company:   %s (%s)\n", result.CorpName, result.CorpCode)
	fmt.Printf("Report:    %s\n", result.Report.ReportNm)
	fmt.Printf("Receipt:   %s (filed %s)\n", result.ReceiptNo, result.Report.RceptDt)
	fmt.Printf("Document:  %s (1 of %d entries)\n", result.MainEntry, result.EntryCount)
	fmt.Printf("Extracted: %d chars -> %s\n", len(result.Text), outPath)
}
