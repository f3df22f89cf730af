// Package report composes the fetch-and-extract pipeline: company name
// to corp code to latest business report to extracted text.
package report

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/valofosho/opendart-rag-report/pkg/core/bundle"
	"github.com/valofosho/opendart-rag-report/pkg/core/config"
	"github.com/valofosho/opendart-rag-report/pkg/core/dart"
	"github.com/valofosho/opendart-rag-report/pkg/core/registry"
)

// Sentinel errors callers are expected to handle.
var (
	// ErrCompanyNotFound means the corp-code table has no exact match
	// for the requested company name.
	ErrCompanyNotFound = errors.New("report: company not found in corp-code table")

	// ErrNoMainDocument means the downloaded bundle holds no markup
	// entry to extract from.
	ErrNoMainDocument = errors.New("report: no main document found in bundle")
)

// Result is the outcome of one pipeline run.
type Result struct {
	RunID      string
	CorpName   string
	CorpCode   string
	ReceiptNo  string
	Report     dart.ReportItem
	MainEntry  string
	EntryCount int
	Text       string
}

// Pipeline runs single-shot fetch-and-extract invocations. It holds no
// state between calls beyond configuration; in particular the corp-code
// table is reloaded from disk on every run.
type Pipeline struct {
	settings config.Settings
	client   *dart.Client
}

// NewPipeline creates a pipeline with the given API key and settings.
func NewPipeline(apiKey string, settings config.Settings) *Pipeline {
	return &Pipeline{
		settings: settings,
		client:   dart.NewClient(apiKey),
	}
}

// FetchLatestReportText resolves a company name and returns the plain
// text of its most recent annual business report.
func (p *Pipeline) FetchLatestReportText(corpName string) (*Result, error) {
	runID := uuid.New().String()[:8]

	table := registry.Load(p.settings.CorpCodePath)
	corpCode, ok := table.FindCode(corpName)
	if !ok {
		return nil, fmt.Errorf("%w: %q (table rows: %d)", ErrCompanyNotFound, corpName, table.Len())
	}
	log.Printf("[%s] resolved %q -> corp code %s", runID, corpName, corpCode)

	receiptNo, item, err := p.client.FindLatestBusinessReport(corpCode, p.settings.LookbackDays)
	if err != nil {
		return nil, err
	}
	log.Printf("[%s] latest business report: %s (%s, filed %s)", runID, item.ReportNm, receiptNo, item.RceptDt)

	zipBytes, err := p.client.DownloadDocument(receiptNo)
	if err != nil {
		return nil, err
	}

	names, err := bundle.ListEntries(zipBytes)
	if err != nil {
		return nil, err
	}
	log.Printf("[%s] bundle downloaded: %d bytes, %d entries", runID, len(zipBytes), len(names))

	entry, ok := bundle.ChooseMainEntry(names, receiptNo)
	if !ok {
		return nil, fmt.Errorf("%w: receipt %s", ErrNoMainDocument, receiptNo)
	}

	text, err := bundle.ExtractText(zipBytes, entry)
	if err != nil {
		return nil, err
	}
	log.Printf("[%s] extracted %d chars from %s", runID, len(text), entry)

	return &Result{
		RunID:      runID,
		CorpName:   corpName,
		CorpCode:   corpCode,
		ReceiptNo:  receiptNo,
		Report:     *item,
		MainEntry:  entry,
		EntryCount: len(names),
		Text:       text,
	}, nil
}
