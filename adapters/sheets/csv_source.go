// Package sheets provides the row-set fetch collaborators: the public
// CSV export of a Google spreadsheet, a local workbook file, and a fixed
// demonstration set. Every source produces the same ledger.RowSet shape,
// so the pipeline processes all of them identically.
package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"paydash/domain/ledger"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// CSVSource fetches a worksheet through the spreadsheet's public CSV
// export. Google exposes several export URL shapes and not all of them
// work for every sharing configuration, so each is tried in order.
type CSVSource struct {
	spreadsheetID string
	gid           string
	label         string
	httpClient    *http.Client
	now           func() time.Time
}

// NewCSVSource creates a CSV export source for one worksheet (identified
// by its GID). The label distinguishes the payment and proposal sheets in
// logs.
func NewCSVSource(spreadsheetID, gid, label string, timeout time.Duration) *CSVSource {
	return &CSVSource{
		spreadsheetID: spreadsheetID,
		gid:           gid,
		label:         label,
		httpClient:    &http.Client{Timeout: timeout},
		now:           time.Now,
	}
}

// Name identifies this source in logs and refresh reports
func (s *CSVSource) Name() string {
	return "csv-export:" + s.label
}

// exportURLs returns the candidate export URL shapes in preference order
func (s *CSVSource) exportURLs() []string {
	base := "https://docs.google.com/spreadsheets/d/" + s.spreadsheetID
	return []string{
		fmt.Sprintf("%s/export?format=csv&gid=%s", base, s.gid),
		fmt.Sprintf("%s/gviz/tq?tqx=out:csv&gid=%s", base, s.gid),
		base + "/export?format=csv",
	}
}

// Fetch tries each export URL and returns the first parseable, non-empty
// row-set. All failures collapse into ledger.ErrNoData; the caller owns
// the fallback policy.
func (s *CSVSource) Fetch(ctx context.Context) (*ledger.RowSet, error) {
	if s.spreadsheetID == "" {
		return nil, fmt.Errorf("%w: no spreadsheet configured", ledger.ErrNoData)
	}

	var lastErr error
	for i, url := range s.exportURLs() {
		// Cache-busting timestamp keeps Google's CDN from serving a
		// stale export
		url = fmt.Sprintf("%s&t=%d", url, s.now().Unix())

		rows, err := s.fetchURL(ctx, url)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Printf("[CSVSource] %s: export URL %d failed: %v", s.label, i+1, err)
			lastErr = err
			continue
		}
		if rows.IsEmpty() || len(rows.Headers) < 2 {
			log.Printf("[CSVSource] %s: export URL %d returned no usable rows", s.label, i+1)
			lastErr = ledger.ErrEmptySheet
			continue
		}
		log.Printf("[CSVSource] %s: loaded %d rows via export URL %d", s.label, len(rows.Rows), i+1)
		return rows, nil
	}

	return nil, fmt.Errorf("%w: %v", ledger.ErrNoData, lastErr)
}

func (s *CSVSource) fetchURL(ctx context.Context, url string) (*ledger.RowSet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return parseCSV(resp.Body)
}

// parseCSV reads an export stream into a row-set, dropping blank rows and
// the placeholder "Unnamed*" columns Google emits for trailing blanks
func parseCSV(r io.Reader) (*ledger.RowSet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // sheets pad rows unevenly

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return &ledger.RowSet{}, nil
	}

	keep := make([]int, 0, len(records[0]))
	headers := make([]string, 0, len(records[0]))
	for i, h := range records[0] {
		name := strings.TrimSpace(h)
		if name == "" || strings.HasPrefix(name, "Unnamed") {
			continue
		}
		keep = append(keep, i)
		headers = append(headers, name)
	}

	rows := make([]ledger.RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(ledger.RawRow, len(headers))
		empty := true
		for j, idx := range keep {
			value := ""
			if idx < len(record) {
				value = strings.TrimSpace(record[idx])
			}
			if value != "" {
				empty = false
			}
			row[headers[j]] = value
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}

	return &ledger.RowSet{Headers: headers, Rows: rows}, nil
}
