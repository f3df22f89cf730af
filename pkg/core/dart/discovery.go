package dart

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultLookbackDays is the discovery window when the caller passes a
// non-positive value.
const DefaultLookbackDays = 900

// ErrNoBusinessReport is returned when the window holds no genuine
// (non-amended) annual business report.
var ErrNoBusinessReport = errors.New("dart: no recent business report found")

const (
	businessReportMarker = "사업보고서"
	amendmentMarker      = "정정"
)

// IsBusinessReport reports whether a filing title names a genuine
// annual business report. The title must contain the business-report
// marker and must not contain the amendment marker; no other heuristics
// apply.
func IsBusinessReport(title string) bool {
	return strings.Contains(title, businessReportMarker) &&
		!strings.Contains(title, amendmentMarker)
}

// pageFunc fetches one page of a filing listing.
type pageFunc func(pageNo int) (*ListResponse, error)

// pageIterator walks a paginated listing lazily. Iteration ends when
// the API reports a non-success status or a page comes back short; the
// short page's items are still yielded. Filtering is the caller's
// concern.
type pageIterator struct {
	fetch  pageFunc
	pageNo int
	done   bool
}

func newPageIterator(fetch pageFunc) *pageIterator {
	return &pageIterator{fetch: fetch, pageNo: 1}
}

// Next returns the next page of items. ok is false once the listing is
// exhausted. A transport error aborts iteration.
func (it *pageIterator) Next() (items []ReportItem, ok bool, err error) {
	if it.done {
		return nil, false, nil
	}

	resp, err := it.fetch(it.pageNo)
	if err != nil {
		it.done = true
		return nil, false, err
	}

	if resp.Status != statusOK {
		it.done = true
		return nil, false, nil
	}

	if len(resp.List) < pageSize {
		it.done = true
	}
	it.pageNo++

	return resp.List, true, nil
}

// FindLatestBusinessReport scans filings for corpCode over a closed
// date window ending today and returns the receipt number of the most
// recent genuine business report, along with the full listing item.
//
// Recency is the lexicographic maximum of rcept_dt; the dates are
// fixed-width YYYYMMDD, so string order equals date order.
func (c *Client) FindLatestBusinessReport(corpCode string, lookbackDays int) (string, *ReportItem, error) {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}

	now := time.Now()
	endDe := now.Format("20060102")
	bgnDe := now.AddDate(0, 0, -lookbackDays).Format("20060102")

	fetch := func(pageNo int) (*ListResponse, error) {
		return c.listPage(corpCode, bgnDe, endDe, pageNo)
	}

	best, err := latestBusinessReport(newPageIterator(fetch))
	if err != nil {
		return "", nil, err
	}
	return best.RceptNo, best, nil
}

// latestBusinessReport drains a page iterator, keeping the qualifying
// item with the greatest receipt date.
func latestBusinessReport(pages *pageIterator) (*ReportItem, error) {
	var best *ReportItem

	for {
		items, ok, err := pages.Next()
		if err != nil {
			return nil, fmt.Errorf("dart: report discovery aborted: %w", err)
		}
		if !ok {
			break
		}

		for i := range items {
			item := &items[i]
			if !IsBusinessReport(item.ReportNm) {
				continue
			}
			if best == nil || item.RceptDt > best.RceptDt {
				picked := *item
				best = &picked
			}
		}
	}

	if best == nil {
		return nil, ErrNoBusinessReport
	}
	return best, nil
}
