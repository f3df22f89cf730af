// Package dart is a client for the OpenDART disclosure API.
// API Documentation: https://opendart.fss.or.kr/guide/main.do
//
// It covers the two endpoints this pipeline needs: the filing list
// (list.json) and the filing document bundle (document.xml).
package dart

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://opendart.fss.or.kr/api"

	// statusOK is the DART success code. Anything else on list.json
	// means "no more results" or a request-level error.
	statusOK = "000"

	// pageSize is the fixed list.json page size.
	pageSize = 100

	listTimeout     = 60 * time.Second
	documentTimeout = 90 * time.Second
)

// Client issues OpenDART API requests with a fixed key.
type Client struct {
	key     string
	baseURL string

	listClient *http.Client
	docClient  *http.Client
}

// NewClient creates an OpenDART client for the given API key.
func NewClient(key string) *Client {
	return &Client{
		key:        key,
		baseURL:    defaultBaseURL,
		listClient: &http.Client{Timeout: listTimeout},
		docClient:  &http.Client{Timeout: documentTimeout},
	}
}

// ListResponse is the list.json envelope.
type ListResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	List    []ReportItem `json:"list"`
}

// ReportItem is one filing in a list.json response. Fields beyond
// rcept_no / rcept_dt / report_nm are passthrough.
type ReportItem struct {
	CorpCode  string `json:"corp_code"`
	CorpName  string `json:"corp_name"`
	CorpCls   string `json:"corp_cls"`
	StockCode string `json:"stock_code"`
	ReportNm  string `json:"report_nm"`
	RceptNo   string `json:"rcept_no"`
	RceptDt   string `json:"rcept_dt"`
	FlrNm     string `json:"flr_nm"`
	Rm        string `json:"rm"`
}

// listPage fetches one page of filings for a corp code within a closed
// YYYYMMDD window. A non-2xx response is a transport error; a non-"000"
// status is returned to the caller to interpret.
func (c *Client) listPage(corpCode, bgnDe, endDe string, pageNo int) (*ListResponse, error) {
	q := url.Values{}
	q.Set("crtfc_key", c.key)
	q.Set("corp_code", corpCode)
	q.Set("bgn_de", bgnDe)
	q.Set("end_de", endDe)
	q.Set("page_no", strconv.Itoa(pageNo))
	q.Set("page_count", strconv.Itoa(pageSize))

	reqURL := c.baseURL + "/list.json?" + q.Encode()

	resp, err := c.listClient.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("dart: list request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dart: list.json returned HTTP %d", resp.StatusCode)
	}

	var out ListResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("dart: decode list response: %w", err)
	}

	return &out, nil
}

// DownloadDocument fetches the compressed document bundle for a receipt
// number and returns the raw response bytes. No retry: any transport
// failure propagates to the caller unchanged.
func (c *Client) DownloadDocument(receiptNo string) ([]byte, error) {
	q := url.Values{}
	q.Set("crtfc_key", c.key)
	q.Set("rcept_no", receiptNo)

	reqURL := c.baseURL + "/document.xml?" + q.Encode()

	resp, err := c.docClient.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("dart: document request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dart: document.xml returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("dart: read document body: %w", err)
	}

	return body, nil
}
