package docket

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/docketwatch/docketwatch/internal/logger"
)

const (
	Timeout = 30 * time.Second

	// maxBodySize caps how much of a docket page we read; real pages are
	// well under 1 MB.
	maxBodySize = 4 << 20
)

// failurePhrases are the court site's known soft-failure banners. A 200
// response whose visible text contains any of these did not actually serve
// the requested case.
var failurePhrases = []string{
	"server is busy",
	"could not be found",
	"error has occurred",
	"unavailable",
	"temporarily unavailable",
	"try again later",
}

// BrowserHeaders returns the static browser-emulation headers sent with every
// docket request. The court site serves an error page to clients that don't
// look like a real browser.
func BrowserHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36",
		"Referer":         "https://www.superiorcourt.maricopa.gov/",
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.9",
		"Connection":      "keep-alive",
		"DNT":             "1",
	}
}

// Page is one fetched docket document. Doc is the parsed HTML, populated only
// for 200 responses.
type Page struct {
	CaseNumber string
	StatusCode int
	Body       []byte
	Doc        *goquery.Document
}

// FailurePhrase scans the page's visible text (case-insensitive) for the
// known soft-failure banners and returns the first match, or "" when the page
// looks like a real docket.
func (p *Page) FailurePhrase() string {
	if p.Doc == nil {
		return ""
	}
	text := strings.ToLower(p.Doc.Text())
	for _, phrase := range failurePhrases {
		if strings.Contains(text, phrase) {
			return phrase
		}
	}
	return ""
}

// Fetcher retrieves docket pages from the court site
type Fetcher struct {
	baseURL string
	headers map[string]string
	client  *http.Client

	// insecure is built on first use; the court site's certificate chain is
	// intermittently broken, so a verification failure gets exactly one
	// retry with verification disabled.
	insecure *http.Client
}

// New creates a Fetcher for the given lookup base URL; the case number is
// appended verbatim as the query value.
func New(baseURL string) *Fetcher {
	return &Fetcher{
		baseURL: baseURL,
		headers: BrowserHeaders(),
		client: &http.Client{
			Timeout: Timeout,
		},
	}
}

// Fetch retrieves the docket page for one case number. Non-200 statuses are
// not errors: the caller gets the Page and decides. A TLS certificate
// verification failure is retried once with verification disabled; any other
// transport error (or a second TLS failure) is returned.
func (f *Fetcher) Fetch(caseNumber string) (*Page, error) {
	fullURL := f.baseURL + caseNumber

	resp, err := f.get(f.client, fullURL)
	if err != nil {
		if !isCertError(err) {
			return nil, fmt.Errorf("fetching docket: %w", err)
		}

		logger.Warn("TLS verification failed, retrying without verification", logger.Fields{
			"case_number": caseNumber,
		})

		resp, err = f.get(f.insecureClient(), fullURL)
		if err != nil {
			return nil, fmt.Errorf("fetching docket (insecure retry): %w", err)
		}
	}
	defer resp.Body.Close()

	page := &Page{
		CaseNumber: caseNumber,
		StatusCode: resp.StatusCode,
	}

	if resp.StatusCode != http.StatusOK {
		return page, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading docket page: %w", err)
	}
	page.Body = body

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	page.Doc = doc

	return page, nil
}

// get issues a GET with the fetcher's static headers
func (f *Fetcher) get(client *http.Client, url string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for k, v := range f.headers {
		req.Header.Set(k, v)
	}
	return client.Do(req)
}

// insecureClient lazily builds the verification-disabled client used for the
// one-shot TLS retry.
func (f *Fetcher) insecureClient() *http.Client {
	if f.insecure == nil {
		f.insecure = &http.Client{
			Timeout: Timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: true,
				},
			},
		}
	}
	return f.insecure
}

// isCertError reports whether err is a TLS certificate verification failure
func isCertError(err error) bool {
	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return true
	}
	var unknownAuthority x509.UnknownAuthorityError
	if errors.As(err, &unknownAuthority) {
		return true
	}
	var hostname x509.HostnameError
	return errors.As(err, &hostname)
}
