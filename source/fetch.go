package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rabitt1ove/syukujitsu"
)

const (
	// CKANURL is the e-Gov Data Portal entry for the holiday dataset.
	CKANURL = "https://data.e-gov.go.jp/data/api/action/package_show?id=cao_20190522_0002"

	// DefaultURL is the well-known location of the holiday list.
	DefaultURL = "https://www8.cao.go.jp/chosei/shukujitsu/syukujitsu.csv"
	altURL     = "https://www8.cao.go.jp/chosei/shukujitsu/shukujitsu.csv"

	maxJSONResponseSize = 1 * 1024 * 1024
	maxCSVResponseSize  = 5 * 1024 * 1024

	userAgent = "syukujitsu/1.0 (https://github.com/rabitt1ove/syukujitsu)"
)

// ErrDisallowedURL is returned for CSV URLs outside the allowed hosts.
var ErrDisallowedURL = errors.New("source: disallowed URL")

// AllowedHosts are the hosts a CKAN-resolved CSV URL may point at.
var AllowedHosts = map[string]bool{
	"www8.cao.go.jp": true,
	"www.cao.go.jp":  true,
}

type ckanResponse struct {
	Success bool `json:"success"`
	Result  struct {
		Resources []struct {
			URL    string `json:"url"`
			Format string `json:"format"`
		} `json:"resources"`
	} `json:"result"`
}

// Fetcher downloads the holiday list. The zero value is usable; it
// resolves the URL through CKAN and falls back to the well-known URLs.
type Fetcher struct {
	Client         *http.Client
	Logger         logrus.FieldLogger
	CKANURL        string        // Empty disables CKAN resolution when FallbackURLs is set.
	FallbackURLs   []string      // Tried in order after the CKAN-resolved URL.
	MaxRetries     int           // Attempts per URL. Defaults to 3.
	RetryBaseDelay time.Duration // Doubled after each retry. NewFetcher uses 2s.
}

// NewFetcher returns a Fetcher with the default endpoints.
func NewFetcher(client *http.Client, logger logrus.FieldLogger) *Fetcher {
	return &Fetcher{
		Client:         client,
		Logger:         logger,
		CKANURL:        CKANURL,
		FallbackURLs:   []string{DefaultURL, altURL},
		MaxRetries:     3,
		RetryBaseDelay: 2 * time.Second,
	}
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return http.DefaultClient
}

func (f *Fetcher) log() logrus.FieldLogger {
	if f.Logger != nil {
		return f.Logger
	}
	return logrus.StandardLogger()
}

func (f *Fetcher) retries() int {
	if f.MaxRetries > 0 {
		return f.MaxRetries
	}
	return 3
}

func (f *Fetcher) endpoints() (ckan string, fallbacks []string) {
	if f.CKANURL == "" && len(f.FallbackURLs) == 0 {
		return CKANURL, []string{DefaultURL, altURL}
	}
	return f.CKANURL, f.FallbackURLs
}

// Fetch returns the raw (Shift_JIS) bytes of the holiday list.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	ckan, fallbacks := f.endpoints()

	var urls []string
	if ckan != "" {
		if resolved, err := f.ResolveURL(ctx, ckan); err != nil {
			f.log().WithError(err).Warn("CKAN resolution failed, falling back to direct URLs")
		} else {
			urls = append(urls, resolved)
		}
	}
	for _, fb := range fallbacks {
		if len(urls) == 0 || urls[0] != fb {
			urls = append(urls, fb)
		}
	}
	if len(urls) == 0 {
		return nil, errors.New("source: no URLs to fetch")
	}

	var lastErr error
	for _, u := range urls {
		body, err := f.fetchWithRetry(ctx, u)
		if err == nil {
			return body, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
	}
	return nil, fmt.Errorf("all URLs failed, last error: %w", lastErr)
}

// FetchRows downloads and decodes the holiday list.
func (f *Fetcher) FetchRows(ctx context.Context) ([]syukujitsu.Row, error) {
	body, err := f.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return Decode(bytes.NewReader(body))
}

// FetchCalendar downloads the holiday list and builds a calendar from it.
func (f *Fetcher) FetchCalendar(ctx context.Context) (*syukujitsu.Calendar, error) {
	rows, err := f.FetchRows(ctx)
	if err != nil {
		return nil, err
	}
	return syukujitsu.New(rows)
}

// ResolveURL asks the CKAN API at apiURL for the CSV download URL.
func (f *Fetcher) ResolveURL(ctx context.Context, apiURL string) (string, error) {
	f.log().WithField("url", apiURL).Debug("resolving CSV URL via CKAN")

	var ckan ckanResponse
	err := f.withRetry(ctx, apiURL, func(resp *http.Response) error {
		if err := json.NewDecoder(io.LimitReader(resp.Body, maxJSONResponseSize)).Decode(&ckan); err != nil {
			return fmt.Errorf("CKAN response decode failed: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if !ckan.Success {
		return "", errors.New("CKAN API returned success=false")
	}

	for _, r := range ckan.Result.Resources {
		if strings.EqualFold(r.Format, "CSV") && r.URL != "" {
			if err := ValidateURL(r.URL); err != nil {
				return "", fmt.Errorf("CKAN returned invalid URL: %w", err)
			}
			f.log().WithField("url", r.URL).Debug("resolved CSV URL")
			return r.URL, nil
		}
	}
	return "", errors.New("no CSV resource found in CKAN response")
}

// ValidateURL checks that rawURL is HTTPS and points at an allowed host.
func ValidateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrDisallowedURL, rawURL, err)
	}
	if parsed.Scheme != "https" {
		return fmt.Errorf("%w: %q: only HTTPS is allowed", ErrDisallowedURL, rawURL)
	}
	if !AllowedHosts[parsed.Hostname()] {
		return fmt.Errorf("%w: %q: host %q is not allowed", ErrDisallowedURL, rawURL, parsed.Hostname())
	}
	return nil
}

func (f *Fetcher) fetchWithRetry(ctx context.Context, u string) ([]byte, error) {
	var body []byte
	err := f.withRetry(ctx, u, func(resp *http.Response) error {
		b, err := io.ReadAll(io.LimitReader(resp.Body, maxCSVResponseSize))
		if err != nil {
			return fmt.Errorf("reading %s: %w", u, err)
		}
		body = b
		return nil
	})
	return body, err
}

// withRetry GETs u, retrying network errors, 429 and 5xx with exponential
// backoff. read is called with a 200 response.
func (f *Fetcher) withRetry(ctx context.Context, u string, read func(*http.Response) error) error {
	logger := f.log().WithField("url", u)
	var lastErr error
	for attempt := 0; attempt < f.retries(); attempt++ {
		if attempt > 0 {
			delay := f.RetryBaseDelay * time.Duration(1<<(attempt-1))
			logger.WithField("attempt", attempt+1).Infof("retrying in %v", delay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		logger.Info("fetching")
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := f.client().Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = fmt.Errorf("GET %s: %w", u, err)
			logger.WithError(err).Warn("request failed")
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("GET %s: status %d", u, resp.StatusCode)
			logger.WithField("status", resp.StatusCode).Warn("retryable status")
			continue
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return fmt.Errorf("GET %s: status %d", u, resp.StatusCode)
		}

		err = read(resp)
		resp.Body.Close()
		return err
	}
	return lastErr
}
