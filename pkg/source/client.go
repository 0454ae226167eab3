package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"

	"tableflip.dev/fip/pkg/logging"
)

const userAgent = "fip (+https://tableflip.dev/fip)"

// HTTPConfig tunes the shared HTTP client.
type HTTPConfig struct {
	// Proxy is an optional proxy URL, e.g. http://127.0.0.1:8080.
	Proxy string
	// Timeout bounds a whole request; zero means no timeout.
	Timeout time.Duration
}

// NewClient returns a client that issues each request exactly once. Failed
// attempts are reported to the caller, never retried.
func NewClient(cfg HTTPConfig) (*retryablehttp.Client, error) {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 0
	rc.CheckRetry = noRetry
	rc.Logger = leveledLogger{logging.For("http")}
	rc.HTTPClient.Timeout = cfg.Timeout

	if cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, fmt.Errorf("source: invalid proxy %q: %w", cfg.Proxy, err)
		}
		if t, ok := rc.HTTPClient.Transport.(*http.Transport); ok {
			t.Proxy = http.ProxyURL(proxyURL)
		}
	}
	return rc, nil
}

func noRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return false, nil
}

type response struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (r *response) ok() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *response) httpError() *HTTPError {
	status := strings.TrimSpace(r.Status)
	if status == "" {
		status = fmt.Sprintf("%d %s", r.StatusCode, http.StatusText(r.StatusCode))
	}
	return &HTTPError{StatusCode: r.StatusCode, Status: status}
}

// get issues a GET and reads the whole body. display is the URL used in
// errors and logs, with secrets removed.
func get(ctx context.Context, client *retryablehttp.Client, rawURL, display string) (*response, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &TransportError{Op: "build request", URL: display, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json, text/csv, text/plain, */*")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "GET", URL: display, Err: scrubError(err, display)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "read body", URL: display, Err: err}
	}
	return &response{StatusCode: resp.StatusCode, Status: resp.Status, Body: body}, nil
}

// leveledLogger bridges retryablehttp's key/value logger onto logrus.
type leveledLogger struct {
	l *logrus.Entry
}

func (l leveledLogger) fields(kv []interface{}) *logrus.Entry {
	f := logrus.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		f[fmt.Sprint(kv[i])] = redact(kv[i+1])
	}
	return l.l.WithFields(f)
}

func (l leveledLogger) Error(msg string, kv ...interface{}) { l.fields(kv).Error(msg) }
func (l leveledLogger) Info(msg string, kv ...interface{})  { l.fields(kv).Debug(msg) }
func (l leveledLogger) Debug(msg string, kv ...interface{}) { l.fields(kv).Debug(msg) }
func (l leveledLogger) Warn(msg string, kv ...interface{})  { l.fields(kv).Warn(msg) }

// scrubError drops the request URL from a client error. retryablehttp and
// net/http both embed the full URL, key included, in their messages.
func scrubError(err error, display string) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return &url.Error{Op: ue.Op, URL: display, Err: ue.Err}
	}
	return errors.New(scrubKey(err.Error()))
}

var keyParam = regexp.MustCompile(`([?&]key=)[^&\s"']*`)

// scrubKey masks every key query parameter inside free text.
func scrubKey(s string) string {
	return keyParam.ReplaceAllString(s, "${1}REDACTED")
}

// redact strips the key query parameter from logged values.
func redact(v interface{}) interface{} {
	switch u := v.(type) {
	case *url.URL:
		return redactURL(u.String())
	case string:
		if strings.Contains(u, "key=") {
			return scrubKey(u)
		}
	case error:
		if u != nil && strings.Contains(u.Error(), "key=") {
			return scrubKey(u.Error())
		}
	}
	return v
}

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
