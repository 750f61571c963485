package actuator

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Jeffail/gabs/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/jonwraymond/check-actuator/auth"
	"github.com/jonwraymond/check-actuator/observe"
)

// maxBodySize caps the number of bytes read from a response.
const maxBodySize = 10 << 20

// Config configures a Client.
type Config struct {
	// BaseURL is the actuator base, e.g. http://localhost:8080/actuator.
	BaseURL string

	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool

	// TrustStore is a PEM file of CA certificates used instead of the
	// system pool.
	TrustStore string

	// Credentials are sent as HTTP basic auth when set.
	Credentials auth.Credentials

	// Timeout bounds each request.
	// Default: 10 seconds
	Timeout time.Duration

	// Transport is the base round tripper. Default: a clone of
	// http.DefaultTransport carrying the TLS settings above.
	Transport http.RoundTripper
}

// Client fetches documents from one actuator base URL.
type Client struct {
	base       string
	httpClient *http.Client
	mw         *observe.Middleware
}

// Option configures a Client.
type Option func(*Client)

// WithMiddleware observes every request with mw.
func WithMiddleware(mw *observe.Middleware) Option {
	return func(c *Client) {
		if mw != nil {
			c.mw = mw
		}
	}
}

// NewClient creates a Client from cfg.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, cfg.BaseURL)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	transport := cfg.Transport
	if transport == nil {
		tlsConfig, err := newTLSConfig(cfg)
		if err != nil {
			return nil, err
		}
		t := http.DefaultTransport.(*http.Transport).Clone()
		t.TLSClientConfig = tlsConfig
		transport = t
	}

	c := &Client{
		base: base,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(auth.NewTransport(cfg.Credentials, transport)),
		},
		mw: observe.NoopMiddleware(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func newTLSConfig(cfg Config) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	}
	if cfg.TrustStore == "" {
		return tlsConfig, nil
	}

	// A trust store always means verification against it.
	tlsConfig.InsecureSkipVerify = false

	pem, err := os.ReadFile(cfg.TrustStore)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTrustStore, err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("%w: no PEM certificates in %s", ErrTrustStore, cfg.TrustStore)
	}
	tlsConfig.RootCAs = pool
	return tlsConfig, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.base
}

// HealthURL returns the health endpoint URL.
func (c *Client) HealthURL() string {
	return c.base + "/health"
}

// MetricsURL returns the metrics endpoint URL.
func (c *Client) MetricsURL() string {
	return c.base + "/metrics"
}

// MetricURL returns the endpoint URL of a single named metric.
func (c *Client) MetricURL(name string) string {
	return c.MetricsURL() + "/" + url.PathEscape(strings.TrimSpace(name))
}

// Health fetches and wraps the health document.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	doc, err := c.Fetch(ctx, c.HealthURL())
	if err != nil {
		return nil, err
	}
	return NewHealth(doc), nil
}

// Metrics fetches the flat metrics document of version 1 applications.
func (c *Client) Metrics(ctx context.Context) (*Metric, error) {
	doc, err := c.Fetch(ctx, c.MetricsURL())
	if err != nil {
		return nil, err
	}
	return NewMetric("", doc), nil
}

// Metric fetches a single named metric of version 2/3 applications.
func (c *Client) Metric(ctx context.Context, name string) (*Metric, error) {
	doc, err := c.Fetch(ctx, c.MetricURL(name))
	if err != nil {
		return nil, err
	}
	return NewMetric(strings.TrimSpace(name), doc), nil
}

// Fetch issues a GET to rawURL and parses the JSON body.
//
// Errors wrap ErrConnection, ErrTLS or ErrNoData, or are a *StatusError.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*Document, error) {
	var doc *Document
	err := c.mw.Wrap(rawURL, func(ctx context.Context) error {
		var err error
		doc, err = c.fetch(ctx, rawURL)
		return err
	})(ctx)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *Client) fetch(ctx context.Context, rawURL string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classify(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !accepted(resp.StatusCode) {
		return nil, &StatusError{Code: resp.StatusCode, URL: rawURL}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, fmt.Errorf("%w: empty body from %s", ErrNoData, rawURL)
	}

	parsed, err := gabs.ParseJSON(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}

	contentType := resp.Header.Get("Content-Type")
	return &Document{
		URL:         rawURL,
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Version:     DetectVersion(contentType),
		root:        parsed,
	}, nil
}

func accepted(code int) bool {
	return (code >= 200 && code < 300) || code == http.StatusServiceUnavailable
}

// classify wraps a transport error with ErrTLS or ErrConnection.
func classify(err error) error {
	var (
		unknownAuthority x509.UnknownAuthorityError
		hostname         x509.HostnameError
		invalid          x509.CertificateInvalidError
		verification     *tls.CertificateVerificationError
		recordHeader     tls.RecordHeaderError
	)
	switch {
	case errors.As(err, &unknownAuthority),
		errors.As(err, &hostname),
		errors.As(err, &invalid),
		errors.As(err, &verification),
		errors.As(err, &recordHeader):
		return fmt.Errorf("%w: %v", ErrTLS, err)
	case strings.Contains(err.Error(), "tls:"):
		return fmt.Errorf("%w: %v", ErrTLS, err)
	default:
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
}
