package homes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/five82/homes/internal/logging"
)

// Gateway is the typed surface over the homes REST API.
// *Client implements it; tests substitute a mock.
type Gateway interface {
	ListHomes(ctx context.Context) ([]Home, error)
	GetHome(ctx context.Context, id ID) (Home, error)
	CreateHome(ctx context.Context, listing Listing) (Home, error)
	DeleteHome(ctx context.Context, id ID) error
}

// Ensure Client implements Gateway at compile time.
var _ Gateway = (*Client)(nil)

// Client talks to the homes HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	log       zerolog.Logger
}

const (
	// DefaultAPIBase is the endpoint used when none is configured.
	DefaultAPIBase   = "127.0.0.1:3001"
	defaultUserAgent = "homes/0.1"

	headerRequestID = "X-Request-ID"
	contentTypeJSON = "application/json"
)

// NewClient builds a Client for the given base endpoint (host:port or URL).
// No timeout is set; requests end when the transport or ctx says so.
func NewClient(apiBase string, logger zerolog.Logger) (*Client, error) {
	base, err := parseBaseURL(apiBase)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
		log:       logging.Component(logger, "gateway"),
	}, nil
}

// BaseURL returns the endpoint requests are resolved against.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// ListHomes fetches every home in server order.
func (c *Client) ListHomes(ctx context.Context) ([]Home, error) {
	const op = "list homes"
	if c == nil {
		return nil, &Error{Op: op, Kind: KindPrecondition, Err: errors.New("client is nil")}
	}
	var payload []Home
	if err := c.do(ctx, op, http.MethodGet, "/homes", nil, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		payload = []Home{}
	}
	return payload, nil
}

// GetHome fetches a single home. A missing home is reported like any other
// failed fetch.
func (c *Client) GetHome(ctx context.Context, id ID) (Home, error) {
	const op = "get home"
	if c == nil {
		return Home{}, &Error{Op: op, Kind: KindPrecondition, Err: errors.New("client is nil")}
	}
	if id.Empty() {
		return Home{}, &Error{Op: op, Kind: KindPrecondition, Err: ErrMissingID}
	}
	var payload Home
	if err := c.doURL(ctx, op, http.MethodGet, homePath(id), nil, &payload); err != nil {
		return Home{}, err
	}
	return payload, nil
}

// CreateHome submits a new listing and returns the stored record with its
// server-assigned id.
func (c *Client) CreateHome(ctx context.Context, listing Listing) (Home, error) {
	const op = "create home"
	if c == nil {
		return Home{}, &Error{Op: op, Kind: KindPrecondition, Err: errors.New("client is nil")}
	}
	body, err := json.Marshal(listing)
	if err != nil {
		return Home{}, &Error{Op: op, Kind: KindPrecondition, Err: errors.Wrap(err, "encode listing")}
	}
	var payload Home
	if err := c.do(ctx, op, http.MethodPost, "/homes", body, &payload); err != nil {
		return Home{}, err
	}
	return payload, nil
}

// DeleteHome asks the server to remove a home. The response body is ignored.
func (c *Client) DeleteHome(ctx context.Context, id ID) error {
	const op = "delete home"
	if c == nil {
		return &Error{Op: op, Kind: KindPrecondition, Err: errors.New("client is nil")}
	}
	if id.Empty() {
		return &Error{Op: op, Kind: KindPrecondition, Err: ErrMissingID}
	}
	return c.doURL(ctx, op, http.MethodDelete, homePath(id), nil, nil)
}

func homePath(id ID) *url.URL {
	raw := strings.TrimSpace(id.String())
	return &url.URL{Path: "/homes/" + raw, RawPath: "/homes/" + url.PathEscape(raw)}
}

func (c *Client) do(ctx context.Context, op, method, path string, body []byte, dest any) error {
	return c.doURL(ctx, op, method, &url.URL{Path: path}, body, dest)
}

func (c *Client) doURL(ctx context.Context, op, method string, rel *url.URL, body []byte, dest any) error {
	if ctx == nil {
		ctx = context.Background()
	}
	reqURL := c.baseURL.ResolveReference(rel)
	path := rel.EscapedPath()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return &Error{Op: op, Kind: KindPrecondition, Err: errors.Wrap(err, "create request")}
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(headerRequestID, requestID)

	logger := c.log.With().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Logger()

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Debug().Err(err).Dur("elapsed", time.Since(started)).Msg("request failed")
		return &Error{Op: op, Kind: KindTransport, Err: errors.Wrap(err, "execute request")}
	}
	defer func() { _ = resp.Body.Close() }()

	logger.Debug().Int("status", resp.StatusCode).Dur("elapsed", time.Since(started)).Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &Error{Op: op, Kind: KindStatus, Status: resp.StatusCode}
	}
	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &Error{Op: op, Kind: KindDecode, Status: resp.StatusCode, Err: errors.Wrap(err, "decode response")}
	}
	return nil
}

func parseBaseURL(apiBase string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBase)
	if trimmed == "" {
		trimmed = DefaultAPIBase
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, errors.Wrapf(err, "parse api base %q", apiBase)
	}
	if u.Host == "" {
		return nil, errors.Errorf("parse api base %q: missing host", apiBase)
	}
	u.Path = ""
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
