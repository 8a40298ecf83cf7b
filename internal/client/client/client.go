package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/sitecms/internal/client/tokenstore"
	"github.com/dmitrijs2005/sitecms/internal/common"
	"github.com/dmitrijs2005/sitecms/internal/logging"
	"github.com/dmitrijs2005/sitecms/internal/models"
)

// Request describes one API call. Body, when set, is sent as JSON.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Auth   bool
}

// Client sends requests to the API rooted at its base URL. The zero value is
// not usable; build one with New.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	store        tokenstore.Store
	log          logging.Logger
	timeout      time.Duration
	newRequestID func() string
}

// Option configures a Client in New.
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger for request tracing. The default discards.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithTimeout bounds every request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// New returns a Client for baseURL that reads bearer tokens from store.
// A trailing slash on baseURL is ignored.
func New(baseURL string, store tokenstore.Store, opts ...Option) *Client {
	c := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   http.DefaultClient,
		store:        store,
		log:          logging.NewNop(),
		newRequestID: uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// WithTokenStore returns a copy of c that reads and clears tokens in store.
func (c *Client) WithTokenStore(store tokenstore.Store) *Client {
	cp := *c
	cp.store = store
	return &cp
}

// Store returns the token store the client is bound to.
func (c *Client) Store() tokenstore.Store { return c.store }

// BaseURL returns the base URL without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// Do sends r and decodes the response into out, which may be nil. When the
// response envelope carries data, only data is decoded; otherwise the whole
// body is. Failures are *APIError values.
func (c *Client) Do(ctx context.Context, r Request, out any) error {
	var body []byte
	contentType := ""
	if r.Body != nil {
		b, err := json.Marshal(r.Body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = b
		contentType = "application/json"
	}
	return c.send(ctx, r.Method, r.Path, r.Query, body, contentType, r.Auth, out)
}

// Get is Do with GET and the given query.
func (c *Client) Get(ctx context.Context, path string, query url.Values, auth bool, out any) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query, Auth: auth}, out)
}

// Post is Do with POST and a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, auth bool, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body, Auth: auth}, out)
}

// Put is Do with PUT and a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any, auth bool, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body, Auth: auth}, out)
}

// Patch is Do with PATCH and a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any, auth bool, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPatch, Path: path, Body: body, Auth: auth}, out)
}

// Delete is Do with DELETE.
func (c *Client) Delete(ctx context.Context, path string, auth bool, out any) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path, Auth: auth}, out)
}

// Upload posts the content of r as the single file field of a multipart
// form. Uploads are always authorized.
func (c *Client) Upload(ctx context.Context, path, field, filename string, r io.Reader, out any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read upload: %w", err)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	h.Set("Content-Type", mimetype.Detect(data).String())
	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create form part: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("write form part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("close form: %w", err)
	}

	return c.send(ctx, http.MethodPost, path, nil, buf.Bytes(), mw.FormDataContentType(), true, out)
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body []byte, contentType string, auth bool, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}

	requestID := c.newRequestID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeader, requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if auth && c.store != nil {
		if token, ok := c.store.Get(ctx); ok {
			req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
		}
	}

	log := c.log.With("method", method, "path", path, "request_id", requestID)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, "api request failed", "error", err)
		return &APIError{Kind: ErrNetwork, Message: networkMessage(err), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Kind: ErrNetwork, Status: resp.StatusCode, Message: networkMessage(err), Err: err}
	}

	log.Debug(ctx, "api request", "status", resp.StatusCode, "duration", time.Since(start))

	return c.decode(ctx, resp.StatusCode, raw, auth, out)
}

func (c *Client) decode(ctx context.Context, status int, raw []byte, auth bool, out any) error {
	var env models.Envelope
	parsed := len(bytes.TrimSpace(raw)) > 0 && json.Unmarshal(raw, &env) == nil

	if status < 200 || status > 299 {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", status)
		}
		apiErr := &APIError{Kind: kindForStatus(status), Status: status, Message: msg}
		if auth && errors.Is(apiErr, ErrAuthentication) && c.store != nil {
			if err := c.store.Clear(ctx); err != nil {
				c.log.Warn(ctx, "failed to clear rejected token", "error", err)
			}
		}
		return apiErr
	}

	if parsed && env.Success != nil && !*env.Success {
		msg := env.Message
		if msg == "" {
			msg = "request was not successful"
		}
		return &APIError{Kind: ErrValidation, Status: status, Message: msg}
	}

	if out == nil {
		return nil
	}

	payload := raw
	if parsed && env.HasData() {
		payload = env.Data
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &APIError{Kind: ErrServer, Status: status, Message: "invalid response body: " + err.Error(), Err: err}
	}
	return nil
}

func networkMessage(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	case errors.Is(err, context.Canceled):
		return "request cancelled"
	}
	return "network error: " + err.Error()
}
