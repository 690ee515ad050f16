package nso

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/palmersample/rest"
	"github.com/palmersample/rest/device"
	"github.com/palmersample/rest/logger"
)

// session is the HTTP session exclusively owned by a connected client.
type session interface {
	Do(req *http.Request) (*http.Response, error)
	Close() error
}

// httpSession adapts *http.Client to the session interface.
type httpSession struct {
	client *http.Client
}

func (s *httpSession) Do(req *http.Request) (*http.Response, error) {
	return s.client.Do(req)
}

func (s *httpSession) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

// Client is a REST client for Cisco NSO northbound APIs. One mutex
// guards the whole public surface, so concurrent callers serialize
// instead of racing on the shared session. The session must not be
// shared across devices or aliases.
type Client struct {
	mu        sync.Mutex
	cfg       Config
	log       *logger.Logger
	session   session
	baseURL   string
	connected bool
}

var _ rest.Connector = (*Client)(nil)

// NewClient creates a disconnected NSO client from cfg.
func NewClient(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}
	log = log.WithComponent("nso").WithDevice(cfg.Device, cfg.Alias)

	return &Client{cfg: cfg, log: log}, nil
}

// Connected reports whether a session is established.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// Connect establishes the session and probes the device with a GET on
// /api using HTTP basic auth. It is a no-op when already connected.
// The probe must return exactly 200; any other code fails with an
// unexpected-status error and leaves the client disconnected.
// Transport-level failures propagate unwrapped.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		return nil
	}

	host, port, err := c.target()
	if err != nil {
		return err
	}
	baseURL := fmt.Sprintf("%s://%s:%d", c.cfg.Protocol, host, port)
	loginURL := baseURL + "/api"

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if c.cfg.TLS != nil {
		tlsCfg, err := c.cfg.TLS.Build()
		if err != nil {
			return err
		}
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
		}
	}
	sess := &httpSession{client: &http.Client{Transport: transport}}

	c.log.Info("connecting", map[string]any{logger.FieldURL: loginURL})

	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, loginURL, nil)
	if err != nil {
		return rest.NewConfigurationError(c.cfg.Device, fmt.Sprintf("create probe request: %v", err))
	}
	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)

	resp, err := sess.Do(req)
	if err != nil {
		return err
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	c.log.Debug("probe response", map[string]any{logger.FieldStatus: resp.StatusCode})

	if resp.StatusCode != http.StatusOK {
		return &rest.Error{
			Code:       rest.ErrCodeUnexpectedStatus,
			Device:     c.cfg.Device,
			Alias:      c.cfg.Alias,
			StatusCode: resp.StatusCode,
			Expected:   []int{http.StatusOK},
			Body:       body,
			Message: fmt.Sprintf("connection to '%s:%d' has returned code '%d' instead of the expected status code '%d'",
				host, port, resp.StatusCode, http.StatusOK),
		}
	}

	c.session = sess
	c.baseURL = baseURL
	c.connected = true
	c.log.Info("connected", map[string]any{logger.FieldURL: baseURL})
	return nil
}

// Disconnect closes the session. The client transitions to
// disconnected even when closing the session fails; the close error is
// returned.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	if c.session != nil {
		err = c.session.Close()
	}
	c.session = nil
	c.connected = false
	c.log.Info("disconnected")
	return err
}

// Unwrap returns the underlying *http.Client, or nil when the client
// is disconnected or the session is not HTTP-backed.
func (c *Client) Unwrap() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.session.(*httpSession); ok {
		return s.client
	}
	return nil
}

// Get retrieves information from the device.
func (c *Client) Get(ctx context.Context, path string, opts ...rest.RequestOption) (*rest.Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, opts)
}

// Post configures information on the device. Payload may be a raw
// string or []byte, or a structured map; structured payloads require
// an explicit content type.
func (c *Client) Post(ctx context.Context, path string, payload any, opts ...rest.RequestOption) (*rest.Response, error) {
	return c.do(ctx, http.MethodPost, path, payload, opts)
}

// Put replaces information on the device. Payload rules match Post.
func (c *Client) Put(ctx context.Context, path string, payload any, opts ...rest.RequestOption) (*rest.Response, error) {
	return c.do(ctx, http.MethodPut, path, payload, opts)
}

// Patch merges information into the device. Payload rules match Post.
func (c *Client) Patch(ctx context.Context, path string, payload any, opts ...rest.RequestOption) (*rest.Response, error) {
	return c.do(ctx, http.MethodPatch, path, payload, opts)
}

// Delete removes information from the device.
func (c *Client) Delete(ctx context.Context, path string, opts ...rest.RequestOption) (*rest.Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil, opts)
}

// do executes a single request/response exchange. Each call is atomic:
// no retry, no backoff, and headers are built fresh over the client's
// base map so no state leaks across calls.
func (c *Client) do(ctx context.Context, method, path string, payload any, opts []rest.RequestOption) (*rest.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil, rest.NewNotConnectedError(c.cfg.Device, c.cfg.Alias)
	}

	spec := rest.RequestSpec{
		ExpectedStatus: defaultExpectedStatus(method),
		Timeout:        c.cfg.Timeout,
	}
	spec.Apply(opts...)

	mutating := method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch

	body, contentType, err := c.resolveBody(payload, spec.ContentType, mutating)
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string, len(c.cfg.Headers)+len(spec.Headers)+2)
	for k, v := range c.cfg.Headers {
		headers[k] = v
	}
	headers["Accept"] = acceptHeader(contentType)
	if mutating {
		headers["Content-type"] = contentTypeHeader(path, contentType)
	}
	// caller-supplied headers merge last and may override negotiated ones
	for k, v := range spec.Headers {
		headers[k] = v
	}

	fullURL := c.baseURL + path
	requestID := uuid.NewString()
	c.log.Debug("sending request", map[string]any{
		logger.FieldRequestID: requestID,
		logger.FieldMethod:    method,
		logger.FieldURL:       fullURL,
	})
	if len(body) > 0 {
		c.log.Debug("request payload", map[string]any{
			logger.FieldRequestID: requestID,
			"payload":             string(body),
		})
	}

	reqCtx, cancel := context.WithTimeout(ctx, spec.Timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(reqCtx, method, fullURL, reader)
	if err != nil {
		return nil, rest.NewConfigurationError(c.cfg.Device, fmt.Sprintf("create request: %v", err))
	}
	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.session.Do(req)
	if err != nil {
		// transport failures propagate unwrapped
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	result := &rest.Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       respBody,
	}

	c.log.Debug("response received", map[string]any{
		logger.FieldRequestID: requestID,
		logger.FieldStatus:    resp.StatusCode,
	})

	if !containsStatus(spec.ExpectedStatus, resp.StatusCode) {
		return result, rest.NewStatusError(c.cfg.Device, resp.StatusCode, spec.ExpectedStatus, respBody)
	}
	return result, nil
}

// target resolves the host and port to dial: the tunnel collaborator
// wins when configured, otherwise Host, otherwise the IP literal.
func (c *Client) target() (string, int, error) {
	if c.cfg.Tunnel != nil {
		ip, port, err := c.cfg.Tunnel.Endpoint(c.cfg.Device, c.cfg.Alias)
		if err != nil {
			return "", 0, rest.NewConfigurationError(c.cfg.Device,
				fmt.Sprintf("resolve tunnel endpoint: %v", err))
		}
		if addr, parseErr := netip.ParseAddr(ip); parseErr == nil {
			ip = device.URLHost(addr)
		}
		return ip, port, nil
	}

	conn := device.Connection{Host: c.cfg.Host, IP: c.cfg.IP}
	host, err := conn.ResolveHost()
	if err != nil {
		return "", 0, rest.NewConfigurationError(c.cfg.Device, err.Error())
	}
	return host, c.cfg.Port, nil
}

// resolveBody serializes the payload and resolves the effective
// content type. For GET and DELETE the client default applies; for
// mutating verbs a raw payload with no explicit content type is
// sniffed: a leading '<' means xml, anything else json.
func (c *Client) resolveBody(payload any, contentType string, mutating bool) ([]byte, string, error) {
	if !mutating {
		if contentType == "" {
			contentType = c.cfg.ContentType
		}
		return nil, contentType, nil
	}

	switch v := payload.(type) {
	case nil:
		return c.sniffed(nil, contentType)
	case string:
		return c.sniffed([]byte(v), contentType)
	case []byte:
		return c.sniffed(v, contentType)
	default:
		if contentType == "" {
			return nil, "", rest.NewConfigurationError(c.cfg.Device,
				"content type is required when payload is structured")
		}
		switch strings.ToLower(contentType) {
		case ContentTypeJSON:
			data, err := json.Marshal(v)
			if err != nil {
				return nil, "", rest.NewConfigurationError(c.cfg.Device,
					fmt.Sprintf("encode json payload: %v", err))
			}
			return data, contentType, nil
		case ContentTypeXML:
			m, ok := v.(map[string]any)
			if !ok {
				return nil, "", rest.NewConfigurationError(c.cfg.Device,
					fmt.Sprintf("xml payload must be a map, got %T", v))
			}
			doc, err := mapToXML(m)
			if err != nil {
				return nil, "", rest.NewConfigurationError(c.cfg.Device,
					fmt.Sprintf("encode xml payload: %v", err))
			}
			return []byte(doc), contentType, nil
		default:
			return nil, "", rest.NewConfigurationError(c.cfg.Device,
				fmt.Sprintf("cannot serialize structured payload for content type '%s'", contentType))
		}
	}
}

// sniffed resolves the content type of a raw payload. The leading '<'
// heuristic is preserved for compatibility with existing callers; it
// is ambiguous for payloads that are neither XML nor JSON.
func (c *Client) sniffed(data []byte, contentType string) ([]byte, string, error) {
	if contentType == "" {
		if strings.HasPrefix(strings.TrimSpace(string(data)), "<") {
			contentType = ContentTypeXML
		} else {
			contentType = ContentTypeJSON
		}
	}
	return data, contentType, nil
}

// defaultExpectedStatus returns the status codes accepted by default.
// GET's set keeps 204 as documented, unusual as a no-content GET is.
func defaultExpectedStatus(method string) []int {
	if method == http.MethodGet {
		return []int{http.StatusNoContent, http.StatusOK}
	}
	return []int{http.StatusCreated, http.StatusNoContent, http.StatusOK}
}

func containsStatus(set []int, code int) bool {
	for _, s := range set {
		if s == code {
			return true
		}
	}
	return false
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
