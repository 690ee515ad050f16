package rest

import "time"

// RequestSpec holds the per-call settings a request option can adjust.
// A fresh spec is built for every request; nothing in it is persisted
// or shared between calls.
type RequestSpec struct {
	// ContentType overrides the client's default content type for this
	// request ("json", "xml", or a literal media-type string passed
	// through verbatim).
	ContentType string
	// Headers are merged into the request last, after negotiated
	// headers, so they may override negotiated values.
	Headers map[string]string
	// ExpectedStatus is the set of status codes treated as success.
	ExpectedStatus []int
	// Timeout bounds this single request.
	Timeout time.Duration
}

// RequestOption configures a single request.
type RequestOption func(*RequestSpec)

// WithContentType overrides the content type for the request.
func WithContentType(contentType string) RequestOption {
	return func(s *RequestSpec) {
		s.ContentType = contentType
	}
}

// WithHeader adds a header to the request.
func WithHeader(key, value string) RequestOption {
	return func(s *RequestSpec) {
		if s.Headers == nil {
			s.Headers = make(map[string]string)
		}
		s.Headers[key] = value
	}
}

// WithHeaders merges the given headers into the request.
func WithHeaders(headers map[string]string) RequestOption {
	return func(s *RequestSpec) {
		if s.Headers == nil {
			s.Headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			s.Headers[k] = v
		}
	}
}

// WithExpectedStatus replaces the set of status codes accepted as
// success for the request.
func WithExpectedStatus(codes ...int) RequestOption {
	return func(s *RequestSpec) {
		s.ExpectedStatus = codes
	}
}

// WithTimeout overrides the request timeout.
func WithTimeout(timeout time.Duration) RequestOption {
	return func(s *RequestSpec) {
		s.Timeout = timeout
	}
}

// Apply runs the options over the spec.
func (s *RequestSpec) Apply(opts ...RequestOption) {
	for _, opt := range opts {
		opt(s)
	}
}

// Response is the result of a device REST request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers, flattened to single values.
	Headers map[string]string
	// Body is the raw response body. Decoding is the caller's
	// responsibility.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}
