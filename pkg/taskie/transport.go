package taskie

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"taskie/pkg/log"
)

// TransportConfig configures the HTTP client built by NewHTTPClient.
type TransportConfig struct {
	// Timeout is the fixed per-request deadline. Zero means DefaultTimeout.
	Timeout time.Duration
	// LogBodies logs request and response bodies at debug level.
	LogBodies bool
	// Base is the underlying round tripper. Nil means http.DefaultTransport.
	Base http.RoundTripper
}

// NewHTTPClient builds the client every Taskie exchange goes through:
// auth header injection from tokens, then exchange logging.
func NewHTTPClient(cfg TransportConfig, l log.Logger, tokens TokenSource) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	base := cfg.Base
	if base == nil {
		base = http.DefaultTransport
	}

	var rt http.RoundTripper = &authTransport{base: base, tokens: tokens}
	if l != nil {
		rt = &loggingTransport{base: rt, l: l, logBodies: cfg.LogBodies}
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: rt,
	}
}

// authTransport attaches the session token when there is one.
type authTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.tokens == nil {
		return t.base.RoundTrip(req)
	}
	token := strings.TrimSpace(t.tokens.Token())
	if token == "" {
		return t.base.RoundTrip(req)
	}

	authed := req.Clone(req.Context())
	authed.Header.Set(HeaderAuthorization, token)
	return t.base.RoundTrip(authed)
}

// loggingTransport logs every exchange. The Authorization header is never
// logged.
type loggingTransport struct {
	base      http.RoundTripper
	l         log.Logger
	logBodies bool
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	start := time.Now()

	if t.logBodies && req.GetBody != nil {
		if rc, err := req.GetBody(); err == nil {
			raw, _ := io.ReadAll(rc)
			rc.Close()
			t.l.Debugf(ctx, "--> %s %s %s", req.Method, req.URL.String(), string(raw))
		}
	}

	resp, err := t.base.RoundTrip(req)
	elapsed := time.Since(start)
	if err != nil {
		t.l.Warn(ctx, "taskie request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"elapsed", elapsed.String(),
			"error", err.Error(),
		)
		return nil, err
	}

	t.l.Info(ctx, "taskie exchange",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"elapsed", elapsed.String(),
	)

	if t.logBodies && resp.Body != nil {
		raw, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		resp.Body = io.NopCloser(bytes.NewReader(raw))
		if readErr != nil {
			return nil, readErr
		}
		t.l.Debugf(ctx, "<-- %d %s %s", resp.StatusCode, req.URL.String(), string(raw))
	}

	return resp, nil
}
