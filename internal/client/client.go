// Package client is the single choke point between the app and the
// inventory backend. Every outbound request passes through Invoke, which
// attaches the session credential, enforces the response envelope
// contract and settles each call into one normalized Result.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tienda/inventory-system/internal/core/domain"
	"github.com/tienda/inventory-system/internal/metrics"
)

const (
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 1 << 20
)

// TokenSource supplies the current credential token, if any. The session
// store satisfies it; the token is attached verbatim and never inspected.
type TokenSource interface {
	Read() (string, *domain.Identity)
}

// Client calls the inventory backend. One instance is shared by every
// call site; per-site state lives in each caller's CallState.
type Client struct {
	http    *http.Client
	baseURL string
	tokens  TokenSource
	log     zerolog.Logger

	// onUnauthorized fires when the backend denies the credential
	// (HTTP 401). The app wires it to the gate's logout so an expired
	// session is cleared in one place instead of per call site.
	onUnauthorized func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithUnauthorizedHook installs the authorization-denial callback.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New creates a Client for the backend at baseURL.
func New(baseURL string, tokens TokenSource, log zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: defaultTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Invoke performs one backend call and settles it into a Result.
//
// Outcomes:
//   - envelope with success true: the payload under data is decoded into
//     T and returned via Ok; OnSuccess receives exactly that payload.
//   - envelope reporting failure (success false, or a non-2xx status
//     carrying error/message fields): Failed with the backend's reason,
//     falling back to MsgUnknownError.
//   - no usable envelope (network error, timeout, non-2xx without
//     envelope fields, or a 2xx body violating the envelope contract):
//     Unreachable with the deterministic fallback chain: error field,
//     then message field, then a status line, then MsgConnectionError.
//
// The call state is settled exactly once, before callbacks run.
func Invoke[T any](ctx context.Context, c *Client, call *CallState, method, path string, body any, cb *Callbacks[T]) Result[T] {
	if call == nil {
		call = &CallState{}
	}
	call.begin()

	started := time.Now()
	res := invoke[T](ctx, c, method, path, body)
	metrics.BackendCallDuration.WithLabelValues(method).Observe(time.Since(started).Seconds())
	metrics.BackendCallsTotal.WithLabelValues(method, outcome(res.OK, res.Responded)).Inc()

	call.settle(res.Err())

	if cb != nil {
		if res.OK && cb.OnSuccess != nil {
			cb.OnSuccess(res.Data)
		}
		if !res.OK && cb.OnError != nil {
			cb.OnError(res.Message)
		}
	}
	return res
}

func invoke[T any](ctx context.Context, c *Client, method, path string, body any) Result[T] {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return Unreachable[T](MsgConnectionError)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(method), c.baseURL+path, reader)
	if err != nil {
		return Unreachable[T](MsgConnectionError)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, _ := c.tokens.Read(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("backend call")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("backend unreachable")
		return Unreachable[T](MsgConnectionError)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("backend response unreadable")
		return Unreachable[T](MsgConnectionError)
	}

	var env domain.Envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized()
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if decodeErr != nil {
			c.log.Error().Str("path", path).Msg("backend broke the envelope contract")
			return Unreachable[T](MsgMalformedEnvelope)
		}
		if !env.Success {
			return Failed[T](env.FailureMessage(MsgUnknownError))
		}

		var data T
		if len(env.Data) > 0 && string(env.Data) != "null" {
			if err := json.Unmarshal(env.Data, &data); err != nil {
				c.log.Error().Err(err).Str("path", path).Msg("backend payload does not match contract")
				return Unreachable[T](MsgMalformedEnvelope)
			}
		}
		return Ok(data)
	}

	// Non-2xx: an envelope with a reason is still a backend answer;
	// anything else counts as a transport failure.
	if decodeErr == nil && (env.Error != "" || env.Message != "") {
		return Failed[T](env.FailureMessage(MsgUnknownError))
	}
	return Unreachable[T](fmt.Sprintf("request failed with status %d", resp.StatusCode))
}

func outcome(ok, responded bool) string {
	switch {
	case ok:
		return metrics.OutcomeSuccess
	case responded:
		return metrics.OutcomeBackendError
	default:
		return metrics.OutcomeTransportError
	}
}
