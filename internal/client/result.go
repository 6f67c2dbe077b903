package client

import "sync"

// Fixed failure messages surfaced when the backend gives us nothing
// better to show.
const (
	// MsgUnknownError replaces an empty failure reason in a failure
	// envelope.
	MsgUnknownError = "unknown error"
	// MsgConnectionError is the final fallback when no response arrived
	// at all.
	MsgConnectionError = "connection error"
	// MsgMalformedEnvelope flags a response that violates the envelope
	// contract (a 2xx body that is not a valid envelope).
	MsgMalformedEnvelope = "malformed response envelope"
)

// Result is the discriminated outcome of one backend call. Exactly one of
// the three constructors produces it:
//
//	Ok(data)         the backend reported success; Data holds the
//	                 unwrapped payload, never the envelope.
//	Failed(msg)      the backend answered with a failure envelope.
//	Unreachable(msg) no usable envelope arrived (network error, timeout,
//	                 non-2xx without an envelope).
//
// Envelope-bearing outcomes keep Responded true so callers can tell "the
// backend said no" apart from "the backend never answered".
type Result[T any] struct {
	OK        bool
	Data      T
	Message   string
	Responded bool
}

// Ok builds a success result carrying the unwrapped payload.
func Ok[T any](data T) Result[T] {
	return Result[T]{OK: true, Data: data, Responded: true}
}

// Failed builds a backend-reported failure result.
func Failed[T any](msg string) Result[T] {
	return Result[T]{Message: msg, Responded: true}
}

// Unreachable builds a transport-failure result.
func Unreachable[T any](msg string) Result[T] {
	return Result[T]{Message: msg}
}

// Err returns the failure message, or "" for a success.
func (r Result[T]) Err() string {
	if r.OK {
		return ""
	}
	return r.Message
}

// Callbacks is the optional convenience layer over Result: OnSuccess
// receives the unwrapped payload, OnError the failure message. The Result
// remains the primary contract; callbacks are never required.
type Callbacks[T any] struct {
	OnSuccess func(T)
	OnError   func(string)
}

// CallState tracks the in-flight/error flags for one call site. Starting
// a new call resets the error and raises the loading flag; settlement
// lowers it. A later call simply overwrites the lifecycle of an earlier
// one; at-most-one-in-flight is the caller's job.
type CallState struct {
	mu      sync.Mutex
	loading bool
	err     string
}

// Loading reports whether a call is currently in flight.
func (s *CallState) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last settlement's failure message, or "".
func (s *CallState) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// ClearErr resets the stored failure message.
func (s *CallState) ClearErr() {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()
}

func (s *CallState) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *CallState) settle(errMsg string) {
	s.mu.Lock()
	s.loading = false
	s.err = errMsg
	s.mu.Unlock()
}
