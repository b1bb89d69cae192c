package pokedex

import (
	"errors"
	"fmt"

	"github.com/hession/pokemate/internal/pokeapi"
)

// Kind is the failure class of an Error. Callers of the tools only ever
// see the message; the kind exists for logging and tests.
type Kind int

const (
	KindUpstreamFault Kind = iota
	KindNotFound
	KindMalformedPayload
	KindInvalidArgument
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindMalformedPayload:
		return "malformed_payload"
	case KindInvalidArgument:
		return "invalid_argument"
	default:
		return "upstream_fault"
	}
}

// Error is the single error type returned by Service operations.
type Error struct {
	Kind       Kind
	Resource   string // "pokemon", "species", "type", "evolution chain"
	Identifier string
	Detail     string
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s %q not found", e.Resource, e.Identifier)
	case KindMalformedPayload:
		return fmt.Sprintf("upstream request failed: malformed %s payload: %s", e.Resource, e.Detail)
	case KindInvalidArgument:
		return e.Detail
	default:
		if e.Err != nil {
			return "upstream request failed: " + e.Err.Error()
		}
		return "upstream request failed: " + e.Detail
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports a resource the upstream service does not know.
func NotFound(resource, identifier string) *Error {
	return &Error{Kind: KindNotFound, Resource: resource, Identifier: identifier}
}

// Malformed reports a well-formed document lacking required fields.
func Malformed(resource, format string, args ...any) *Error {
	return &Error{Kind: KindMalformedPayload, Resource: resource, Detail: fmt.Sprintf(format, args...)}
}

// InvalidArgument reports a bad tool argument.
func InvalidArgument(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Detail: fmt.Sprintf(format, args...)}
}

// UpstreamFault wraps a transport or decoding failure.
func UpstreamFault(err error) *Error {
	return &Error{Kind: KindUpstreamFault, Err: err}
}

// StructuredError is the uniform failure payload of every tool.
type StructuredError struct {
	Message string `json:"error"`
}

// Classify maps any error to the StructuredError shown to the caller.
func Classify(err error) StructuredError {
	if err == nil {
		return StructuredError{Message: "unknown error"}
	}
	return StructuredError{Message: classify(err).Error()}
}

// classify turns a Fetcher error (or anything else) into an *Error.
func classify(err error) *Error {
	var pe *Error
	if errors.As(err, &pe) {
		return pe
	}

	var nf *pokeapi.NotFoundError
	if errors.As(err, &nf) {
		e := NotFound(resourceLabel(nf.Resource), nf.Identifier)
		e.Err = err
		return e
	}
	if errors.Is(err, pokeapi.ErrNotFound) {
		e := NotFound("resource", "")
		e.Err = err
		return e
	}

	// Transport, decoding and context errors all count as upstream faults.
	return UpstreamFault(err)
}

func resourceLabel(resource string) string {
	switch resource {
	case "pokemon-species":
		return "species"
	case "evolution-chain":
		return "evolution chain"
	default:
		return resource
	}
}

// KindOf returns the failure class of err.
func KindOf(err error) Kind {
	return classify(err).Kind
}

// IsNotFound reports whether err means the upstream resource is absent.
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

// IsMalformed reports whether err is a data-integrity failure.
func IsMalformed(err error) bool {
	return err != nil && KindOf(err) == KindMalformedPayload
}
