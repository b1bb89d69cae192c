package pokeapi

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that the upstream service has no such resource.
var ErrNotFound = errors.New("resource not found")

// NotFoundError names the missing resource.
type NotFoundError struct {
	Resource   string // "pokemon", "pokemon-species", "type", ...
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Identifier)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StatusError is a non-2xx, non-404 upstream response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request to %s failed with status %d", e.URL, e.StatusCode)
}
