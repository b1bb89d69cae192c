package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL   = "https://pokeapi.co/api/v2"
	defaultUserAgent = "pokemate/0.1"
)

// Client fetches single PokeAPI resources. It never retries and keeps no
// cache; every method is exactly one GET.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if strings.TrimSpace(userAgent) == "" {
		userAgent = defaultUserAgent
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:   strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Pokemon fetches /pokemon/{nameOrID}.
func (c *Client) Pokemon(ctx context.Context, nameOrID string) (*Pokemon, error) {
	var out Pokemon
	if err := c.getResource(ctx, "pokemon", nameOrID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Species fetches /pokemon-species/{name}.
func (c *Client) Species(ctx context.Context, name string) (*Species, error) {
	var out Species
	if err := c.getResource(ctx, "pokemon-species", name, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EvolutionChain fetches the chain document at the absolute URL a species
// record links to.
func (c *Client) EvolutionChain(ctx context.Context, chainURL string) (*EvolutionChain, error) {
	parsed, err := url.Parse(strings.TrimSpace(chainURL))
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, fmt.Errorf("invalid evolution chain url: %q", chainURL)
	}
	var out EvolutionChain
	if err := c.get(ctx, parsed.String(), "evolution-chain", chainURL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Type fetches /type/{name}.
func (c *Client) Type(ctx context.Context, name string) (*Type, error) {
	var out Type
	if err := c.getResource(ctx, "type", name, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) getResource(ctx context.Context, resource, identifier string, out any) error {
	ident := NormalizeIdentifier(identifier)
	if ident == "" {
		return fmt.Errorf("%s identifier cannot be empty", resource)
	}
	endpoint := c.baseURL + "/" + resource + "/" + url.PathEscape(ident)
	return c.get(ctx, endpoint, resource, ident, out)
}

func (c *Client) get(ctx context.Context, endpoint, resource, identifier string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &NotFoundError{Resource: resource, Identifier: identifier}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{URL: endpoint, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", resource, err)
	}
	return nil
}

// NormalizeIdentifier trims and lower-cases a name or id the way PokeAPI
// expects it in a path.
func NormalizeIdentifier(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
