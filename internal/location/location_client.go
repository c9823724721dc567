package location

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	locationerrors "github.com/JSON-FX/lgu-sso/internal/location/errors"
)

const DefaultBaseURL = "https://psgc.cloud/api"

// Place is one PSGC record as psgc.cloud returns it. Codes are ten-digit
// strings; leading zeros matter.
type Place struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Client is a thin psgc.cloud reader. Caching and collapsing sit a layer up
// in the service; this only speaks HTTP.
type Client interface {
	// List fetches a collection path such as "regions" or
	// "provinces/0128000000/cities-municipalities".
	List(ctx context.Context, path string) ([]Place, error)

	// Get fetches a single record, e.g. "provinces/0128000000".
	Get(ctx context.Context, path string) (Place, error)
}

type client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *client) List(ctx context.Context, path string) ([]Place, error) {
	body, err := c.fetch(ctx, path)
	if err != nil {
		return nil, err
	}

	var places []Place
	if err := json.Unmarshal(body, &places); err != nil {
		return nil, locationerrors.ErrUpstreamUnavailable
	}
	return places, nil
}

func (c *client) Get(ctx context.Context, path string) (Place, error) {
	body, err := c.fetch(ctx, path)
	if err != nil {
		return Place{}, err
	}

	var place Place
	if err := json.Unmarshal(body, &place); err != nil {
		return Place{}, locationerrors.ErrUpstreamUnavailable
	}
	return place, nil
}

func (c *client) fetch(ctx context.Context, path string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, locationerrors.ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, locationerrors.ErrLocationNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, locationerrors.ErrUpstreamUnavailable
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, locationerrors.ErrUpstreamUnavailable
	}
	return body, nil
}
