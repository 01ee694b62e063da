// Package alphavantage fetches the latest annual inflation rate from the
// Alpha Vantage economic-data API.
package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/advisor"
)

// DefaultBaseURL is the Alpha Vantage endpoint.
const DefaultBaseURL = "https://www.alphavantage.co"

// Client is the inflation gateway over the Alpha Vantage INFLATION function.
type Client struct {
	// BaseURL defaults to DefaultBaseURL; tests point it at a fake server.
	BaseURL string
	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client

	apiKey string
}

// New creates a client. The API key is kept opaque: it is only ever appended
// to the query string, never inspected or logged.
func New(apiKey string) *Client {
	return &Client{BaseURL: DefaultBaseURL, apiKey: apiKey}
}

// Rate returns the latest published annual inflation rate as a percentage.
//
//	{
//	  "name": "Inflation - US Consumer Prices",
//	  "data": [ { "date": "2024-01-01", "value": "4.116338383" }, ... ]
//	}
//
// The series is antechronological, so the latest value is data[0].
func (c *Client) Rate(ctx context.Context) (advisor.Percent, error) {
	addr := fmt.Sprintf("%s/query?function=INFLATION&apikey=%s", c.BaseURL, c.apiKey)

	var jobj any
	if err := c.jwget(ctx, addr, &jobj); err != nil {
		return 0, fmt.Errorf("unable to fetch inflation data: %w", err)
	}

	path := "$.data[0].value"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("unexpected inflation payload: %q %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	sval, ok := jval.(string)
	if !ok {
		return 0, fmt.Errorf("unexpected inflation payload: %q is %T, not a string", path, jval)
	}
	val, err := strconv.ParseFloat(sval, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid inflation value %q: %w", sval, err)
	}
	return advisor.Percent(val), nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func (c *Client) jwget(ctx context.Context, addr string, data any) error {
	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(data)
}
