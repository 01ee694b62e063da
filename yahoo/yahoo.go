// Package yahoo fetches live stock quotes from the Yahoo Finance quote API.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/etnz/advisor"
)

// DefaultBaseURL is the Yahoo Finance query endpoint.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Client is the market-data gateway over the Yahoo Finance v7 quote API.
// It requires no credentials.
type Client struct {
	// BaseURL defaults to DefaultBaseURL; tests point it at a fake server.
	BaseURL string
	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// New creates a client against the public Yahoo Finance endpoint.
func New() *Client {
	return &Client{BaseURL: DefaultBaseURL}
}

// Quote returns the live quote for a ticker, or advisor.ErrQuoteNotFound
// when the symbol is unknown or has no current price.
func (c *Client) Quote(ctx context.Context, ticker string) (advisor.Quote, error) {
	// https://query1.finance.yahoo.com/v7/finance/quote?symbols=AAPL
	// {
	//   "quoteResponse": {
	//     "result": [
	//       {
	//         "symbol": "AAPL",
	//         "shortName": "Apple Inc.",
	//         "currency": "USD",
	//         "regularMarketPrice": 232.14,
	//         "marketCap": 3434634477568,
	//         "fiftyTwoWeekHigh": 260.1,
	//         "fiftyTwoWeekLow": 169.21
	//       }
	//     ],
	//     "error": null
	//   }
	// }
	addr := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", c.BaseURL, url.QueryEscape(ticker))

	type info struct {
		Symbol           string   `json:"symbol"`
		ShortName        string   `json:"shortName"`
		Currency         string   `json:"currency"`
		Price            *float64 `json:"regularMarketPrice"`
		MarketCap        int64    `json:"marketCap"`
		FiftyTwoWeekHigh float64  `json:"fiftyTwoWeekHigh"`
		FiftyTwoWeekLow  float64  `json:"fiftyTwoWeekLow"`
	}
	var content struct {
		QuoteResponse struct {
			Result []info `json:"result"`
			Error  *struct {
				Code        string `json:"code"`
				Description string `json:"description"`
			} `json:"error"`
		} `json:"quoteResponse"`
	}

	if err := c.jwget(ctx, addr, &content); err != nil {
		return advisor.Quote{}, fmt.Errorf("quote for %s: %w", ticker, err)
	}
	if e := content.QuoteResponse.Error; e != nil {
		return advisor.Quote{}, fmt.Errorf("quote for %s: %s (%s)", ticker, e.Description, e.Code)
	}
	if len(content.QuoteResponse.Result) == 0 {
		return advisor.Quote{}, fmt.Errorf("%w: %s", advisor.ErrQuoteNotFound, ticker)
	}

	q := content.QuoteResponse.Result[0]
	if q.Price == nil {
		// symbols without a current price are treated as not found
		return advisor.Quote{}, fmt.Errorf("%w: %s has no current price", advisor.ErrQuoteNotFound, ticker)
	}
	cur := q.Currency
	if cur == "" {
		cur = "USD"
	}
	return advisor.Quote{
		Ticker:    ticker,
		Name:      q.ShortName,
		Price:     advisor.M(*q.Price, cur),
		MarketCap: q.MarketCap,
		High52:    advisor.M(q.FiftyTwoWeekHigh, cur),
		Low52:     advisor.M(q.FiftyTwoWeekLow, cur),
	}, nil
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
