// Package yahoo provides a client for the Yahoo Finance API
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/finpulse/finpulse/internal/common"
	"github.com/finpulse/finpulse/internal/interfaces"
	"github.com/finpulse/finpulse/internal/models"
)

const (
	DefaultBaseURL   = "https://query1.finance.yahoo.com"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10 // requests per second

	// UnknownField is the default for descriptive fields the provider omits.
	UnknownField = "Unknown"
)

// Client implements the MarketDataClient interface
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new Yahoo Finance client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("yahoo API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// get performs a rate-limited GET request
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "finpulse/"+common.GetVersion())

	c.logger.Debug().Str("url", c.baseURL+path).Msg("Yahoo API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// chartResponse mirrors the chart endpoint payload. Bar fields are pointer
// slices because the provider emits null for missing buckets.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// History retrieves price bars for a symbol between from and to at the given
// interval. Buckets with a null close are dropped. An empty series is a valid
// result, not an error.
func (c *Client) History(ctx context.Context, symbol string, from, to time.Time, interval string) ([]models.HistoryBar, error) {
	params := url.Values{}
	params.Set("period1", strconv.FormatInt(from.Unix(), 10))
	params.Set("period2", strconv.FormatInt(to.Unix(), 10))
	params.Set("interval", interval)
	params.Set("events", "history")

	path := fmt.Sprintf("/v8/finance/chart/%s", url.PathEscape(symbol))

	var resp chartResponse
	if err := c.get(ctx, path, params, &resp); err != nil {
		return nil, err
	}

	if resp.Chart.Error != nil {
		return nil, &APIError{
			StatusCode: http.StatusOK,
			Message:    resp.Chart.Error.Description,
			Endpoint:   path,
		}
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, nil
	}

	result := resp.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	bars := make([]models.HistoryBar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}
		bar := models.HistoryBar{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *quote.Close[i],
		}
		if i < len(quote.Open) && quote.Open[i] != nil {
			bar.Open = *quote.Open[i]
		}
		if i < len(quote.High) && quote.High[i] != nil {
			bar.High = *quote.High[i]
		}
		if i < len(quote.Low) && quote.Low[i] != nil {
			bar.Low = *quote.Low[i]
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			bar.Volume = *quote.Volume[i]
		}
		bars = append(bars, bar)
	}

	return bars, nil
}

// quoteSummaryResponse mirrors the quoteSummary endpoint payload. Numeric
// fields decode through models.Value because the provider wraps them
// inconsistently ({raw, fmt} objects, plain numbers, or absent).
type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			Price *struct {
				ShortName          string       `json:"shortName"`
				LongName           string       `json:"longName"`
				ExchangeName       string       `json:"exchangeName"`
				RegularMarketPrice models.Value `json:"regularMarketPrice"`
				MarketCap          models.Value `json:"marketCap"`
			} `json:"price"`
			SummaryDetail *struct {
				ForwardPE                models.Value `json:"forwardPE"`
				DividendYield            models.Value `json:"dividendYield"`
				AverageVolume            models.Value `json:"averageVolume"`
				TotalAssets              models.Value `json:"totalAssets"`
				Yield                    models.Value `json:"yield"`
				AnnualReportExpenseRatio models.Value `json:"annualReportExpenseRatio"`
			} `json:"summaryDetail"`
			AssetProfile *struct {
				Sector   string `json:"sector"`
				Industry string `json:"industry"`
			} `json:"assetProfile"`
			FundProfile *struct {
				CategoryName           string `json:"categoryName"`
				Family                 string `json:"family"`
				FeesExpensesInvestment *struct {
					AnnualReportExpenseRatio models.Value `json:"annualReportExpenseRatio"`
				} `json:"feesExpensesInvestment"`
			} `json:"fundProfile"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// Info retrieves descriptive metadata for a symbol. Absent provider fields
// become typed defaults: "Unknown" for descriptive strings, zero for numbers,
// nil for forward P/E.
func (c *Client) Info(ctx context.Context, symbol string) (*models.MarketInfo, error) {
	params := url.Values{}
	params.Set("modules", "price,summaryDetail,assetProfile,fundProfile")

	path := fmt.Sprintf("/v10/finance/quoteSummary/%s", url.PathEscape(symbol))

	var resp quoteSummaryResponse
	if err := c.get(ctx, path, params, &resp); err != nil {
		return nil, err
	}

	if resp.QuoteSummary.Error != nil {
		return nil, &APIError{
			StatusCode: http.StatusOK,
			Message:    resp.QuoteSummary.Error.Description,
			Endpoint:   path,
		}
	}

	info := &models.MarketInfo{
		Symbol:   symbol,
		Name:     symbol,
		Sector:   UnknownField,
		Industry: UnknownField,
		Exchange: UnknownField,
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return info, nil
	}
	result := resp.QuoteSummary.Result[0]

	if p := result.Price; p != nil {
		if p.LongName != "" {
			info.Name = p.LongName
		} else if p.ShortName != "" {
			info.Name = p.ShortName
		}
		if p.ExchangeName != "" {
			info.Exchange = p.ExchangeName
		}
		info.CurrentPrice = scalar(p.RegularMarketPrice)
		info.MarketCap = scalar(p.MarketCap)
	}

	if d := result.SummaryDetail; d != nil {
		if v, ok := d.ForwardPE.Normalize(common.DefaultPlaces).Float64(); ok {
			pe := v
			info.ForwardPE = &pe
		}
		info.DividendYield = scalar(d.DividendYield)
		if v, ok := d.AverageVolume.Int64(); ok {
			info.AvgVolume = v
		}
		info.TotalAssets = scalar(d.TotalAssets)
		info.Yield = scalar(d.Yield)
		info.ExpenseRatio = scalar(d.AnnualReportExpenseRatio)
	}

	if a := result.AssetProfile; a != nil {
		if a.Sector != "" {
			info.Sector = a.Sector
		}
		if a.Industry != "" {
			info.Industry = a.Industry
		}
	}

	if f := result.FundProfile; f != nil {
		info.CategoryName = f.CategoryName
		info.FundFamily = f.Family
		if fees := f.FeesExpensesInvestment; fees != nil {
			if v, ok := fees.AnnualReportExpenseRatio.Normalize(common.DefaultPlaces).Float64(); ok && v != 0 {
				info.ExpenseRatio = v
			}
		}
	}

	return info, nil
}

// scalar normalizes a provider value and returns its scalar form, or zero
// when the value carries no number.
func scalar(v models.Value) float64 {
	f, _ := v.Normalize(common.DefaultPlaces).Float64()
	return f
}

// Ensure Client implements MarketDataClient
var _ interfaces.MarketDataClient = (*Client)(nil)
