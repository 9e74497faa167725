package birates

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/robotomize/birates/httputil"
	"github.com/robotomize/birates/internal/logging"
	"github.com/robotomize/birates/internal/query"
)

// DefaultBaseURL is the versioned REST root of the exchange rates service of Banca d'Italia
const DefaultBaseURL = "https://tassidicambio.bancaditalia.it/terzevalute-wf-web/rest/v1.0/"

const (
	PathLatestRates         = "latestRates"
	PathDailyRates          = "dailyRates"
	PathMonthlyAverageRates = "monthlyAverageRates"
	PathAnnualAverageRates  = "annualAverageRates"
	PathDailyTimeSeries     = "dailyTimeSeries"
	PathMonthlyTimeSeries   = "monthlyTimeSeries"
	PathAnnualTimeSeries    = "annualTimeSeries"
	PathCurrencies          = "currencies"
)

var defaultBaseURL = mustParseBaseURL(DefaultBaseURL)

// ExchangeRatesClient is the set of operations of the exchange rates service. Every operation issues
// exactly one GET request and blocks until the response is decoded or ctx is done
//
//go:generate mockgen -source birates.go -destination mock_client.go -package birates
type ExchangeRatesClient interface {
	// LatestRates returns the latest available exchange rates for all the valid currencies
	LatestRates(ctx context.Context, lang Language) (LatestRates, error)

	// DailyRates returns the exchange rates of all the currencies for a date
	DailyRates(ctx context.Context, referenceDate time.Time, currencyIsoCode string, lang Language) (DailyRates, error)

	// DailyRatesFor returns the exchange rates of the listed currencies for a date
	DailyRatesFor(
		ctx context.Context, referenceDate time.Time, baseCurrencyIsoCodes []string, currencyIsoCode string, lang Language,
	) (DailyRates, error)

	// MonthlyAverageRates returns the monthly average exchange rates of all the currencies
	MonthlyAverageRates(ctx context.Context, month, year int, currencyIsoCode string, lang Language) (MonthlyAverageRates, error)

	// MonthlyAverageRatesFor returns the monthly average exchange rates of the listed currencies
	MonthlyAverageRatesFor(
		ctx context.Context, month, year int, baseCurrencyIsoCodes []string, currencyIsoCode string, lang Language,
	) (MonthlyAverageRates, error)

	// AnnualAverageRates returns the annual average exchange rates of all the currencies
	AnnualAverageRates(ctx context.Context, year int, currencyIsoCode string, lang Language) (AnnualAverageRates, error)

	// AnnualAverageRatesFor returns the annual average exchange rates of the listed currencies
	AnnualAverageRatesFor(
		ctx context.Context, year int, baseCurrencyIsoCodes []string, currencyIsoCode string, lang Language,
	) (AnnualAverageRates, error)

	// DailyTimeSeries returns the daily exchange rates of a currency for a date range
	DailyTimeSeries(
		ctx context.Context, startDate, endDate time.Time, baseCurrencyIsoCode, currencyIsoCode string, lang Language,
	) (DailyTimeSeries, error)

	// MonthlyTimeSeries returns the monthly average exchange rates of a currency for a month range
	MonthlyTimeSeries(
		ctx context.Context, startMonth, startYear, endMonth, endYear int, baseCurrencyIsoCode, currencyIsoCode string,
		lang Language,
	) (MonthlyTimeSeries, error)

	// AnnualTimeSeries returns the annual average exchange rates of a currency for a year range
	AnnualTimeSeries(
		ctx context.Context, startYear, endYear int, baseCurrencyIsoCode, currencyIsoCode string, lang Language,
	) (AnnualTimeSeries, error)

	// Currencies returns the list of all the available currencies
	Currencies(ctx context.Context, lang Language) (Currencies, error)
}

type Option func(*Client)

// WithBaseURL replaces the REST root, e.g. to point the client at a test server
func WithBaseURL(u url.URL) Option {
	return func(c *Client) {
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		c.baseURL = u
	}
}

// WithUserAgent set the User-Agent header sent with every request
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.http = c.http.WithUserAgent(ua)
	}
}

var _ ExchangeRatesClient = (*Client)(nil)

// New return Client. The transport is injected, a nil doer selects httputil.DefaultHTTPClient.
// Client holds only immutable configuration and is safe for concurrent use
func New(doer httputil.Doer, opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		http:    httputil.NewHTTPClient(doer),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type Client struct {
	baseURL url.URL
	http    httputil.SourceHTTPClient
}

// BaseURL returns the REST root the client sends requests to
func (c *Client) BaseURL() url.URL {
	return c.baseURL
}

func (c *Client) LatestRates(ctx context.Context, lang Language) (LatestRates, error) {
	var doc jsonLatestRates
	if err := c.get(ctx, PathLatestRates, query.Latest(lang.String()), &doc); err != nil {
		return LatestRates{}, err
	}

	return doc.model(), nil
}

func (c *Client) DailyRates(
	ctx context.Context, referenceDate time.Time, currencyIsoCode string, lang Language,
) (DailyRates, error) {
	return c.DailyRatesFor(ctx, referenceDate, []string{}, currencyIsoCode, lang)
}

func (c *Client) DailyRatesFor(
	ctx context.Context, referenceDate time.Time, baseCurrencyIsoCodes []string, currencyIsoCode string, lang Language,
) (DailyRates, error) {
	if baseCurrencyIsoCodes == nil {
		return DailyRates{}, errNilCurrencies
	}

	var doc jsonDailyRates
	q := query.DailyRates(referenceDate, baseCurrencyIsoCodes, currencyIsoCode, lang.String())
	if err := c.get(ctx, PathDailyRates, q, &doc); err != nil {
		return DailyRates{}, err
	}

	return doc.model(), nil
}

func (c *Client) MonthlyAverageRates(
	ctx context.Context, month, year int, currencyIsoCode string, lang Language,
) (MonthlyAverageRates, error) {
	return c.MonthlyAverageRatesFor(ctx, month, year, []string{}, currencyIsoCode, lang)
}

func (c *Client) MonthlyAverageRatesFor(
	ctx context.Context, month, year int, baseCurrencyIsoCodes []string, currencyIsoCode string, lang Language,
) (MonthlyAverageRates, error) {
	if baseCurrencyIsoCodes == nil {
		return MonthlyAverageRates{}, errNilCurrencies
	}

	var doc jsonMonthlyAverageRates
	q := query.MonthlyAverageRates(month, year, baseCurrencyIsoCodes, currencyIsoCode, lang.String())
	if err := c.get(ctx, PathMonthlyAverageRates, q, &doc); err != nil {
		return MonthlyAverageRates{}, err
	}

	return doc.model(), nil
}

func (c *Client) AnnualAverageRates(
	ctx context.Context, year int, currencyIsoCode string, lang Language,
) (AnnualAverageRates, error) {
	return c.AnnualAverageRatesFor(ctx, year, []string{}, currencyIsoCode, lang)
}

func (c *Client) AnnualAverageRatesFor(
	ctx context.Context, year int, baseCurrencyIsoCodes []string, currencyIsoCode string, lang Language,
) (AnnualAverageRates, error) {
	if baseCurrencyIsoCodes == nil {
		return AnnualAverageRates{}, errNilCurrencies
	}

	var doc jsonAnnualAverageRates
	q := query.AnnualAverageRates(year, baseCurrencyIsoCodes, currencyIsoCode, lang.String())
	if err := c.get(ctx, PathAnnualAverageRates, q, &doc); err != nil {
		return AnnualAverageRates{}, err
	}

	return doc.model(), nil
}

func (c *Client) DailyTimeSeries(
	ctx context.Context, startDate, endDate time.Time, baseCurrencyIsoCode, currencyIsoCode string, lang Language,
) (DailyTimeSeries, error) {
	var doc jsonDailyTimeSeries
	q := query.DailyTimeSeries(startDate, endDate, baseCurrencyIsoCode, currencyIsoCode, lang.String())
	if err := c.get(ctx, PathDailyTimeSeries, q, &doc); err != nil {
		return DailyTimeSeries{}, err
	}

	return doc.model(), nil
}

func (c *Client) MonthlyTimeSeries(
	ctx context.Context, startMonth, startYear, endMonth, endYear int, baseCurrencyIsoCode, currencyIsoCode string,
	lang Language,
) (MonthlyTimeSeries, error) {
	var doc jsonMonthlyTimeSeries
	q := query.MonthlyTimeSeries(
		startMonth, startYear, endMonth, endYear, baseCurrencyIsoCode, currencyIsoCode, lang.String(),
	)
	if err := c.get(ctx, PathMonthlyTimeSeries, q, &doc); err != nil {
		return MonthlyTimeSeries{}, err
	}

	return doc.model(), nil
}

func (c *Client) AnnualTimeSeries(
	ctx context.Context, startYear, endYear int, baseCurrencyIsoCode, currencyIsoCode string, lang Language,
) (AnnualTimeSeries, error) {
	var doc jsonAnnualTimeSeries
	q := query.AnnualTimeSeries(startYear, endYear, baseCurrencyIsoCode, currencyIsoCode, lang.String())
	if err := c.get(ctx, PathAnnualTimeSeries, q, &doc); err != nil {
		return AnnualTimeSeries{}, err
	}

	return doc.model(), nil
}

func (c *Client) Currencies(ctx context.Context, lang Language) (Currencies, error) {
	var doc jsonCurrencies
	if err := c.get(ctx, PathCurrencies, query.Currencies(lang.String()), &doc); err != nil {
		return Currencies{}, err
	}

	return doc.model(), nil
}

var errEmptyDocument = errors.New("response document is empty or null")

var errNilCurrencies = fmt.Errorf("%w: baseCurrencyIsoCodes is nil, pass an empty list for all currencies", ErrInvalidArgument)

// Fetch issues a GET request against endpoint with an already encoded query and returns the raw body
func (c *Client) Fetch(ctx context.Context, endpoint, rawQuery string) ([]byte, error) {
	u := c.baseURL.ResolveReference(&url.URL{Path: endpoint, RawQuery: rawQuery})

	logger := logging.FromContext(ctx)
	logger.Debugw("sending request", "url", u.String())

	b, err := c.http.Get(ctx, *u)
	if err != nil {
		var statusErr *httputil.StatusError
		if !errors.As(err, &statusErr) && ctx.Err() != nil {
			return nil, fmt.Errorf("%s: %w", endpoint, &cancelledError{cause: ctx.Err()})
		}

		return nil, fmt.Errorf("%s: %w", endpoint, err)
	}

	logger.Debugw("received response", "url", u.String(), "bytes", len(b))

	return b, nil
}

func (c *Client) get(ctx context.Context, endpoint, rawQuery string, v interface{}) error {
	b, err := c.Fetch(ctx, endpoint, rawQuery)
	if err != nil {
		return err
	}

	if trimmed := bytes.TrimSpace(b); len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return &DeserializationError{Endpoint: endpoint, Err: errEmptyDocument}
	}

	if err := json.Unmarshal(b, v); err != nil {
		return &DeserializationError{Endpoint: endpoint, Err: err}
	}

	return nil
}

func mustParseBaseURL(raw string) url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("parse base url %q: %v", raw, err))
	}

	return *u
}
