package birates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const testBasePath = "/terzevalute-wf-web/rest/v1.0/"

type recorder struct {
	mu      sync.Mutex
	uris    []string
	headers []http.Header
}

func (r *recorder) add(req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uris = append(r.uris, req.URL.RequestURI())
	r.headers = append(r.headers, req.Header.Clone())
}

func (r *recorder) last() (string, http.Header) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.uris) == 0 {
		return "", nil
	}

	return r.uris[len(r.uris)-1], r.headers[len(r.headers)-1]
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *recorder) {
	t.Helper()

	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		rec.add(req)
		handler(w, req)
	}))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL + testBasePath)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}

	return New(srv.Client(), WithBaseURL(*u)), rec
}

func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(body))
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	c := New(nil)
	got := c.BaseURL()
	if got.String() != DefaultBaseURL {
		t.Errorf("got base url %q, want %q", got.String(), DefaultBaseURL)
	}

	u, _ := url.Parse("http://localhost:8080/rest")
	c = New(nil, WithBaseURL(*u))
	got = c.BaseURL()
	if got.String() != "http://localhost:8080/rest/" {
		t.Errorf("got base url %q, want trailing slash", got.String())
	}
}

func TestClient_RequestURL(t *testing.T) {
	t.Parallel()

	date := time.Date(2020, time.January, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, time.January, 31, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		call func(ctx context.Context, c *Client) error
		want string
	}{
		{
			name: "test_latest_rates",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.LatestRates(ctx, "")
				return err
			},
			want: testBasePath + "latestRates?lang=En",
		},
		{
			name: "test_daily_rates_all",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.DailyRates(ctx, date, "EUR", LanguageEn)
				return err
			},
			want: testBasePath + "dailyRates?referenceDate=2020-01-02&currencyIsoCode=EUR&lang=En",
		},
		{
			name: "test_daily_rates_for",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.DailyRatesFor(ctx, date, []string{"USD", "GBP"}, "EUR", LanguageIt)
				return err
			},
			want: testBasePath +
				"dailyRates?referenceDate=2020-01-02&baseCurrencyIsoCode=USD&baseCurrencyIsoCode=GBP&currencyIsoCode=EUR&lang=It",
		},
		{
			name: "test_monthly_average_rates",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.MonthlyAverageRatesFor(ctx, 3, 2020, []string{"USD"}, "EUR", LanguageEn)
				return err
			},
			want: testBasePath + "monthlyAverageRates?month=3&year=2020&baseCurrencyIsoCode=USD&currencyIsoCode=EUR&lang=En",
		},
		{
			name: "test_annual_average_rates",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.AnnualAverageRates(ctx, 2020, "USD", LanguageEn)
				return err
			},
			want: testBasePath + "annualAverageRates?year=2020&currencyIsoCode=USD&lang=En",
		},
		{
			name: "test_daily_time_series",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.DailyTimeSeries(ctx, date, end, "USD", "EUR", LanguageEn)
				return err
			},
			want: testBasePath +
				"dailyTimeSeries?startDate=2020-01-02&endDate=2020-01-31&baseCurrencyIsoCode=USD&currencyIsoCode=EUR&lang=En",
		},
		{
			name: "test_monthly_time_series",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.MonthlyTimeSeries(ctx, 1, 2019, 12, 2020, "USD", "EUR", LanguageEn)
				return err
			},
			want: testBasePath +
				"monthlyTimeSeries?startMonth=1&startYear=2019&endMonth=12&endYear=2020&baseCurrencyIsoCode=USD&currencyIsoCode=EUR&lang=En",
		},
		{
			name: "test_annual_time_series",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.AnnualTimeSeries(ctx, 2018, 2020, "USD", "EUR", LanguageEn)
				return err
			},
			want: testBasePath +
				"annualTimeSeries?startYear=2018&endYear=2020&baseCurrencyIsoCode=USD&currencyIsoCode=EUR&lang=En",
		},
		{
			name: "test_currencies",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Currencies(ctx, LanguageIt)
				return err
			},
			want: testBasePath + "currencies?lang=It",
		},
	}

	for _, test := range testCases {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			c, rec := newTestClient(t, jsonHandler(`{"resultsInfo": {"totalRecords": 0}}`))
			if err := test.call(context.Background(), c); err != nil {
				t.Fatalf("call: %v", err)
			}

			got, header := rec.last()
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}

			if header.Get("Accept") != "application/json" {
				t.Errorf("got Accept %q, want application/json", header.Get("Accept"))
			}
		})
	}
}

func TestClient_DailyRates(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, jsonHandler(`{
		"resultsInfo": {"totalRecords": 2, "timezoneReference": "CET"},
		"rates": [
			{"country": "STATI UNITI", "currency": "Dollaro USA", "isoCode": "USD", "uicCode": "001",
			 "avgRate": "1.1194", "exchangeConvention": "Quantity of currency for 1 Euro",
			 "exchangeConventionCode": "C", "referenceDate": "2020-01-02"},
			{"country": "VENEZUELA", "currency": "Bolivar Soberano", "isoCode": "VES", "uicCode": "347",
			 "avgRate": "N.A.", "exchangeConvention": "Quantity of currency for 1 Euro",
			 "exchangeConventionCode": "C", "referenceDate": "2020-01-02"}
		]
	}`))

	date := time.Date(2020, time.January, 2, 0, 0, 0, 0, time.UTC)
	got, err := c.DailyRatesFor(context.Background(), date, []string{"USD", "VES"}, "EUR", LanguageEn)
	if err != nil {
		t.Fatalf("DailyRatesFor: %v", err)
	}

	want := DailyRates{
		ResultsInfo: ResultsInfo{TotalRecords: 2, TimezoneReference: "CET"},
		Rates: []DailyRate{
			{
				Country:                "STATI UNITI",
				Currency:               "Dollaro USA",
				IsoCode:                "USD",
				UicCode:                "001",
				AvgRate:                1.1194,
				ExchangeConvention:     "Quantity of currency for 1 Euro",
				ExchangeConventionCode: "C",
				ReferenceDate:          date,
			},
			{
				Country:                "VENEZUELA",
				Currency:               "Bolivar Soberano",
				IsoCode:                "VES",
				UicCode:                "347",
				ExchangeConvention:     "Quantity of currency for 1 Euro",
				ExchangeConventionCode: "C",
				ReferenceDate:          date,
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestClient_MonthlyTimeSeries(t *testing.T) {
	t.Parallel()

	c, rec := newTestClient(t, jsonHandler(`{
		"resultsInfo": {"totalRecords": 1, "currency": "Dollaro USA", "isoCode": "USD", "uicCode": "001",
			"exchangeConventionCode": "C"},
		"rates": [{"referenceDate": "2020-01", "avgRate": "1.1100", "exchangeConvention": "Quantity of currency for 1 Euro"}]
	}`))

	got, err := c.MonthlyTimeSeries(context.Background(), 1, 2020, 2, 2021, "USD", "EUR", LanguageEn)
	if err != nil {
		t.Fatalf("MonthlyTimeSeries: %v", err)
	}

	uri, _ := rec.last()
	wantURI := testBasePath +
		"monthlyTimeSeries?startMonth=1&startYear=2020&endMonth=2&endYear=2021&baseCurrencyIsoCode=USD&currencyIsoCode=EUR&lang=En"
	if diff := cmp.Diff(wantURI, uri); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}

	want := MonthlyTimeSeries{
		ResultsInfo: SeriesInfo{
			TotalRecords:           1,
			Currency:               "Dollaro USA",
			IsoCode:                "USD",
			UicCode:                "001",
			ExchangeConventionCode: "C",
		},
		Rates: []MonthlyTimeSeriesRate{
			{
				ReferenceDate:      time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
				AvgRate:            1.11,
				ExchangeConvention: "Quantity of currency for 1 Euro",
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestClient_UnknownLanguage(t *testing.T) {
	t.Parallel()

	c, rec := newTestClient(t, jsonHandler(`{"resultsInfo": {"totalRecords": 0}}`))
	if _, err := c.LatestRates(context.Background(), Language("Fr")); err != nil {
		t.Fatalf("LatestRates: %v", err)
	}

	uri, _ := rec.last()
	if diff := cmp.Diff(testBasePath+"latestRates?lang=En", uri); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestClient_RequestFailed(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		status int
		body   string
		gzip   bool
	}{
		{name: "test_not_found", status: http.StatusNotFound, body: "not found"},
		{name: "test_mislabeled_gzip", status: http.StatusBadGateway, body: "bad gateway", gzip: true},
		{name: "test_internal", status: http.StatusInternalServerError, body: `{"error": "boom"}`},
		{name: "test_bad_request", status: http.StatusBadRequest, body: ""},
	}

	for _, test := range testCases {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			c, _ := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
				if test.gzip {
					w.Header().Set("Content-Encoding", "gzip")
				}
				w.WriteHeader(test.status)
				_, _ = w.Write([]byte(test.body))
			})

			_, err := c.LatestRates(context.Background(), LanguageEn)
			if !errors.Is(err, ErrRequestFailed) {
				t.Fatalf("got error %v, want ErrRequestFailed", err)
			}

			var reqErr *RequestFailedError
			if !errors.As(err, &reqErr) {
				t.Fatalf("got error %T, want *RequestFailedError", err)
			}

			if reqErr.StatusCode != test.status {
				t.Errorf("got status %d, want %d", reqErr.StatusCode, test.status)
			}

			if reqErr.Body != test.body {
				t.Errorf("got body %q, want %q", reqErr.Body, test.body)
			}

			if errors.Is(err, ErrDeserialization) || errors.Is(err, ErrCancelled) {
				t.Errorf("error %v matches an unrelated kind", err)
			}
		})
	}
}

func TestClient_Deserialization(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		body string
	}{
		{name: "test_not_json", body: "<html>maintenance</html>"},
		{name: "test_truncated", body: `{"resultsInfo": {"totalRecords": 1}, "rates": [`},
		{name: "test_bad_rate", body: `{"rates": [{"avgRate": "one"}]}`},
		{name: "test_null", body: `null`},
		{name: "test_null_spaces", body: " null\n"},
		{name: "test_empty", body: ""},
	}

	for _, test := range testCases {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			c, _ := newTestClient(t, jsonHandler(test.body))

			_, err := c.AnnualAverageRates(context.Background(), 2020, "EUR", LanguageEn)
			if !errors.Is(err, ErrDeserialization) {
				t.Fatalf("got error %v, want ErrDeserialization", err)
			}

			var desErr *DeserializationError
			if !errors.As(err, &desErr) {
				t.Fatalf("got error %T, want *DeserializationError", err)
			}

			if desErr.Endpoint != PathAnnualAverageRates {
				t.Errorf("got endpoint %q, want %q", desErr.Endpoint, PathAnnualAverageRates)
			}

			if desErr.Unwrap() == nil {
				t.Errorf("decoder error is not kept")
			}
		})
	}
}

func TestClient_NilCurrencies(t *testing.T) {
	t.Parallel()

	var calls int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusOK)
	})

	ctx := context.Background()
	date := time.Date(2020, time.January, 2, 0, 0, 0, 0, time.UTC)

	if _, err := c.DailyRatesFor(ctx, date, nil, "EUR", LanguageEn); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("DailyRatesFor: got error %v, want ErrInvalidArgument", err)
	}

	if _, err := c.MonthlyAverageRatesFor(ctx, 1, 2020, nil, "EUR", LanguageEn); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("MonthlyAverageRatesFor: got error %v, want ErrInvalidArgument", err)
	}

	if _, err := c.AnnualAverageRatesFor(ctx, 2020, nil, "EUR", LanguageEn); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("AnnualAverageRatesFor: got error %v, want ErrInvalidArgument", err)
	}

	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("got %d requests, want 0", n)
	}
}

func TestClient_Cancelled(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, jsonHandler(`{}`))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Currencies(ctx, LanguageEn)
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("got error %v, want ErrCancelled", err)
	}

	if !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want context.Canceled", err)
	}

	if errors.Is(err, ErrRequestFailed) {
		t.Errorf("cancelled error matches ErrRequestFailed")
	}
}

func TestClient_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	c, _ := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
		select {
		case <-release:
		case <-req.Context().Done():
		}
	})
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.LatestRates(ctx, LanguageEn)
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("got error %v, want ErrCancelled", err)
	}

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("got error %v, want context.DeadlineExceeded", err)
	}
}

func TestParseLanguage(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		source  string
		want    Language
		wantErr error
	}{
		{name: "test_en", source: "en", want: LanguageEn},
		{name: "test_it_upper", source: "IT", want: LanguageIt},
		{name: "test_it_spaces", source: "  It ", want: LanguageIt},
		{name: "test_empty", source: "", want: LanguageEn},
		{name: "test_french", source: "fr", wantErr: ErrInvalidArgument},
		{name: "test_unknown", source: "de", wantErr: ErrInvalidArgument},
	}

	for _, test := range testCases {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLanguage(test.source)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("got error %v, want %v", err, test.wantErr)
			}

			if got != test.want {
				t.Errorf("got %q, want %q", got, test.want)
			}
		})
	}
}

func TestLanguage_String(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		lang     Language
		expected string
	}{
		{name: "test_en", lang: LanguageEn, expected: "En"},
		{name: "test_it", lang: LanguageIt, expected: "It"},
		{name: "test_empty", lang: "", expected: "En"},
		{name: "test_unknown", lang: Language("Fr"), expected: "En"},
		{name: "test_wrong_case", lang: Language("it"), expected: "En"},
	}

	for _, test := range testCases {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, test.lang.String()); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}
