package birates

import "time"

// ResultsInfo holds aggregated information about the rows of a response
type ResultsInfo struct {
	TotalRecords int
	// TimezoneReference is the time zone disclaimer of the dates, in the requested language
	TimezoneReference string
	// Notice describes the rate convention, only sent with the latest rates
	Notice string
}

// SeriesInfo holds aggregated information about a time series. The currency fields
// are the same for every row, so the service sends them once
type SeriesInfo struct {
	TotalRecords           int
	TimezoneReference      string
	Currency               string
	IsoCode                string
	UicCode                string
	ExchangeConventionCode string
}

// LatestRates contains the latest available exchange rates against both EUR and USD
type LatestRates struct {
	ResultsInfo ResultsInfo
	LatestRates []LatestRate
}

type LatestRate struct {
	Currency                  string
	Country                   string
	IsoCode                   string
	UicCode                   string
	EurRate                   float64
	UsdRate                   float64
	UsdExchangeConvention     string
	UsdExchangeConventionCode string
	ReferenceDate             time.Time
}

// DailyRates contains the exchange rates of a single day
type DailyRates struct {
	ResultsInfo ResultsInfo
	Rates       []DailyRate
}

type DailyRate struct {
	Country                string
	Currency               string
	IsoCode                string
	UicCode                string
	AvgRate                float64
	ExchangeConvention     string
	ExchangeConventionCode string
	ReferenceDate          time.Time
}

// MonthlyAverageRates contains the monthly average exchange rates of a month
type MonthlyAverageRates struct {
	ResultsInfo ResultsInfo
	Rates       []MonthlyAverageRate
}

type MonthlyAverageRate struct {
	Country                string
	Currency               string
	IsoCode                string
	UicCode                string
	AvgRate                float64
	ExchangeConvention     string
	ExchangeConventionCode string
	Year                   int
	Month                  int
}

// AnnualAverageRates contains the annual average exchange rates of a year
type AnnualAverageRates struct {
	ResultsInfo ResultsInfo
	Rates       []AnnualAverageRate
}

type AnnualAverageRate struct {
	Country                string
	Currency               string
	IsoCode                string
	UicCode                string
	AvgRate                float64
	ExchangeConvention     string
	ExchangeConventionCode string
	Year                   int
}

// DailyTimeSeries contains the daily exchange rates of one currency over a date range
type DailyTimeSeries struct {
	ResultsInfo SeriesInfo
	Rates       []DailyTimeSeriesRate
}

type DailyTimeSeriesRate struct {
	ReferenceDate      time.Time
	AvgRate            float64
	ExchangeConvention string
}

// MonthlyTimeSeries contains the monthly average exchange rates of one currency over a month range
type MonthlyTimeSeries struct {
	ResultsInfo SeriesInfo
	Rates       []MonthlyTimeSeriesRate
}

type MonthlyTimeSeriesRate struct {
	// ReferenceDate is the first day of the month
	ReferenceDate      time.Time
	AvgRate            float64
	ExchangeConvention string
}

// AnnualTimeSeries contains the annual average exchange rates of one currency over a year range
type AnnualTimeSeries struct {
	ResultsInfo SeriesInfo
	Rates       []AnnualTimeSeriesRate
}

type AnnualTimeSeriesRate struct {
	// ReferenceDate is the year
	ReferenceDate      int
	AvgRate            float64
	ExchangeConvention string
}

// Currencies contains all the currencies known to the service
type Currencies struct {
	ResultsInfo ResultsInfo
	Currencies  []Currency
}

type Currency struct {
	Countries []Country
	IsoCode   string
	Name      string
	Graph     bool
}

// Country describes the adoption of a currency in a country
type Country struct {
	CurrencyIso       string
	Country           string
	CountryIso        string
	ValidityStartDate time.Time
	// ValidityEndDate is nil while the currency is still in use
	ValidityEndDate *time.Time
}
