// Package query serializes typed request parameters into the query strings expected by the
// exchange rates REST API. Parameter order is fixed and significant.
package query

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

const (
	KeyLang                = "lang"
	KeyReferenceDate       = "referenceDate"
	KeyMonth               = "month"
	KeyYear                = "year"
	KeyStartDate           = "startDate"
	KeyEndDate             = "endDate"
	KeyStartMonth          = "startMonth"
	KeyStartYear           = "startYear"
	KeyEndMonth            = "endMonth"
	KeyEndYear             = "endYear"
	KeyBaseCurrencyIsoCode = "baseCurrencyIsoCode"
	KeyCurrencyIsoCode     = "currencyIsoCode"
)

// Builder appends key=value pairs in call order. Unlike url.Values it never sorts keys
type Builder struct {
	sb strings.Builder
}

func (b *Builder) add(key, value string) *Builder {
	if b.sb.Len() > 0 {
		b.sb.WriteByte('&')
	}

	b.sb.WriteString(url.QueryEscape(key))
	b.sb.WriteByte('=')
	b.sb.WriteString(url.QueryEscape(value))

	return b
}

// String adds a plain string value, case is passed through
func (b *Builder) String(key, value string) *Builder {
	return b.add(key, value)
}

// Int adds a decimal integer value
func (b *Builder) Int(key string, value int) *Builder {
	return b.add(key, strconv.Itoa(value))
}

// Date adds a calendar date formatted as yyyy-MM-dd
func (b *Builder) Date(key string, value time.Time) *Builder {
	return b.add(key, value.Format(DateLayout))
}

// Strings repeats key once per value in the given order. An empty list adds nothing
func (b *Builder) Strings(key string, values []string) *Builder {
	for _, v := range values {
		b.add(key, v)
	}

	return b
}

func (b *Builder) Encode() string {
	return b.sb.String()
}

// Latest builds the query of the latestRates endpoint
func Latest(lang string) string {
	return new(Builder).String(KeyLang, lang).Encode()
}

// Currencies builds the query of the currencies endpoint
func Currencies(lang string) string {
	return new(Builder).String(KeyLang, lang).Encode()
}

// DailyRates builds the query of the dailyRates endpoint
func DailyRates(referenceDate time.Time, baseCurrencyIsoCodes []string, currencyIsoCode, lang string) string {
	return new(Builder).
		Date(KeyReferenceDate, referenceDate).
		Strings(KeyBaseCurrencyIsoCode, baseCurrencyIsoCodes).
		String(KeyCurrencyIsoCode, currencyIsoCode).
		String(KeyLang, lang).
		Encode()
}

// MonthlyAverageRates builds the query of the monthlyAverageRates endpoint
func MonthlyAverageRates(month, year int, baseCurrencyIsoCodes []string, currencyIsoCode, lang string) string {
	return new(Builder).
		Int(KeyMonth, month).
		Int(KeyYear, year).
		Strings(KeyBaseCurrencyIsoCode, baseCurrencyIsoCodes).
		String(KeyCurrencyIsoCode, currencyIsoCode).
		String(KeyLang, lang).
		Encode()
}

// AnnualAverageRates builds the query of the annualAverageRates endpoint
func AnnualAverageRates(year int, baseCurrencyIsoCodes []string, currencyIsoCode, lang string) string {
	return new(Builder).
		Int(KeyYear, year).
		Strings(KeyBaseCurrencyIsoCode, baseCurrencyIsoCodes).
		String(KeyCurrencyIsoCode, currencyIsoCode).
		String(KeyLang, lang).
		Encode()
}

// DailyTimeSeries builds the query of the dailyTimeSeries endpoint
func DailyTimeSeries(startDate, endDate time.Time, baseCurrencyIsoCode, currencyIsoCode, lang string) string {
	return new(Builder).
		Date(KeyStartDate, startDate).
		Date(KeyEndDate, endDate).
		String(KeyBaseCurrencyIsoCode, baseCurrencyIsoCode).
		String(KeyCurrencyIsoCode, currencyIsoCode).
		String(KeyLang, lang).
		Encode()
}

// MonthlyTimeSeries builds the query of the monthlyTimeSeries endpoint
func MonthlyTimeSeries(
	startMonth, startYear, endMonth, endYear int, baseCurrencyIsoCode, currencyIsoCode, lang string,
) string {
	return new(Builder).
		Int(KeyStartMonth, startMonth).
		Int(KeyStartYear, startYear).
		Int(KeyEndMonth, endMonth).
		Int(KeyEndYear, endYear).
		String(KeyBaseCurrencyIsoCode, baseCurrencyIsoCode).
		String(KeyCurrencyIsoCode, currencyIsoCode).
		String(KeyLang, lang).
		Encode()
}

// AnnualTimeSeries builds the query of the annualTimeSeries endpoint
func AnnualTimeSeries(startYear, endYear int, baseCurrencyIsoCode, currencyIsoCode, lang string) string {
	return new(Builder).
		Int(KeyStartYear, startYear).
		Int(KeyEndYear, endYear).
		String(KeyBaseCurrencyIsoCode, baseCurrencyIsoCode).
		String(KeyCurrencyIsoCode, currencyIsoCode).
		String(KeyLang, lang).
		Encode()
}
