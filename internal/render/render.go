// Package render prints the result models as fixed-width text tables. Rates are formatted with the
// digit grouping and decimal separator of the requested language
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/robotomize/birates"
	"golang.org/x/text/message"
)

const (
	dateLayout      = "2006-01-02"
	yearMonthLayout = "2006-01"
)

type convention struct {
	code string
	text string
}

// legend collects distinct conventions in encounter order
type legend []convention

func (l legend) add(code, text string) legend {
	for _, c := range l {
		if c.code == code && c.text == text {
			return l
		}
	}

	return append(l, convention{code: code, text: text})
}

// Renderer writes one table per call to w
type Renderer struct {
	w io.Writer
	p *message.Printer
}

func New(w io.Writer, lang birates.Language) *Renderer {
	return &Renderer{w: w, p: message.NewPrinter(lang.Tag())}
}

func (r *Renderer) rate(v float64) string {
	return r.p.Sprintf("%16.6f", v)
}

func (r *Renderer) flush(sb *strings.Builder) error {
	if _, err := io.WriteString(r.w, sb.String()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

func writeNotes(sb *strings.Builder, notes ...string) {
	for _, n := range notes {
		if n != "" {
			sb.WriteString(n)
			sb.WriteByte('\n')
		}
	}
}

func writeLegend(sb *strings.Builder, title string, l legend) {
	sb.WriteString(title)
	sb.WriteByte('\n')
	for _, c := range l {
		fmt.Fprintf(sb, "%s %s\n", c.code, c.text)
	}
}

func (r *Renderer) LatestRates(m birates.LatestRates) error {
	var (
		sb  strings.Builder
		leg legend
	)

	sb.WriteString("Ref. date   EUR rate          USD rate            ISO  Currency, country\n")
	for _, rate := range m.LatestRates {
		fmt.Fprintf(&sb, "%s  %s  %s %1s  %-3s  %s, %s\n",
			rate.ReferenceDate.Format(dateLayout), r.rate(rate.EurRate), r.rate(rate.UsdRate),
			rate.UsdExchangeConventionCode, rate.IsoCode, rate.Currency, rate.Country)

		if rate.IsoCode != "USD" {
			leg = leg.add(rate.UsdExchangeConventionCode, rate.UsdExchangeConvention)
		}
	}

	sb.WriteByte('\n')
	writeNotes(&sb, m.ResultsInfo.TimezoneReference, m.ResultsInfo.Notice)
	writeLegend(&sb, "USD exchange convention:", leg)

	return r.flush(&sb)
}

func (r *Renderer) DailyRates(m birates.DailyRates) error {
	var (
		sb  strings.Builder
		leg legend
	)

	sb.WriteString("Ref. date   Rate                ISO  Currency, country\n")
	for _, rate := range m.Rates {
		fmt.Fprintf(&sb, "%s  %s %1s  %-3s  %s, %s\n",
			rate.ReferenceDate.Format(dateLayout), r.rate(rate.AvgRate), rate.ExchangeConventionCode,
			rate.IsoCode, rate.Currency, rate.Country)
		leg = leg.add(rate.ExchangeConventionCode, rate.ExchangeConvention)
	}

	sb.WriteByte('\n')
	writeNotes(&sb, m.ResultsInfo.TimezoneReference)
	writeLegend(&sb, "Exchange convention:", leg)

	return r.flush(&sb)
}

func (r *Renderer) MonthlyAverageRates(m birates.MonthlyAverageRates) error {
	var (
		sb  strings.Builder
		leg legend
	)

	sb.WriteString("Ref. date  Rate                ISO  Currency, country\n")
	for _, rate := range m.Rates {
		fmt.Fprintf(&sb, "%04d-%02d    %s %1s  %-3s  %s, %s\n",
			rate.Year, rate.Month, r.rate(rate.AvgRate), rate.ExchangeConventionCode,
			rate.IsoCode, rate.Currency, rate.Country)
		leg = leg.add(rate.ExchangeConventionCode, rate.ExchangeConvention)
	}

	sb.WriteByte('\n')
	writeNotes(&sb, m.ResultsInfo.TimezoneReference)
	writeLegend(&sb, "Exchange convention:", leg)

	return r.flush(&sb)
}

func (r *Renderer) AnnualAverageRates(m birates.AnnualAverageRates) error {
	var (
		sb  strings.Builder
		leg legend
	)

	sb.WriteString("Year  Rate                ISO  Currency, country\n")
	for _, rate := range m.Rates {
		fmt.Fprintf(&sb, "%04d  %s %1s  %-3s  %s, %s\n",
			rate.Year, r.rate(rate.AvgRate), rate.ExchangeConventionCode,
			rate.IsoCode, rate.Currency, rate.Country)
		leg = leg.add(rate.ExchangeConventionCode, rate.ExchangeConvention)
	}

	sb.WriteByte('\n')
	writeNotes(&sb, m.ResultsInfo.TimezoneReference)
	writeLegend(&sb, "Exchange convention:", leg)

	return r.flush(&sb)
}

// seriesRow is a single line of a time series table, key is the formatted reference period
type seriesRow struct {
	key  string
	rate float64
	text string
}

func (r *Renderer) timeSeries(info birates.SeriesInfo, header string, rows []seriesRow) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s  %s\n\n", info.IsoCode, info.Currency)
	sb.WriteString(header)
	sb.WriteByte('\n')
	for _, row := range rows {
		fmt.Fprintf(&sb, "%s%s %1s\n", row.key, r.rate(row.rate), info.ExchangeConventionCode)
	}

	sb.WriteByte('\n')
	writeNotes(&sb, info.TimezoneReference)

	var leg legend
	first := ""
	if len(rows) > 0 {
		first = rows[0].text
	}
	writeLegend(&sb, "Exchange convention:", leg.add(info.ExchangeConventionCode, first))

	return r.flush(&sb)
}

func (r *Renderer) DailyTimeSeries(m birates.DailyTimeSeries) error {
	rows := make([]seriesRow, 0, len(m.Rates))
	for _, rate := range m.Rates {
		rows = append(rows, seriesRow{
			key:  rate.ReferenceDate.Format(dateLayout) + "  ",
			rate: rate.AvgRate,
			text: rate.ExchangeConvention,
		})
	}

	return r.timeSeries(m.ResultsInfo, "Ref. date   Rate", rows)
}

func (r *Renderer) MonthlyTimeSeries(m birates.MonthlyTimeSeries) error {
	rows := make([]seriesRow, 0, len(m.Rates))
	for _, rate := range m.Rates {
		rows = append(rows, seriesRow{
			key:  rate.ReferenceDate.Format(yearMonthLayout) + "   ",
			rate: rate.AvgRate,
			text: rate.ExchangeConvention,
		})
	}

	return r.timeSeries(m.ResultsInfo, "Ref. date  Rate", rows)
}

func (r *Renderer) AnnualTimeSeries(m birates.AnnualTimeSeries) error {
	rows := make([]seriesRow, 0, len(m.Rates))
	for _, rate := range m.Rates {
		rows = append(rows, seriesRow{
			key:  fmt.Sprintf("%04d  ", rate.ReferenceDate),
			rate: rate.AvgRate,
			text: rate.ExchangeConvention,
		})
	}

	return r.timeSeries(m.ResultsInfo, "Year  Rate", rows)
}

func (r *Renderer) Currencies(m birates.Currencies) error {
	var sb strings.Builder

	sb.WriteString("ISO  Currency\n")
	sb.WriteString("     Valid from  Valid to    ISO  Country\n")
	for _, ccy := range m.Currencies {
		fmt.Fprintf(&sb, "%-3s  %s\n", ccy.IsoCode, ccy.Name)
		for _, country := range ccy.Countries {
			fmt.Fprintf(&sb, "     %10s  %10s  %-3s  %s\n",
				country.ValidityStartDate.Format(dateLayout), formatDatePtr(country.ValidityEndDate),
				country.CountryIso, country.Country)
		}
	}

	sb.WriteByte('\n')
	writeNotes(&sb, m.ResultsInfo.TimezoneReference)

	return r.flush(&sb)
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format(dateLayout)
}
