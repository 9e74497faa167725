package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/birates"
	"github.com/robotomize/birates/internal/query"
	"github.com/robotomize/birates/internal/render"
	"github.com/robotomize/birates/internal/strutil"
)

type app struct {
	client birates.ExchangeRatesClient
	out    *render.Renderer
	lang   birates.Language
}

type verb struct {
	name    string
	args    string
	minArgs int
	// maxArgs < 0 means a variadic tail of base currencies
	maxArgs int
	run     func(ctx context.Context, a *app, args []string) error
}

var verbs = []verb{
	{name: "latest", minArgs: 0, maxArgs: 0, run: runLatest},
	{name: "daily", args: "<yyyy-MM-dd> <currency> [base...]", minArgs: 2, maxArgs: -1, run: runDaily},
	{name: "monthly", args: "<month> <year> <currency> [base...]", minArgs: 3, maxArgs: -1, run: runMonthly},
	{name: "annual", args: "<year> <currency> [base...]", minArgs: 2, maxArgs: -1, run: runAnnual},
	{name: "dailyTimeSeries", args: "<start> <end> <currency> <base>", minArgs: 4, maxArgs: 4, run: runDailyTimeSeries},
	{
		name:    "monthlyTimeSeries",
		args:    "<startMonth> <startYear> <endMonth> <endYear> <currency> <base>",
		minArgs: 6,
		maxArgs: 6,
		run:     runMonthlyTimeSeries,
	},
	{
		name:    "annualTimeSeries",
		args:    "<startYear> <endYear> <currency> <base>",
		minArgs: 4,
		maxArgs: 4,
		run:     runAnnualTimeSeries,
	},
	{name: "currencies", minArgs: 0, maxArgs: 0, run: runCurrencies},
}

func lookupVerb(name string) (verb, bool) {
	for _, v := range verbs {
		if v.name == name {
			return v, true
		}
	}

	return verb{}, false
}

func (v verb) checkArgs(args []string) error {
	if len(args) < v.minArgs || (v.maxArgs >= 0 && len(args) > v.maxArgs) {
		return fmt.Errorf("%w: got %d arguments, usage: %s %s", errUsage, len(args), v.name, v.args)
	}

	return nil
}

// argParser collects every malformed argument so they are reported together
type argParser struct {
	err *multierror.Error
}

func (p *argParser) date(name, s string) time.Time {
	t, err := time.Parse(query.DateLayout, s)
	if err != nil {
		p.err = multierror.Append(p.err, fmt.Errorf("%s %q is not a yyyy-MM-dd date", name, s))
	}

	return t
}

func (p *argParser) number(name, s string, lo, hi int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < lo || n > hi {
		p.err = multierror.Append(p.err, fmt.Errorf("%s %q must be an integer in [%d, %d]", name, s, lo, hi))
	}

	return n
}

func (p *argParser) month(name, s string) int {
	return p.number(name, s, 1, 12)
}

func (p *argParser) year(name, s string) int {
	return p.number(name, s, 1000, 9999)
}

func (p *argParser) code(name, s string) string {
	c := strutil.NormalizeCode(s)
	if c == "" {
		p.err = multierror.Append(p.err, fmt.Errorf("%s must not be empty", name))
	}

	return c
}

func (p *argParser) result() error {
	if p.err == nil {
		return nil
	}

	return fmt.Errorf("%w: %v", errUsage, p.err)
}

func runLatest(ctx context.Context, a *app, _ []string) error {
	m, err := a.client.LatestRates(ctx, a.lang)
	if err != nil {
		return err
	}

	return a.out.LatestRates(m)
}

func runDaily(ctx context.Context, a *app, args []string) error {
	var p argParser
	date := p.date("date", args[0])
	ccy := p.code("currency", args[1])
	if err := p.result(); err != nil {
		return err
	}

	var (
		m   birates.DailyRates
		err error
	)

	if bases := strutil.NormalizeCodes(args[2:]); len(bases) > 0 {
		m, err = a.client.DailyRatesFor(ctx, date, bases, ccy, a.lang)
	} else {
		m, err = a.client.DailyRates(ctx, date, ccy, a.lang)
	}
	if err != nil {
		return err
	}

	return a.out.DailyRates(m)
}

func runMonthly(ctx context.Context, a *app, args []string) error {
	var p argParser
	month := p.month("month", args[0])
	year := p.year("year", args[1])
	ccy := p.code("currency", args[2])
	if err := p.result(); err != nil {
		return err
	}

	var (
		m   birates.MonthlyAverageRates
		err error
	)

	if bases := strutil.NormalizeCodes(args[3:]); len(bases) > 0 {
		m, err = a.client.MonthlyAverageRatesFor(ctx, month, year, bases, ccy, a.lang)
	} else {
		m, err = a.client.MonthlyAverageRates(ctx, month, year, ccy, a.lang)
	}
	if err != nil {
		return err
	}

	return a.out.MonthlyAverageRates(m)
}

func runAnnual(ctx context.Context, a *app, args []string) error {
	var p argParser
	year := p.year("year", args[0])
	ccy := p.code("currency", args[1])
	if err := p.result(); err != nil {
		return err
	}

	var (
		m   birates.AnnualAverageRates
		err error
	)

	if bases := strutil.NormalizeCodes(args[2:]); len(bases) > 0 {
		m, err = a.client.AnnualAverageRatesFor(ctx, year, bases, ccy, a.lang)
	} else {
		m, err = a.client.AnnualAverageRates(ctx, year, ccy, a.lang)
	}
	if err != nil {
		return err
	}

	return a.out.AnnualAverageRates(m)
}

func runDailyTimeSeries(ctx context.Context, a *app, args []string) error {
	var p argParser
	start := p.date("start date", args[0])
	end := p.date("end date", args[1])
	ccy := p.code("currency", args[2])
	base := p.code("base currency", args[3])
	if err := p.result(); err != nil {
		return err
	}

	m, err := a.client.DailyTimeSeries(ctx, start, end, base, ccy, a.lang)
	if err != nil {
		return err
	}

	return a.out.DailyTimeSeries(m)
}

func runMonthlyTimeSeries(ctx context.Context, a *app, args []string) error {
	var p argParser
	startMonth := p.month("start month", args[0])
	startYear := p.year("start year", args[1])
	endMonth := p.month("end month", args[2])
	endYear := p.year("end year", args[3])
	ccy := p.code("currency", args[4])
	base := p.code("base currency", args[5])
	if err := p.result(); err != nil {
		return err
	}

	m, err := a.client.MonthlyTimeSeries(ctx, startMonth, startYear, endMonth, endYear, base, ccy, a.lang)
	if err != nil {
		return err
	}

	return a.out.MonthlyTimeSeries(m)
}

func runAnnualTimeSeries(ctx context.Context, a *app, args []string) error {
	var p argParser
	startYear := p.year("start year", args[0])
	endYear := p.year("end year", args[1])
	ccy := p.code("currency", args[2])
	base := p.code("base currency", args[3])
	if err := p.result(); err != nil {
		return err
	}

	m, err := a.client.AnnualTimeSeries(ctx, startYear, endYear, base, ccy, a.lang)
	if err != nil {
		return err
	}

	return a.out.AnnualTimeSeries(m)
}

func runCurrencies(ctx context.Context, a *app, _ []string) error {
	m, err := a.client.Currencies(ctx, a.lang)
	if err != nil {
		return err
	}

	return a.out.Currencies(m)
}
