package birates

// JSON documents of the REST API. Field matching in encoding/json is case-insensitive,
// the tags carry the lower camel case names used on the wire

type jsonResultsInfo struct {
	TotalRecords           int    `json:"totalRecords"`
	TimezoneReference      string `json:"timezoneReference"`
	Notice                 string `json:"notice"`
	Currency               string `json:"currency"`
	IsoCode                string `json:"isoCode"`
	UicCode                string `json:"uicCode"`
	ExchangeConventionCode string `json:"exchangeConventionCode"`
}

func (r jsonResultsInfo) resultsInfo() ResultsInfo {
	return ResultsInfo{
		TotalRecords:      r.TotalRecords,
		TimezoneReference: r.TimezoneReference,
		Notice:            r.Notice,
	}
}

func (r jsonResultsInfo) seriesInfo() SeriesInfo {
	return SeriesInfo{
		TotalRecords:           r.TotalRecords,
		TimezoneReference:      r.TimezoneReference,
		Currency:               r.Currency,
		IsoCode:                r.IsoCode,
		UicCode:                r.UicCode,
		ExchangeConventionCode: r.ExchangeConventionCode,
	}
}

type jsonLatestRates struct {
	ResultsInfo jsonResultsInfo `json:"resultsInfo"`
	LatestRates []struct {
		Currency                  string   `json:"currency"`
		Country                   string   `json:"country"`
		IsoCode                   string   `json:"isoCode"`
		UicCode                   string   `json:"uicCode"`
		EurRate                   jsonRate `json:"eurRate"`
		UsdRate                   jsonRate `json:"usdRate"`
		UsdExchangeConvention     string   `json:"usdExchangeConvention"`
		UsdExchangeConventionCode string   `json:"usdExchangeConventionCode"`
		ReferenceDate             jsonDate `json:"referenceDate"`
	} `json:"latestRates"`
}

func (j jsonLatestRates) model() LatestRates {
	m := LatestRates{ResultsInfo: j.ResultsInfo.resultsInfo()}
	if j.LatestRates == nil {
		return m
	}

	m.LatestRates = make([]LatestRate, 0, len(j.LatestRates))
	for _, r := range j.LatestRates {
		m.LatestRates = append(m.LatestRates, LatestRate{
			Currency:                  r.Currency,
			Country:                   r.Country,
			IsoCode:                   r.IsoCode,
			UicCode:                   r.UicCode,
			EurRate:                   r.EurRate.Float64(),
			UsdRate:                   r.UsdRate.Float64(),
			UsdExchangeConvention:     r.UsdExchangeConvention,
			UsdExchangeConventionCode: r.UsdExchangeConventionCode,
			ReferenceDate:             r.ReferenceDate.Time(),
		})
	}

	return m
}

// jsonAverageRow holds the fields shared by the daily, monthly and annual average rates documents
type jsonAverageRow struct {
	Country                string   `json:"country"`
	Currency               string   `json:"currency"`
	IsoCode                string   `json:"isoCode"`
	UicCode                string   `json:"uicCode"`
	AvgRate                jsonRate `json:"avgRate"`
	ExchangeConvention     string   `json:"exchangeConvention"`
	ExchangeConventionCode string   `json:"exchangeConventionCode"`
}

type jsonDailyRates struct {
	ResultsInfo jsonResultsInfo `json:"resultsInfo"`
	Rates       []struct {
		jsonAverageRow
		ReferenceDate jsonDate `json:"referenceDate"`
	} `json:"rates"`
}

func (j jsonDailyRates) model() DailyRates {
	m := DailyRates{ResultsInfo: j.ResultsInfo.resultsInfo()}
	if j.Rates == nil {
		return m
	}

	m.Rates = make([]DailyRate, 0, len(j.Rates))
	for _, r := range j.Rates {
		m.Rates = append(m.Rates, DailyRate{
			Country:                r.Country,
			Currency:               r.Currency,
			IsoCode:                r.IsoCode,
			UicCode:                r.UicCode,
			AvgRate:                r.AvgRate.Float64(),
			ExchangeConvention:     r.ExchangeConvention,
			ExchangeConventionCode: r.ExchangeConventionCode,
			ReferenceDate:          r.ReferenceDate.Time(),
		})
	}

	return m
}

type jsonMonthlyAverageRates struct {
	ResultsInfo jsonResultsInfo `json:"resultsInfo"`
	Rates       []struct {
		jsonAverageRow
		Year  jsonInt `json:"year"`
		Month jsonInt `json:"month"`
	} `json:"rates"`
}

func (j jsonMonthlyAverageRates) model() MonthlyAverageRates {
	m := MonthlyAverageRates{ResultsInfo: j.ResultsInfo.resultsInfo()}
	if j.Rates == nil {
		return m
	}

	m.Rates = make([]MonthlyAverageRate, 0, len(j.Rates))
	for _, r := range j.Rates {
		m.Rates = append(m.Rates, MonthlyAverageRate{
			Country:                r.Country,
			Currency:               r.Currency,
			IsoCode:                r.IsoCode,
			UicCode:                r.UicCode,
			AvgRate:                r.AvgRate.Float64(),
			ExchangeConvention:     r.ExchangeConvention,
			ExchangeConventionCode: r.ExchangeConventionCode,
			Year:                   r.Year.Int(),
			Month:                  r.Month.Int(),
		})
	}

	return m
}

type jsonAnnualAverageRates struct {
	ResultsInfo jsonResultsInfo `json:"resultsInfo"`
	Rates       []struct {
		jsonAverageRow
		Year jsonInt `json:"year"`
	} `json:"rates"`
}

func (j jsonAnnualAverageRates) model() AnnualAverageRates {
	m := AnnualAverageRates{ResultsInfo: j.ResultsInfo.resultsInfo()}
	if j.Rates == nil {
		return m
	}

	m.Rates = make([]AnnualAverageRate, 0, len(j.Rates))
	for _, r := range j.Rates {
		m.Rates = append(m.Rates, AnnualAverageRate{
			Country:                r.Country,
			Currency:               r.Currency,
			IsoCode:                r.IsoCode,
			UicCode:                r.UicCode,
			AvgRate:                r.AvgRate.Float64(),
			ExchangeConvention:     r.ExchangeConvention,
			ExchangeConventionCode: r.ExchangeConventionCode,
			Year:                   r.Year.Int(),
		})
	}

	return m
}

type jsonDailyTimeSeries struct {
	ResultsInfo jsonResultsInfo `json:"resultsInfo"`
	Rates       []struct {
		ReferenceDate      jsonDate `json:"referenceDate"`
		AvgRate            jsonRate `json:"avgRate"`
		ExchangeConvention string   `json:"exchangeConvention"`
	} `json:"rates"`
}

func (j jsonDailyTimeSeries) model() DailyTimeSeries {
	m := DailyTimeSeries{ResultsInfo: j.ResultsInfo.seriesInfo()}
	if j.Rates == nil {
		return m
	}

	m.Rates = make([]DailyTimeSeriesRate, 0, len(j.Rates))
	for _, r := range j.Rates {
		m.Rates = append(m.Rates, DailyTimeSeriesRate{
			ReferenceDate:      r.ReferenceDate.Time(),
			AvgRate:            r.AvgRate.Float64(),
			ExchangeConvention: r.ExchangeConvention,
		})
	}

	return m
}

// The monthly and annual series reuse referenceDate for a yyyy-MM month and a yyyy year

type jsonMonthlyTimeSeries struct {
	ResultsInfo jsonResultsInfo `json:"resultsInfo"`
	Rates       []struct {
		ReferenceDate      jsonYearMonth `json:"referenceDate"`
		AvgRate            jsonRate      `json:"avgRate"`
		ExchangeConvention string        `json:"exchangeConvention"`
	} `json:"rates"`
}

func (j jsonMonthlyTimeSeries) model() MonthlyTimeSeries {
	m := MonthlyTimeSeries{ResultsInfo: j.ResultsInfo.seriesInfo()}
	if j.Rates == nil {
		return m
	}

	m.Rates = make([]MonthlyTimeSeriesRate, 0, len(j.Rates))
	for _, r := range j.Rates {
		m.Rates = append(m.Rates, MonthlyTimeSeriesRate{
			ReferenceDate:      r.ReferenceDate.Time(),
			AvgRate:            r.AvgRate.Float64(),
			ExchangeConvention: r.ExchangeConvention,
		})
	}

	return m
}

type jsonAnnualTimeSeries struct {
	ResultsInfo jsonResultsInfo `json:"resultsInfo"`
	Rates       []struct {
		ReferenceDate      jsonInt  `json:"referenceDate"`
		AvgRate            jsonRate `json:"avgRate"`
		ExchangeConvention string   `json:"exchangeConvention"`
	} `json:"rates"`
}

func (j jsonAnnualTimeSeries) model() AnnualTimeSeries {
	m := AnnualTimeSeries{ResultsInfo: j.ResultsInfo.seriesInfo()}
	if j.Rates == nil {
		return m
	}

	m.Rates = make([]AnnualTimeSeriesRate, 0, len(j.Rates))
	for _, r := range j.Rates {
		m.Rates = append(m.Rates, AnnualTimeSeriesRate{
			ReferenceDate:      r.ReferenceDate.Int(),
			AvgRate:            r.AvgRate.Float64(),
			ExchangeConvention: r.ExchangeConvention,
		})
	}

	return m
}

type jsonCurrencies struct {
	ResultsInfo jsonResultsInfo `json:"resultsInfo"`
	Currencies  []struct {
		Countries []struct {
			CurrencyIso       string    `json:"currencyIso"`
			Country           string    `json:"country"`
			CountryIso        string    `json:"countryIso"`
			ValidityStartDate jsonDate  `json:"validityStartDate"`
			ValidityEndDate   *jsonDate `json:"validityEndDate"`
		} `json:"countries"`
		IsoCode string `json:"isoCode"`
		Name    string `json:"name"`
		Graph   bool   `json:"graph"`
	} `json:"currencies"`
}

func (j jsonCurrencies) model() Currencies {
	m := Currencies{ResultsInfo: j.ResultsInfo.resultsInfo()}
	if j.Currencies == nil {
		return m
	}

	m.Currencies = make([]Currency, 0, len(j.Currencies))
	for _, c := range j.Currencies {
		ccy := Currency{
			IsoCode: c.IsoCode,
			Name:    c.Name,
			Graph:   c.Graph,
		}

		if c.Countries != nil {
			ccy.Countries = make([]Country, 0, len(c.Countries))
		}

		for _, country := range c.Countries {
			ccy.Countries = append(ccy.Countries, Country{
				CurrencyIso:       country.CurrencyIso,
				Country:           country.Country,
				CountryIso:        country.CountryIso,
				ValidityStartDate: country.ValidityStartDate.Time(),
				ValidityEndDate:   country.ValidityEndDate.timePtr(),
			})
		}

		m.Currencies = append(m.Currencies, ccy)
	}

	return m
}
