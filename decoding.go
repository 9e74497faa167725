package birates

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// notAvailable is sent by the service in place of a rate it does not have
const notAvailable = "N.A."

const (
	dateLayout      = "2006-01-02"
	dateTimeLayout  = "2006-01-02T15:04:05"
	yearMonthLayout = "2006-01"
)

var (
	errRateNotValid = errors.New("rate is not valid")
	errDateNotValid = errors.New("date is not valid")
	errIntNotValid  = errors.New("integer is not valid")
)

var jsonNull = []byte("null")

var (
	_ json.Unmarshaler = (*jsonRate)(nil)
	_ json.Unmarshaler = (*jsonDate)(nil)
	_ json.Unmarshaler = (*jsonYearMonth)(nil)
	_ json.Unmarshaler = (*jsonInt)(nil)
)

// jsonRate accepts a JSON number, a numeric string or the "N.A." sentinel, which decodes as 0
type jsonRate float64

func (r jsonRate) Float64() float64 {
	return float64(r)
}

func (r *jsonRate) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, jsonNull) {
		return nil
	}

	s, err := unquote(b)
	if err != nil {
		return fmt.Errorf("%w: %v", errRateNotValid, err)
	}

	if strings.TrimSpace(s) == notAvailable {
		*r = 0
		return nil
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("%w: %v", errRateNotValid, err)
	}

	*r = jsonRate(v)

	return nil
}

// jsonDate is a yyyy-MM-dd calendar date, a trailing time of day is tolerated
type jsonDate time.Time

func (d jsonDate) Time() time.Time {
	return time.Time(d)
}

func (d *jsonDate) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, jsonNull) {
		return nil
	}

	s, err := unquote(b)
	if err != nil {
		return fmt.Errorf("%w: %v", errDateNotValid, err)
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		if t, err = time.Parse(dateTimeLayout, s); err != nil {
			return fmt.Errorf("%w: %v", errDateNotValid, err)
		}
	}

	*d = jsonDate(t)

	return nil
}

func (d *jsonDate) timePtr() *time.Time {
	if d == nil {
		return nil
	}

	t := time.Time(*d)

	return &t
}

// jsonYearMonth is a yyyy-MM month, decoded as the first day of that month
type jsonYearMonth time.Time

func (d jsonYearMonth) Time() time.Time {
	return time.Time(d)
}

func (d *jsonYearMonth) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, jsonNull) {
		return nil
	}

	s, err := unquote(b)
	if err != nil {
		return fmt.Errorf("%w: %v", errDateNotValid, err)
	}

	t, err := time.Parse(yearMonthLayout, s)
	if err != nil {
		return fmt.Errorf("%w: %v", errDateNotValid, err)
	}

	*d = jsonYearMonth(t)

	return nil
}

// jsonInt accepts a JSON number or a numeric string
type jsonInt int

func (i jsonInt) Int() int {
	return int(i)
}

func (i *jsonInt) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, jsonNull) {
		return nil
	}

	s, err := unquote(b)
	if err != nil {
		return fmt.Errorf("%w: %v", errIntNotValid, err)
	}

	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%w: %v", errIntNotValid, err)
	}

	*i = jsonInt(v)

	return nil
}

// unquote returns the content of a JSON string, or the raw token for numbers
func unquote(b []byte) (string, error) {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", err
		}

		return s, nil
	}

	if len(b) == 0 || !(b[0] == '-' || (b[0] >= '0' && b[0] <= '9')) {
		return "", fmt.Errorf("unexpected token %q", b)
	}

	return string(b), nil
}
