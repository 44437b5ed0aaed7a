package feed

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rs/zerolog/log"

	"bisttakip"
	"bisttakip/date"
)

// Yahoo fetches daily closes from the Yahoo Finance chart API. Fetched quotes
// accumulate in an in-memory table, and the HTTP client caches raw responses
// on disk with a daily expiry, so repeated valuations in one run or one day
// do not hammer the endpoint.
type Yahoo struct {
	base   string // endpoint root, overridable in tests
	client *http.Client
	quotes *Memory
}

func NewYahoo() *Yahoo {
	return &Yahoo{
		base:   "https://query1.finance.yahoo.com",
		client: daily(),
		quotes: NewMemory(),
	}
}

// yahooSymbol maps a ledger ticker to its Yahoo symbol. Bare tickers are
// Istanbul stocks and get the ".IS" exchange suffix; tickers that already
// carry a suffix pass through.
func yahooSymbol(security string) string {
	if strings.Contains(security, ".") {
		return security
	}
	return security + ".IS"
}

// History fetches the daily closes of a security over a date range into the
// in-memory table. Days the exchange was closed simply have no quote.
func (y *Yahoo) History(security string, rng date.Range) error {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d",
		y.base, url.PathEscape(yahooSymbol(security)), rng.From.Unix(), rng.To.Add(1).Unix())

	var jobj any
	if err := jwget(y.client, addr, &jobj); err != nil {
		return fmt.Errorf("cannot fetch %s history: %w", security, err)
	}

	stamps, err := jsonArray(jobj, "$.chart.result[0].timestamp")
	if err != nil {
		return fmt.Errorf("unexpected chart payload for %s: %w", security, err)
	}
	closes, err := jsonArray(jobj, "$.chart.result[0].indicators.quote[0].close")
	if err != nil {
		return fmt.Errorf("unexpected chart payload for %s: %w", security, err)
	}

	n := 0
	for i, stamp := range stamps {
		sec, ok := stamp.(float64)
		if !ok || i >= len(closes) {
			continue
		}
		// null closes happen on half-days and data gaps
		price, ok := closes[i].(float64)
		if !ok {
			continue
		}
		day := date.New(time.Unix(int64(sec), 0).UTC().Date())
		y.quotes.Set(security, day, bisttakip.TRY(price))
		n++
	}
	log.Debug().Str("security", security).Int("quotes", n).Stringer("range", rng).Msg("history loaded")
	return nil
}

// PriceOn implements bisttakip.PriceSource. A miss in the table triggers a
// fetch of the surrounding window, then the table answers with forward-fill.
func (y *Yahoo) PriceOn(security string, on date.Date) (bisttakip.Money, error) {
	if price, err := y.quotes.PriceOn(security, on); err == nil {
		return price, nil
	}
	if err := y.History(security, date.NewRange(on.Add(-Lookback), on)); err != nil {
		log.Warn().Err(err).Str("security", security).Msg("price fetch failed")
		return bisttakip.Money{}, &bisttakip.PriceUnavailableError{Security: security, On: on}
	}
	return y.quotes.PriceOn(security, on)
}

// PricesOn implements bisttakip.BatchPriceSource. Securities that cannot be
// priced are absent from the result.
func (y *Yahoo) PricesOn(on date.Date, securities []string) map[string]bisttakip.Money {
	result := make(map[string]bisttakip.Money, len(securities))
	for _, sec := range securities {
		if price, err := y.PriceOn(sec, on); err == nil {
			result[sec] = price
		}
	}
	return result
}

// jsonArray extracts a JSON array at path, tolerating the extra list nesting
// the jsonpath library sometimes adds around its answer.
func jsonArray(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, err
	}
	list, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%s is not an array", path)
	}
	if len(list) == 1 {
		if inner, ok := list[0].([]any); ok {
			return inner, nil
		}
	}
	return list, nil
}
