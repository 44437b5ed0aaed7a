package feed

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bisttakip"
	"bisttakip/date"
)

func TestMemoryForwardFill(t *testing.T) {
	m := NewMemory()
	friday := date.New(2024, 3, 15)
	m.Set("THYAO", friday, bisttakip.TRY(100))

	t.Run("exact day", func(t *testing.T) {
		price, err := m.PriceOn("THYAO", friday)
		require.NoError(t, err)
		assert.True(t, price.Equal(bisttakip.TRY(100)))
	})
	t.Run("weekend fills forward", func(t *testing.T) {
		price, err := m.PriceOn("THYAO", friday.Add(2)) // sunday
		require.NoError(t, err)
		assert.True(t, price.Equal(bisttakip.TRY(100)))
	})
	t.Run("lookup is case insensitive", func(t *testing.T) {
		_, err := m.PriceOn("thyao", friday)
		require.NoError(t, err)
	})
	t.Run("gap beyond lookback is unavailable", func(t *testing.T) {
		_, err := m.PriceOn("THYAO", friday.Add(Lookback+1))
		var perr *bisttakip.PriceUnavailableError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "THYAO", perr.Security)
	})
	t.Run("unknown security is unavailable", func(t *testing.T) {
		_, err := m.PriceOn("GARAN", friday)
		var perr *bisttakip.PriceUnavailableError
		require.ErrorAs(t, err, &perr)
	})
	t.Run("newer quote wins", func(t *testing.T) {
		m.Set("THYAO", friday.Add(1), bisttakip.TRY(101))
		price, err := m.PriceOn("THYAO", friday.Add(2))
		require.NoError(t, err)
		assert.True(t, price.Equal(bisttakip.TRY(101)))
	})
}

func TestMemoryPricesOn(t *testing.T) {
	m := NewMemory()
	on := date.New(2024, 3, 15)
	m.Set("THYAO", on, bisttakip.TRY(100))
	m.Set("GARAN", on.Add(-1), bisttakip.TRY(50))

	prices := m.PricesOn(on, []string{"THYAO", "GARAN", "ASELS"})
	require.Len(t, prices, 2)
	assert.True(t, prices["THYAO"].Equal(bisttakip.TRY(100)))
	assert.True(t, prices["GARAN"].Equal(bisttakip.TRY(50)))
	_, ok := prices["ASELS"]
	assert.False(t, ok, "unpriceable securities must be absent, not zero")
}

// chartPayload renders a minimal Yahoo chart response. A nil close marks a
// day without a usable quote.
func chartPayload(days []date.Date, closes []any) string {
	stamps := make([]string, len(days))
	for i, d := range days {
		stamps[i] = fmt.Sprint(d.Unix())
	}
	quotes := make([]string, len(closes))
	for i, c := range closes {
		if c == nil {
			quotes[i] = "null"
		} else {
			quotes[i] = fmt.Sprint(c)
		}
	}
	return fmt.Sprintf(`{"chart":{"result":[{"timestamp":[%s],"indicators":{"quote":[{"close":[%s]}]}}],"error":null}}`,
		strings.Join(stamps, ","), strings.Join(quotes, ","))
}

func TestYahooPriceOn(t *testing.T) {
	monday := date.New(2024, 3, 11)
	var gotPaths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.URL.Path)
		fmt.Fprint(w, chartPayload(
			[]date.Date{monday, monday.Add(1), monday.Add(2)},
			[]any{312.5, nil, 315.25},
		))
	}))
	defer srv.Close()

	y := &Yahoo{base: srv.URL, client: srv.Client(), quotes: NewMemory()}

	price, err := y.PriceOn("THYAO", monday.Add(2))
	require.NoError(t, err)
	assert.True(t, price.Equal(bisttakip.TRY(315.25)), "got %s", price)
	assert.Equal(t, "TRY", price.Currency())
	require.Len(t, gotPaths, 1)
	assert.Equal(t, "/v8/finance/chart/THYAO.IS", gotPaths[0], "bare tickers get the Istanbul suffix")

	t.Run("null close fills from previous day", func(t *testing.T) {
		price, err := y.PriceOn("THYAO", monday.Add(1))
		require.NoError(t, err)
		assert.True(t, price.Equal(bisttakip.TRY(312.5)), "got %s", price)
	})
	t.Run("second lookup answers from the table", func(t *testing.T) {
		before := len(gotPaths)
		_, err := y.PriceOn("THYAO", monday.Add(2))
		require.NoError(t, err)
		assert.Equal(t, before, len(gotPaths), "no extra fetch expected")
	})
	t.Run("suffixed ticker passes through", func(t *testing.T) {
		assert.Equal(t, "AAPL.US", yahooSymbol("AAPL.US"))
	})
}

func TestYahooUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	y := &Yahoo{base: srv.URL, client: srv.Client(), quotes: NewMemory()}
	_, err := y.PriceOn("NOPE", date.New(2024, 3, 11))
	var perr *bisttakip.PriceUnavailableError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "NOPE", perr.Security)
}
