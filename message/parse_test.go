package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bisttakip"
	"bisttakip/date"
)

var anyDay = date.New(2024, 3, 15)

func TestParseBuyTemplates(t *testing.T) {
	want := bisttakip.NewBuy(anyDay, "", "THYAO", bisttakip.Q(100), bisttakip.M(32.5, ""))
	raws := []string{
		"THYAO hissesinden 100 adet hisse 32,50 TL fiyattan alınmıştır.",
		"THYAO 100 adet 32,50 fiyattan alım işlemi gerçekleştirilmiştir.",
		"THYAO.E senedinden 100 adet 32.50 TL fiyatla alış emriniz gerçekleşmiştir.",
	}
	for _, raw := range raws {
		t.Run(raw, func(t *testing.T) {
			got, err := Parse(raw, anyDay)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %+v", got)
		})
	}
}

func TestParseSellTemplates(t *testing.T) {
	want := bisttakip.NewSell(anyDay, "", "GARAN", bisttakip.Q(50), bisttakip.M(118.2, ""))
	raws := []string{
		"GARAN hissesinden 50 adet hisse 118,20 TL fiyattan satılmıştır.",
		"GARAN 50 adet 118,20 fiyattan satış işlemi gerçekleştirilmiştir.",
		"GARAN.E senedinden 50 adet 118.2 TL fiyatla satış emriniz gerçekleşmiştir.",
	}
	for _, raw := range raws {
		t.Run(raw, func(t *testing.T) {
			got, err := Parse(raw, anyDay)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %+v", got)
		})
	}
}

func TestParseDividend(t *testing.T) {
	t.Run("plain announcement uses fallback date", func(t *testing.T) {
		got, err := Parse("THYAO.E senedi %45,2 temettü ödemesi yapacaktır.", anyDay)
		require.NoError(t, err)
		want := bisttakip.NewDividend(anyDay, "", "THYAO", 45.2)
		assert.True(t, want.Equal(got), "got %+v", got)
	})
	t.Run("dated announcement uses its own date", func(t *testing.T) {
		got, err := Parse("03.05.2021: THYAO.E senedi %45,2 temettü ödemesi yapacaktır.", anyDay)
		require.NoError(t, err)
		want := bisttakip.NewDividend(date.New(2021, 5, 3), "", "THYAO", 45.2)
		assert.True(t, want.Equal(got), "got %+v", got)
	})
	t.Run("payment confirmation phrasing", func(t *testing.T) {
		got, err := Parse("SISE hisseniz için %12 temettü ödemesi yapılmıştır.", anyDay)
		require.NoError(t, err)
		want := bisttakip.NewDividend(anyDay, "", "SISE", 12)
		assert.True(t, want.Equal(got), "got %+v", got)
	})
}

func TestParseCapitalIncrease(t *testing.T) {
	t.Run("plain announcement", func(t *testing.T) {
		got, err := Parse("ASELS.E senedi %900 bedelsiz sermaye artırımı yapacaktır.", anyDay)
		require.NoError(t, err)
		want := bisttakip.NewCapitalIncrease(anyDay, "", "ASELS", 900)
		assert.True(t, want.Equal(got), "got %+v", got)
	})
	t.Run("dated announcement", func(t *testing.T) {
		got, err := Parse("15.06.2022: Değerli müşterimiz ASELS.E senedinde %900 bedelsiz işlemi yapılmıştır.", anyDay)
		require.NoError(t, err)
		want := bisttakip.NewCapitalIncrease(date.New(2022, 6, 15), "", "ASELS", 900)
		assert.True(t, want.Equal(got), "got %+v", got)
	})
	t.Run("allocation phrasing", func(t *testing.T) {
		got, err := Parse("EREGL için %50 bedelsiz pay verilmiştir.", anyDay)
		require.NoError(t, err)
		want := bisttakip.NewCapitalIncrease(anyDay, "", "EREGL", 50)
		assert.True(t, want.Equal(got), "got %+v", got)
	})
}

func TestParseCash(t *testing.T) {
	t.Run("deposit", func(t *testing.T) {
		got, err := Parse("Hesabınıza 5000 TL yatırılmıştır.", anyDay)
		require.NoError(t, err)
		want := bisttakip.NewDeposit(anyDay, "", bisttakip.M(5000, ""))
		assert.True(t, want.Equal(got), "got %+v", got)
	})
	t.Run("deposit confirmation phrasing", func(t *testing.T) {
		got, err := Parse("1500,75 TL para yatırma işleminiz gerçekleşmiştir.", anyDay)
		require.NoError(t, err)
		want := bisttakip.NewDeposit(anyDay, "", bisttakip.M(1500.75, ""))
		assert.True(t, want.Equal(got), "got %+v", got)
	})
	t.Run("withdrawal", func(t *testing.T) {
		got, err := Parse("Hesabınızdan 250 TL çekilmiştir.", anyDay)
		require.NoError(t, err)
		want := bisttakip.NewWithdraw(anyDay, "", bisttakip.M(250, ""))
		assert.True(t, want.Equal(got), "got %+v", got)
	})
}

func TestParseFractionalQuantity(t *testing.T) {
	got, err := Parse("THYAO hissesinden 10,5 adet hisse 32 TL fiyattan alınmıştır.", anyDay)
	require.NoError(t, err)
	want := bisttakip.NewBuy(anyDay, "", "THYAO", bisttakip.Q(10.5), bisttakip.M(32, ""))
	assert.True(t, want.Equal(got), "got %+v", got)
}

func TestParseNoMatch(t *testing.T) {
	raws := []string{
		"Kampanyamızdan yararlanmak için tıklayın!",
		"THYAO hissesi bugün %5 yükseldi.",
		"",
	}
	for _, raw := range raws {
		_, err := Parse(raw, anyDay)
		var nm *NoMatchError
		require.ErrorAs(t, err, &nm, "raw %q", raw)
		assert.Equal(t, raw, nm.Text)
	}
}

func TestBuildRejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name string
		c    Capture
	}{
		{"zero quantity", Capture{Kind: KindBuy, Symbol: "thyao", Quantity: "0", Price: "10"}},
		{"zero price", Capture{Kind: KindSell, Symbol: "thyao", Quantity: "10", Price: "0"}},
		{"zero rate", Capture{Kind: KindDividend, Symbol: "thyao", Rate: "0"}},
		{"zero amount", Capture{Kind: KindDeposit, Amount: "0"}},
		{"garbage date", Capture{Kind: KindDividend, Symbol: "thyao", Rate: "10", Date: "99.99.2021"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Build(tc.c, anyDay)
			var verr *bisttakip.ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	txs := []bisttakip.Transaction{
		bisttakip.NewBuy(anyDay, "", "THYAO", bisttakip.Q(100), bisttakip.M(32.5, "")),
		bisttakip.NewSell(anyDay, "", "GARAN", bisttakip.Q(50), bisttakip.M(118.2, "")),
		bisttakip.NewDividend(date.New(2021, 5, 3), "", "THYAO", 45.2),
		bisttakip.NewCapitalIncrease(date.New(2022, 6, 15), "", "ASELS", 900),
		bisttakip.NewDeposit(anyDay, "", bisttakip.M(5000, "")),
		bisttakip.NewWithdraw(anyDay, "", bisttakip.M(250, "")),
	}
	for _, tx := range txs {
		msg, err := Format(tx)
		require.NoError(t, err)
		got, err := Parse(msg, tx.When())
		require.NoError(t, err, "message %q", msg)
		assert.True(t, tx.Equal(got), "message %q parsed to %+v", msg, got)
	}
}
