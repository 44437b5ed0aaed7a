package message

import (
	"fmt"
	"regexp"
)

// Kind tags the message family a capture was recognized as.
type Kind string

const (
	KindBuy             Kind = "buy"
	KindSell            Kind = "sell"
	KindDividend        Kind = "dividend"
	KindCapitalIncrease Kind = "capital-increase"
	KindDeposit         Kind = "deposit"
	KindWithdraw        Kind = "withdraw"
)

// Capture holds the raw substrings a matcher extracted from normalized text.
// Fields are untyped strings on purpose: interpretation and validation is the
// builder's job.
type Capture struct {
	Kind     Kind
	Symbol   string // ticker, e.g. "thyao" (still normalized lowercase)
	Quantity string // share count, possibly fractional, comma or dot separator
	Price    string // unit price for trades
	Rate     string // percentage for dividend / capital increase
	Amount   string // cash amount for deposit / withdrawal
	Date     string // optional DD.MM.YYYY prefix of corporate announcements
}

// Matcher attempts to extract a transaction-shaped payload from normalized
// text. Implementations are independent recognizers, one per message family.
type Matcher interface {
	Kind() Kind
	TryMatch(normalized string) (Capture, bool)
}

// NoMatchError reports text that no known template recognizes. It keeps the
// original text so it can be surfaced for manual entry.
type NoMatchError struct {
	Text string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("message not recognized by any known broker format: %q", e.Text)
}

// templateMatcher recognizes one family through a list of alternative
// sentence templates, the observed phrasings of the supported banks. Word
// order within a template is fixed: the normalizer already removed case and
// spacing noise, reordered sentences are a different (unknown) format.
type templateMatcher struct {
	kind      Kind
	templates []*regexp.Regexp
}

func (m *templateMatcher) Kind() Kind { return m.kind }

func (m *templateMatcher) TryMatch(normalized string) (Capture, bool) {
	for _, re := range m.templates {
		groups := re.FindStringSubmatch(normalized)
		if groups == nil {
			continue
		}
		c := Capture{Kind: m.kind}
		for i, name := range re.SubexpNames() {
			if i == 0 || groups[i] == "" {
				continue
			}
			switch name {
			case "symbol":
				c.Symbol = groups[i]
			case "quantity":
				c.Quantity = groups[i]
			case "price":
				c.Price = groups[i]
			case "rate":
				c.Rate = groups[i]
			case "amount":
				c.Amount = groups[i]
			case "date":
				c.Date = groups[i]
			}
		}
		return c, true
	}
	return Capture{}, false
}

// Building blocks shared by the templates below.
const (
	sym  = `(?P<symbol>[a-z][a-z0-9]{1,9})`
	num  = `[0-9]+(?:[.,][0-9]+)?`
	when = `(?:(?P<date>[0-3][0-9]\.[0-1][0-9]\.[0-9]{4}):\s*)?`
)

var (
	qty    = `(?P<quantity>` + num + `)`
	price  = `(?P<price>` + num + `)`
	rate   = `(?P<rate>` + num + `)`
	amount = `(?P<amount>` + num + `)`
)

// buyMatcher recognizes purchase confirmations in the three observed phrasings.
var buyMatcher = &templateMatcher{kind: KindBuy, templates: []*regexp.Regexp{
	regexp.MustCompile(sym + ` hissesinden ` + qty + ` adet hisse ` + price + ` tl fiyattan alinmistir`),
	regexp.MustCompile(sym + ` ` + qty + ` adet ` + price + ` fiyattan alim islemi gerceklestirilmistir`),
	regexp.MustCompile(sym + `\.e senedinden ` + qty + ` adet ` + price + ` tl fiyatla alis emriniz gerceklesmistir`),
}}

// sellMatcher mirrors the buy phrasings with the sale keywords.
var sellMatcher = &templateMatcher{kind: KindSell, templates: []*regexp.Regexp{
	regexp.MustCompile(sym + ` hissesinden ` + qty + ` adet hisse ` + price + ` tl fiyattan satilmistir`),
	regexp.MustCompile(sym + ` ` + qty + ` adet ` + price + ` fiyattan satis islemi gerceklestirilmistir`),
	regexp.MustCompile(sym + `\.e senedinden ` + qty + ` adet ` + price + ` tl fiyatla satis emriniz gerceklesmistir`),
}}

// dividendMatcher recognizes dividend announcements. The percentage applies
// to the share's par value, not to the market price. Announcements may carry
// a DD.MM.YYYY prefix with the payment date.
var dividendMatcher = &templateMatcher{kind: KindDividend, templates: []*regexp.Regexp{
	regexp.MustCompile(when + sym + `\.e senedi %` + rate + ` temettu`),
	regexp.MustCompile(`(?P<date>[0-3][0-9]\.[0-1][0-9]\.[0-9]{4}):.*? ` + sym + `\.e .*?%` + rate + ` temettu`),
	regexp.MustCompile(sym + ` hisseniz icin %` + rate + ` temettu odemesi yapilmistir`),
}}

// capitalIncreaseMatcher recognizes bonus share (bedelsiz) announcements.
var capitalIncreaseMatcher = &templateMatcher{kind: KindCapitalIncrease, templates: []*regexp.Regexp{
	regexp.MustCompile(when + sym + `\.e senedi %` + rate + ` bedelsiz sermaye artirimi`),
	regexp.MustCompile(`(?P<date>[0-3][0-9]\.[0-1][0-9]\.[0-9]{4}):.*? ` + sym + `\.e .*?%` + rate + ` bedelsiz`),
	regexp.MustCompile(sym + ` icin %` + rate + ` bedelsiz pay verilmistir`),
}}

// depositMatcher and withdrawMatcher recognize cash movements. These carry no
// symbol, the ledger treats them as pure cash transactions.
var depositMatcher = &templateMatcher{kind: KindDeposit, templates: []*regexp.Regexp{
	regexp.MustCompile(`hesabiniza ` + amount + ` tl yatirilmistir`),
	regexp.MustCompile(amount + ` tl para yatirma isleminiz gerceklesmistir`),
}}

var withdrawMatcher = &templateMatcher{kind: KindWithdraw, templates: []*regexp.Regexp{
	regexp.MustCompile(`hesabinizdan ` + amount + ` tl cekilmistir`),
	regexp.MustCompile(amount + ` tl para cekme isleminiz gerceklesmistir`),
}}

// matchers is the fixed priority order: trades before corporate actions
// before cash moves. Action keywords disambiguate, the first success wins and
// no matcher hands partially consumed text to another.
var matchers = []Matcher{
	buyMatcher,
	sellMatcher,
	dividendMatcher,
	capitalIncreaseMatcher,
	depositMatcher,
	withdrawMatcher,
}

// Match runs the matchers in priority order over already-normalized text.
func Match(normalized string) (Capture, error) {
	for _, m := range matchers {
		if c, ok := m.TryMatch(normalized); ok {
			return c, nil
		}
	}
	return Capture{}, &NoMatchError{Text: normalized}
}
