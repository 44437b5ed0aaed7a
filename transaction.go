package bisttakip

import (
	"strings"

	"github.com/google/uuid"

	"bisttakip/date"
)

// CommandType is a typed string for identifying transaction commands.
type CommandType string

// Command types used for identifying transactions.
const (
	CmdBuy             CommandType = "buy"
	CmdSell            CommandType = "sell"
	CmdDividend        CommandType = "dividend"
	CmdCapitalIncrease CommandType = "capital-increase"
	CmdDeposit         CommandType = "deposit"
	CmdWithdraw        CommandType = "withdraw"
)

// Transaction defines the common interface for all financial transactions
// that can be recorded in the ledger. A transaction is immutable once created.
type Transaction interface {
	What() CommandType // the command type of the transaction (e.g. "buy", "sell")
	When() date.Date   // the date on which the transaction occurred
	Equal(Transaction) bool
	Validate() error
}

type baseCmd struct {
	Command CommandType `json:"command"`        // Command specifies the type of transaction.
	ID      string      `json:"id,omitempty"`   // ID is a stable identifier assigned at creation.
	Date    date.Date   `json:"date"`           // Date is the date when the transaction took place.
	Memo    string      `json:"memo,omitempty"` // Memo provides an optional note for the transaction.
}

func newBaseCmd(command CommandType, day date.Date, memo string) baseCmd {
	return baseCmd{Command: command, ID: uuid.NewString(), Date: day, Memo: memo}
}

// What returns the command name for the transaction.
func (t baseCmd) What() CommandType { return t.Command }

// When returns the date of the transaction.
func (t baseCmd) When() date.Date { return t.Date }

// Rationale returns the memo associated with the transaction.
func (t baseCmd) Rationale() string { return t.Memo }

// equal compares the semantic fields of two base commands. The ID is an
// addressing handle, not part of the transaction's meaning.
func (t baseCmd) equal(o baseCmd) bool {
	return t.Command == o.Command && t.Date == o.Date && t.Memo == o.Memo
}

// MarshalJSON implements the json.Marshaler interface for baseCmd.
func (t baseCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", t.Command)
	w.Optional("id", t.ID)
	w.Append("date", t.Date)
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}

// Validate checks the base command fields. Constructors and the message
// builder are responsible for filling a concrete date before validation.
func (t baseCmd) Validate() error {
	if t.Date.IsZero() {
		return validationf("%s transaction requires a date", t.Command)
	}
	return nil
}

// secCmd is a component for security-scoped transactions
// (buy, sell, dividend, capital increase).
type secCmd struct {
	baseCmd
	Security string `json:"security"` // ticker symbol, e.g. "THYAO"
}

func newSecCmd(command CommandType, day date.Date, memo, security string) secCmd {
	return secCmd{baseCmd: newBaseCmd(command, day, memo), Security: strings.ToUpper(security)}
}

func (t secCmd) equal(o secCmd) bool {
	return t.baseCmd.equal(o.baseCmd) && t.Security == o.Security
}

// MarshalJSON implements the json.Marshaler interface for secCmd.
func (t secCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("security", t.Security)
	return w.MarshalJSON()
}

// Validate checks the security-scoped fields on top of the base ones.
func (t secCmd) Validate() error {
	if err := t.baseCmd.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Security) == "" {
		return validationf("%s transaction requires a security symbol", t.Command)
	}
	return nil
}

// Buy represents the purchase of a quantity of a security at a unit price.
type Buy struct {
	secCmd
	Quantity Quantity // number of shares bought
	Price    Money    // price paid per share
}

// NewBuy creates a new Buy transaction.
func NewBuy(day date.Date, memo, security string, quantity Quantity, price Money) Buy {
	return Buy{secCmd: newSecCmd(CmdBuy, day, memo, security), Quantity: quantity, Price: price}
}

// Cost returns the total cost of the purchase.
func (t Buy) Cost() Money { return t.Price.Mul(t.Quantity) }

// MarshalJSON implements the json.Marshaler interface for Buy.
func (t Buy) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.secCmd)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price.Amount())
	w.Optional("currency", t.Price.Currency())
	return w.MarshalJSON()
}

func (t Buy) Equal(other Transaction) bool {
	o, ok := other.(Buy)
	return ok && t.secCmd.equal(o.secCmd) && t.Quantity.Equal(o.Quantity) && t.Price.Equal(o.Price)
}

// Validate ensures the quantity is positive and the price non-negative.
func (t Buy) Validate() error {
	if err := t.secCmd.Validate(); err != nil {
		return err
	}
	if !t.Quantity.IsPositive() {
		return validationf("buy quantity must be positive, got %s", t.Quantity)
	}
	if t.Price.IsNegative() {
		return validationf("buy price cannot be negative, got %s", t.Price)
	}
	return nil
}

// Sell represents the sale of a quantity of a security at a unit price.
type Sell struct {
	secCmd
	Quantity Quantity // number of shares sold
	Price    Money    // price received per share
}

// NewSell creates a new Sell transaction.
func NewSell(day date.Date, memo, security string, quantity Quantity, price Money) Sell {
	return Sell{secCmd: newSecCmd(CmdSell, day, memo, security), Quantity: quantity, Price: price}
}

// Proceeds returns the total amount received for the sale.
func (t Sell) Proceeds() Money { return t.Price.Mul(t.Quantity) }

// MarshalJSON implements the json.Marshaler interface for Sell.
func (t Sell) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.secCmd)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price.Amount())
	w.Optional("currency", t.Price.Currency())
	return w.MarshalJSON()
}

func (t Sell) Equal(other Transaction) bool {
	o, ok := other.(Sell)
	return ok && t.secCmd.equal(o.secCmd) && t.Quantity.Equal(o.Quantity) && t.Price.Equal(o.Price)
}

// Validate ensures the quantity is positive and the price non-negative.
// Whether the position actually covers the sale is a replay concern, it
// depends on the history before this transaction.
func (t Sell) Validate() error {
	if err := t.secCmd.Validate(); err != nil {
		return err
	}
	if !t.Quantity.IsPositive() {
		return validationf("sell quantity must be positive, got %s", t.Quantity)
	}
	if t.Price.IsNegative() {
		return validationf("sell price cannot be negative, got %s", t.Price)
	}
	return nil
}

// Dividend represents a cash dividend announced as a percentage of the
// share's par value (the BIST convention, e.g. "%45.20 temettü").
type Dividend struct {
	secCmd
	Rate Percent // percentage of par value paid per share held
}

// NewDividend creates a new Dividend transaction.
func NewDividend(day date.Date, memo, security string, rate Percent) Dividend {
	return Dividend{secCmd: newSecCmd(CmdDividend, day, memo, security), Rate: rate}
}

// MarshalJSON implements the json.Marshaler interface for Dividend.
func (t Dividend) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.secCmd)
	w.Append("rate", float64(t.Rate))
	return w.MarshalJSON()
}

func (t Dividend) Equal(other Transaction) bool {
	o, ok := other.(Dividend)
	return ok && t.secCmd.equal(o.secCmd) && t.Rate.Equal(o.Rate)
}

// Validate ensures the rate is non-negative.
func (t Dividend) Validate() error {
	if err := t.secCmd.Validate(); err != nil {
		return err
	}
	if t.Rate < 0 {
		return validationf("dividend rate cannot be negative, got %s", t.Rate)
	}
	return nil
}

// CapitalIncrease represents a bonus share issue ("bedelsiz sermaye
// artırımı"): holders receive rate% additional shares at no cost, diluting
// the unit cost of existing lots without changing the total basis.
type CapitalIncrease struct {
	secCmd
	Rate Percent // percentage of new shares relative to the held quantity
}

// NewCapitalIncrease creates a new CapitalIncrease transaction.
func NewCapitalIncrease(day date.Date, memo, security string, rate Percent) CapitalIncrease {
	return CapitalIncrease{secCmd: newSecCmd(CmdCapitalIncrease, day, memo, security), Rate: rate}
}

// MarshalJSON implements the json.Marshaler interface for CapitalIncrease.
func (t CapitalIncrease) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.secCmd)
	w.Append("rate", float64(t.Rate))
	return w.MarshalJSON()
}

func (t CapitalIncrease) Equal(other Transaction) bool {
	o, ok := other.(CapitalIncrease)
	return ok && t.secCmd.equal(o.secCmd) && t.Rate.Equal(o.Rate)
}

// Validate ensures the rate is positive.
func (t CapitalIncrease) Validate() error {
	if err := t.secCmd.Validate(); err != nil {
		return err
	}
	if t.Rate <= 0 {
		return validationf("capital increase rate must be positive, got %s", t.Rate)
	}
	return nil
}

// Deposit represents cash moved into the account from outside.
type Deposit struct {
	baseCmd
	Amount Money
}

// NewDeposit creates a new Deposit transaction.
func NewDeposit(day date.Date, memo string, amount Money) Deposit {
	return Deposit{baseCmd: newBaseCmd(CmdDeposit, day, memo), Amount: amount}
}

// MarshalJSON implements the json.Marshaler interface for Deposit.
func (t Deposit) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("amount", t.Amount.Amount())
	w.Optional("currency", t.Amount.Currency())
	return w.MarshalJSON()
}

func (t Deposit) Equal(other Transaction) bool {
	o, ok := other.(Deposit)
	return ok && t.baseCmd.equal(o.baseCmd) && t.Amount.Equal(o.Amount)
}

// Validate ensures the amount is positive.
func (t Deposit) Validate() error {
	if err := t.baseCmd.Validate(); err != nil {
		return err
	}
	if !t.Amount.IsPositive() {
		return validationf("deposit amount must be positive, got %s", t.Amount)
	}
	return nil
}

// Withdraw represents cash moved out of the account.
type Withdraw struct {
	baseCmd
	Amount Money
}

// NewWithdraw creates a new Withdraw transaction.
func NewWithdraw(day date.Date, memo string, amount Money) Withdraw {
	return Withdraw{baseCmd: newBaseCmd(CmdWithdraw, day, memo), Amount: amount}
}

// MarshalJSON implements the json.Marshaler interface for Withdraw.
func (t Withdraw) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("amount", t.Amount.Amount())
	w.Optional("currency", t.Amount.Currency())
	return w.MarshalJSON()
}

func (t Withdraw) Equal(other Transaction) bool {
	o, ok := other.(Withdraw)
	return ok && t.baseCmd.equal(o.baseCmd) && t.Amount.Equal(o.Amount)
}

// Validate ensures the amount is positive.
func (t Withdraw) Validate() error {
	if err := t.baseCmd.Validate(); err != nil {
		return err
	}
	if !t.Amount.IsPositive() {
		return validationf("withdraw amount must be positive, got %s", t.Amount)
	}
	return nil
}

// Security returns the ticker a transaction is scoped to, or "" for pure
// cash movements.
func Security(tx Transaction) string {
	switch v := tx.(type) {
	case Buy:
		return v.Security
	case Sell:
		return v.Security
	case Dividend:
		return v.Security
	case CapitalIncrease:
		return v.Security
	default:
		return ""
	}
}
