package bisttakip

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// amountCmd is a specialized struct to read a money amount spread over the
// "amount"/"currency" (or "price"/"currency") pair of fields.
type amountCmd struct {
	Amount   decimal.Decimal `json:"amount"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

func (a amountCmd) AmountMoney() Money { return M(a.Amount, a.Currency) }
func (a amountCmd) PriceMoney() Money  { return M(a.Price, a.Currency) }

// DecodeLedger decodes transactions from a stream of JSONL data, one JSON
// object per line tagged by its "command" field, and returns a sorted Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // skip empty lines
		}

		tx, err := decodeTransaction(lineBytes)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ledger.transactions = append(ledger.transactions, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	ledger.stableSort()
	return ledger, nil
}

func decodeTransaction(lineBytes []byte) (Transaction, error) {
	var identifier struct {
		Command CommandType `json:"command"`
	}
	if err := json.Unmarshal(lineBytes, &identifier); err != nil {
		return nil, fmt.Errorf("could not identify command in %q: %w", string(lineBytes), err)
	}

	switch identifier.Command {
	case CmdBuy, CmdSell:
		var temp struct {
			secCmd
			amountCmd
			Quantity Quantity `json:"quantity"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, err
		}
		if identifier.Command == CmdBuy {
			return Buy{secCmd: temp.secCmd, Quantity: temp.Quantity, Price: temp.PriceMoney()}, nil
		}
		return Sell{secCmd: temp.secCmd, Quantity: temp.Quantity, Price: temp.PriceMoney()}, nil

	case CmdDividend, CmdCapitalIncrease:
		var temp struct {
			secCmd
			Rate float64 `json:"rate"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, err
		}
		if identifier.Command == CmdDividend {
			return Dividend{secCmd: temp.secCmd, Rate: Percent(temp.Rate)}, nil
		}
		return CapitalIncrease{secCmd: temp.secCmd, Rate: Percent(temp.Rate)}, nil

	case CmdDeposit, CmdWithdraw:
		var temp struct {
			baseCmd
			amountCmd
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, err
		}
		if identifier.Command == CmdDeposit {
			return Deposit{baseCmd: temp.baseCmd, Amount: temp.AmountMoney()}, nil
		}
		return Withdraw{baseCmd: temp.baseCmd, Amount: temp.AmountMoney()}, nil

	default:
		return nil, fmt.Errorf("unknown command %q", identifier.Command)
	}
}

// EncodeTransaction appends a single transaction as one JSONL line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	b, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("could not encode transaction: %w", err)
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

// EncodeLedger writes the ledger in canonical JSONL form: one transaction per
// line, chronological order, stable field order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for i, tx := range ledger.Transactions() {
		b, err := json.Marshal(tx)
		if err != nil {
			return fmt.Errorf("could not encode transaction #%d: %w", i, err)
		}
		if _, err := w.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}
