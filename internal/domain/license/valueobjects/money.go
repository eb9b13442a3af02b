package valueobjects

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// NormalizeCurrency upper-cases code and checks it is a known ISO 4217 currency.
func NormalizeCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", fmt.Errorf("currency is required")
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("invalid currency code %q", code)
	}
	return unit.String(), nil
}

// Money is a decimal amount in a single currency.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney validates the currency. The sign of amount is left to the caller.
func NewMoney(amount decimal.Decimal, code string) (Money, error) {
	cur, err := NormalizeCurrency(code)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: amount, currency: cur}, nil
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Currency() string        { return m.currency }
func (m Money) IsZero() bool            { return m.currency == "" }

func (m Money) String() string {
	return m.currency + " " + m.amount.StringFixed(2)
}

// Amounts holds one total per currency carried by a license.
type Amounts map[string]decimal.Decimal

// NewAmounts starts an Amounts with a single currency.
func NewAmounts(m Money) Amounts {
	return Amounts{m.currency: m.amount}
}

// Get returns the amount carried in cur and whether the currency is present.
func (a Amounts) Get(cur string) (decimal.Decimal, bool) {
	v, ok := a[strings.ToUpper(cur)]
	return v, ok
}

// Add returns a copy with delta added to its currency. The currency must already be carried.
func (a Amounts) Add(delta Money) (Amounts, error) {
	current, ok := a[delta.currency]
	if !ok {
		return nil, fmt.Errorf("license carries no %s amount", delta.currency)
	}
	out := a.Clone()
	out[delta.currency] = current.Add(delta.amount)
	return out, nil
}

// Clone returns an independent copy.
func (a Amounts) Clone() Amounts {
	out := make(Amounts, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Currencies returns the carried currency codes in sorted order.
func (a Amounts) Currencies() []string {
	codes := make([]string, 0, len(a))
	for k := range a {
		codes = append(codes, k)
	}
	sort.Strings(codes)
	return codes
}

// SingleCurrency returns the only currency when exactly one is carried.
func (a Amounts) SingleCurrency() (string, bool) {
	if len(a) != 1 {
		return "", false
	}
	for k := range a {
		return k, true
	}
	return "", false
}

func (a Amounts) String() string {
	parts := make([]string, 0, len(a))
	for _, cur := range a.Currencies() {
		parts = append(parts, cur+" "+a[cur].StringFixed(2))
	}
	return strings.Join(parts, ", ")
}

// Validate checks every code and rejects negative amounts.
func (a Amounts) Validate() error {
	if len(a) == 0 {
		return fmt.Errorf("at least one amount is required")
	}
	for cur, v := range a {
		if _, err := NormalizeCurrency(cur); err != nil {
			return err
		}
		if v.IsNegative() {
			return fmt.Errorf("amount in %s must not be negative", cur)
		}
	}
	return nil
}

// MarshalJSON renders amounts as {"USD":"1500.00"}.
func (a Amounts) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(a))
	for k, v := range a {
		out[k] = v.StringFixed(2)
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts both string and numeric amounts.
func (a *Amounts) UnmarshalJSON(data []byte) error {
	var raw map[string]decimal.Decimal
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid amounts: %w", err)
	}
	out := make(Amounts, len(raw))
	for k, v := range raw {
		out[strings.ToUpper(k)] = v
	}
	*a = out
	return nil
}
