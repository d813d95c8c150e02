package coin

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// Coin is an amount of a single denomination. Amount is never nil in a
// well-formed Coin; use New to construct one.
type Coin struct {
	Denom  string
	Amount *big.Int
}

// Balance binds a set of coins to an account address. Denoms are expected
// to be unique within Coins for original balances; transaction legs may
// repeat a denom and are summed up by the callers that aggregate them.
type Balance struct {
	Address string `json:"address"`
	Coins   []Coin `json:"coins"`
}

// New returns a Coin with the given denom and amount.
func New(denom string, amount int64) Coin {
	return Coin{Denom: denom, Amount: big.NewInt(amount)}
}

// NewFromBig returns a Coin wrapping the given amount. The amount is not
// copied, the caller must not modify it afterwards.
func NewFromBig(denom string, amount *big.Int) Coin {
	return Coin{Denom: denom, Amount: amount}
}

// IsValid checks that the coin has a denom and a non-negative amount. Coins
// of transaction legs and original balances must all be valid.
func (c Coin) IsValid() bool {
	return c.Denom != "" && c.Amount != nil && c.Amount.Sign() >= 0
}

type coinJSON struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// MarshalJSON implements the json.Marshaler interface. The amount is encoded
// as a decimal string.
func (c Coin) MarshalJSON() ([]byte, error) {
	amount := "0"
	if c.Amount != nil {
		amount = c.Amount.String()
	}
	return json.Marshal(coinJSON{Denom: c.Denom, Amount: amount})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (c *Coin) UnmarshalJSON(data []byte) error {
	var aux coinJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	amount, ok := new(big.Int).SetString(aux.Amount, 10)
	if !ok {
		return fmt.Errorf("invalid amount %q of denom '%s'", aux.Amount, aux.Denom)
	}

	c.Denom = aux.Denom
	c.Amount = amount
	return nil
}

// AmountOf returns the amount of the given denom held in the balance, zero
// if the denom is missing. The returned value is a fresh copy safe to modify.
func (b Balance) AmountOf(denom string) *big.Int {
	res := new(big.Int)
	for _, c := range b.Coins {
		if c.Denom == denom && c.Amount != nil {
			res.Add(res, c.Amount)
		}
	}
	return res
}
