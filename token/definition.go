package token

import (
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
)

// rateUnit is the raw fixedn.Fixed8 value of 1.0.
const rateUnit = 100_000_000

// DenomDefinition holds the transfer fee attributes of a single denom.
// A definition is immutable for the duration of a settlement computation.
type DenomDefinition struct {
	// Denom is the unique identifier of the token, e.g. 'core' or 'usdt'.
	Denom string `json:"denom"`
	// Issuer is the address that created the token. Transfers sent by or
	// received into the issuer do not contribute to the aggregate fee base.
	Issuer string `json:"issuer"`
	// BurnRate of the transferred value is destroyed on every transfer
	// made by a non-issuer sender.
	BurnRate fixedn.Fixed8 `json:"burn_rate"`
	// CommissionRate of the transferred value is credited to Issuer on
	// every transfer made by a non-issuer sender.
	CommissionRate fixedn.Fixed8 `json:"commission_rate"`
}

// Validate checks that the definition is complete and both rates are
// within [0, 1].
func (d DenomDefinition) Validate() error {
	switch {
	case d.Denom == "":
		return fmt.Errorf("missing denom")
	case d.Issuer == "":
		return fmt.Errorf("missing issuer of denom '%s'", d.Denom)
	case d.BurnRate < 0 || d.BurnRate > rateUnit:
		return fmt.Errorf("burn rate %s of denom '%s' is out of [0, 1]", d.BurnRate, d.Denom)
	case d.CommissionRate < 0 || d.CommissionRate > rateUnit:
		return fmt.Errorf("commission rate %s of denom '%s' is out of [0, 1]", d.CommissionRate, d.Denom)
	}
	return nil
}

// BurnAmount returns the burn fee charged on the given individual transfer
// amount, rounded up.
func (d DenomDefinition) BurnAmount(amount *big.Int) *big.Int {
	return d.BurnShare(amount, one, one)
}

// CommissionAmount returns the issuer commission charged on the given
// individual transfer amount, rounded up.
func (d DenomDefinition) CommissionAmount(amount *big.Int) *big.Int {
	return d.CommissionShare(amount, one, one)
}

// AmountWithFees returns amount inflated by its individual burn and
// commission fees. This is the amount a non-issuer sender must hold to
// transfer the given amount.
func (d DenomDefinition) AmountWithFees(amount *big.Int) *big.Int {
	res := new(big.Int).Set(amount)
	res.Add(res, d.BurnAmount(amount))
	return res.Add(res, d.CommissionAmount(amount))
}

// BurnShare returns one contributor's portion of the aggregate burn charged
// on base, i.e. ceil(base * BurnRate * contribution / total). The ceiling is
// taken once over the exact rational value.
func (d DenomDefinition) BurnShare(base, contribution, total *big.Int) *big.Int {
	return ceilShare(d.BurnRate, base, contribution, total)
}

// CommissionShare is BurnShare for the commission rate.
func (d DenomDefinition) CommissionShare(base, contribution, total *big.Int) *big.Int {
	return ceilShare(d.CommissionRate, base, contribution, total)
}

var one = big.NewInt(1)

// ceilShare computes ceil(base * rate * contribution / total) exactly.
// Zero total yields zero, callers use it for the no-contributors case.
func ceilShare(rate fixedn.Fixed8, base, contribution, total *big.Int) *big.Int {
	if rate == 0 || total.Sign() == 0 || base.Sign() == 0 || contribution.Sign() == 0 {
		return new(big.Int)
	}

	num := new(big.Int).Mul(base, big.NewInt(int64(rate)))
	num.Mul(num, contribution)
	den := new(big.Int).Mul(total, big.NewInt(rateUnit))

	return ceilDiv(num, den)
}

// ceilDiv returns ceil(num/den) for non-negative num and positive den.
func ceilDiv(num, den *big.Int) *big.Int {
	quo, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() != 0 {
		quo.Add(quo, one)
	}
	return quo
}
