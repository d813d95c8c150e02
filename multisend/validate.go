package multisend

import (
	"github.com/nspcc-dev/multisend/coin"
	"github.com/nspcc-dev/multisend/token"
)

// validateTx checks the transaction against the collected per-denom flows:
// structural balance first, then denom definitions, then sender solvency.
// The first violation found is returned; iteration is sorted, so the same
// inputs always report the same error.
func validateTx(balances map[string]coin.Balance, reg token.Registry, flows map[string]*denomFlow) error {
	denoms := sortedKeys(flows)

	for _, denom := range denoms {
		f := flows[denom]
		if f.inputSum.Cmp(f.outputSum) != 0 {
			return AmountMismatchError{Denom: denom}
		}
	}

	for _, denom := range denoms {
		if _, ok := reg.Get(denom); !ok {
			return UnknownDenomError{Denom: denom}
		}
	}

	// Solvency is checked per (address, denom) against the aggregate input
	// of that address, inflated by the fees on that aggregate amount. The
	// proportional redistribution of the next stage may charge less, this
	// check is deliberately the conservative one.
	for _, denom := range denoms {
		f := flows[denom]
		def, _ := reg.Get(denom)

		for _, addr := range sortedKeys(f.inputs) {
			bal, ok := balances[addr]
			if !ok {
				return AddressNotFoundError{Address: addr}
			}

			required := f.inputs[addr]
			if addr != def.Issuer {
				required = def.AmountWithFees(required)
			}
			if bal.AmountOf(denom).Cmp(required) < 0 {
				return InsufficientBalanceError{Address: addr, Denom: denom}
			}
		}
	}

	return nil
}
