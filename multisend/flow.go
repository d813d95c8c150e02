package multisend

import (
	"math/big"
	"sort"

	"github.com/nspcc-dev/multisend/coin"
	"github.com/nspcc-dev/multisend/token"
)

// Tx is a multi-send transaction: a batch of input legs (amounts to take
// from sender accounts) and output legs (amounts to credit to recipient
// accounts). Per denom the input and output totals must match.
type Tx struct {
	Inputs  []coin.Balance `json:"inputs"`
	Outputs []coin.Balance `json:"outputs"`
}

// denomFlow aggregates everything later stages need to know about one denom
// of a transaction. All aggregates are produced in a single pass over the
// legs, so the structural check, the solvency check and the fee base always
// see consistent numbers.
type denomFlow struct {
	// total input and output amounts, for the structural check.
	inputSum  *big.Int
	outputSum *big.Int

	// the same totals excluding legs sent by or credited to the issuer,
	// these bound the fee base.
	nonIssuerInputSum  *big.Int
	nonIssuerOutputSum *big.Int

	// aggregate input amount per sender address. An address appearing in
	// several input legs is folded into one entry.
	inputs map[string]*big.Int
}

func newDenomFlow() *denomFlow {
	return &denomFlow{
		inputSum:           new(big.Int),
		outputSum:          new(big.Int),
		nonIssuerInputSum:  new(big.Int),
		nonIssuerOutputSum: new(big.Int),
		inputs:             make(map[string]*big.Int),
	}
}

// collectFlows folds the transaction legs into per-denom aggregates. Denoms
// missing from the registry still get totals collected so that the
// structural check can run before the unknown denom check reports them.
func collectFlows(tx Tx, reg token.Registry) map[string]*denomFlow {
	flows := make(map[string]*denomFlow)

	flowOf := func(denom string) *denomFlow {
		f, ok := flows[denom]
		if !ok {
			f = newDenomFlow()
			flows[denom] = f
		}
		return f
	}

	for _, in := range tx.Inputs {
		for _, c := range in.Coins {
			f := flowOf(c.Denom)
			f.inputSum.Add(f.inputSum, c.Amount)
			if !reg.IsIssuer(c.Denom, in.Address) {
				f.nonIssuerInputSum.Add(f.nonIssuerInputSum, c.Amount)
			}

			agg, ok := f.inputs[in.Address]
			if !ok {
				agg = new(big.Int)
				f.inputs[in.Address] = agg
			}
			agg.Add(agg, c.Amount)
		}
	}

	for _, out := range tx.Outputs {
		for _, c := range out.Coins {
			f := flowOf(c.Denom)
			f.outputSum.Add(f.outputSum, c.Amount)
			if !reg.IsIssuer(c.Denom, out.Address) {
				f.nonIssuerOutputSum.Add(f.nonIssuerOutputSum, c.Amount)
			}
		}
	}

	return flows
}

// sortedKeys returns map keys in ascending order for reproducible iteration
// within a single computation.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
