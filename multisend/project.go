package multisend

import (
	"math/big"

	"github.com/nspcc-dev/multisend/token"
)

// projectChanges folds the validated transaction and the computed fees into
// the final change set. Inputs are applied per (address, denom) aggregate,
// so a sender split over several input legs is debited its fee share exactly
// once. Outputs are credited verbatim: fees never reduce what a recipient
// receives. Commission shares are credited to the issuer additively, an
// issuer that also sends or receives in the same transaction accumulates
// all of it in one entry.
func projectChanges(tx Tx, reg token.Registry, flows map[string]*denomFlow, fees denomFees) *ChangeSet {
	cs := newChangeSet()

	for denom, f := range flows {
		def, _ := reg.Get(denom)

		for addr, amount := range f.inputs {
			debit := new(big.Int).Set(amount)

			if share, ok := fees[denom][addr]; ok {
				debit.Add(debit, share.burn)
				debit.Add(debit, share.commission)
				if share.commission.Sign() > 0 {
					cs.add(def.Issuer, denom, share.commission)
				}
			}

			cs.sub(addr, denom, debit)
		}
	}

	for _, out := range tx.Outputs {
		for _, c := range out.Coins {
			cs.add(out.Address, c.Denom, c.Amount)
		}
	}

	return cs
}
