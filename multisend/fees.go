package multisend

import (
	"math/big"

	"github.com/nspcc-dev/multisend/token"
)

// feeShare is one sender's portion of a denom's aggregate burn and
// commission.
type feeShare struct {
	burn       *big.Int
	commission *big.Int
}

// denomFees maps denom to sender address to that sender's fee shares.
// Issuer senders and denoms with no non-issuer inputs have no entries.
type denomFees map[string]map[string]feeShare

// computeFees distributes each denom's aggregate fees across its non-issuer
// senders. The fee base is min(non-issuer input sum, non-issuer output sum):
// flows sent by the issuer or absorbed by the issuer carry no fee. Every
// sender's share is ceil(base * rate * aggregateInput / nonIssuerInputSum),
// rounded up independently per sender, so the charged total may exceed the
// exact base * rate by up to one unit per sender.
func computeFees(reg token.Registry, flows map[string]*denomFlow) denomFees {
	fees := make(denomFees)

	for denom, f := range flows {
		if f.nonIssuerInputSum.Sign() == 0 {
			continue
		}

		def, ok := reg.Get(denom)
		if !ok {
			continue
		}

		base := f.nonIssuerInputSum
		if f.nonIssuerOutputSum.Cmp(base) < 0 {
			base = f.nonIssuerOutputSum
		}

		shares := make(map[string]feeShare, len(f.inputs))
		for addr, amount := range f.inputs {
			if addr == def.Issuer {
				continue
			}
			shares[addr] = feeShare{
				burn:       def.BurnShare(base, amount, f.nonIssuerInputSum),
				commission: def.CommissionShare(base, amount, f.nonIssuerInputSum),
			}
		}
		fees[denom] = shares
	}

	return fees
}
