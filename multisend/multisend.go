package multisend

import (
	"fmt"

	"github.com/nspcc-dev/multisend/coin"
	"github.com/nspcc-dev/multisend/token"
)

// ComputeBalanceChanges evaluates the transaction against the original
// account balances and denom definitions and returns the resulting non-zero
// balance deltas, sorted by address and denom. Denoms must be unique within
// definitions and addresses unique within originalBalances.
//
// The transaction is accepted or rejected atomically. On rejection the
// returned error identifies the first violated invariant: structural
// imbalance (AmountMismatchError), a reference to an undefined denom
// (UnknownDenomError), a sender with no balance record
// (AddressNotFoundError) or a sender that cannot cover its input plus fees
// (InsufficientBalanceError).
func ComputeBalanceChanges(originalBalances []coin.Balance, definitions []token.DenomDefinition, tx Tx) ([]coin.Balance, error) {
	reg, err := token.NewRegistry(definitions)
	if err != nil {
		return nil, fmt.Errorf("index denom definitions: %w", err)
	}

	balances := make(map[string]coin.Balance, len(originalBalances))
	for _, b := range originalBalances {
		if _, ok := balances[b.Address]; ok {
			return nil, fmt.Errorf("duplicate address '%s' in original balances", b.Address)
		}
		balances[b.Address] = b
	}

	if err := checkLegs(tx); err != nil {
		return nil, err
	}

	flows := collectFlows(tx, reg)
	if err := validateTx(balances, reg, flows); err != nil {
		return nil, err
	}

	return projectChanges(tx, reg, flows, computeFees(reg, flows)).Balances(), nil
}

// checkLegs rejects malformed transaction legs. Amounts of inputs and
// outputs are always non-negative, signs appear only in the result.
func checkLegs(tx Tx) error {
	for _, legs := range [...][]coin.Balance{tx.Inputs, tx.Outputs} {
		for _, leg := range legs {
			if leg.Address == "" {
				return fmt.Errorf("transaction leg with empty address")
			}
			for _, c := range leg.Coins {
				if !c.IsValid() {
					return fmt.Errorf("invalid coin of denom '%s' in leg of '%s'", c.Denom, leg.Address)
				}
			}
		}
	}
	return nil
}
