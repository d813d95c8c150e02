package multisend

import (
	"math/big"

	"github.com/nspcc-dev/multisend/coin"
)

// ChangeSet accumulates signed balance deltas per address and denom.
// Negative means deduction, positive means credit. Zero entries are dropped
// when the set is snapshotted into balances.
type ChangeSet struct {
	deltas map[string]map[string]*big.Int
}

func newChangeSet() *ChangeSet {
	return &ChangeSet{deltas: make(map[string]map[string]*big.Int)}
}

func (cs *ChangeSet) delta(address, denom string) *big.Int {
	coins, ok := cs.deltas[address]
	if !ok {
		coins = make(map[string]*big.Int)
		cs.deltas[address] = coins
	}

	d, ok := coins[denom]
	if !ok {
		d = new(big.Int)
		coins[denom] = d
	}
	return d
}

// add credits the address with the amount of the denom.
func (cs *ChangeSet) add(address, denom string, amount *big.Int) {
	d := cs.delta(address, denom)
	d.Add(d, amount)
}

// sub debits the address by the amount of the denom.
func (cs *ChangeSet) sub(address, denom string, amount *big.Int) {
	d := cs.delta(address, denom)
	d.Sub(d, amount)
}

// AmountOf returns the accumulated delta of the denom on the address, zero
// if there is none. The returned value is a fresh copy.
func (cs *ChangeSet) AmountOf(address, denom string) *big.Int {
	res := new(big.Int)
	if coins, ok := cs.deltas[address]; ok {
		if d, ok := coins[denom]; ok {
			res.Set(d)
		}
	}
	return res
}

// Balances snapshots the set into a list of per-address balances sorted by
// address and denom. Zero deltas are pruned, addresses left without coins
// are omitted entirely.
func (cs *ChangeSet) Balances() []coin.Balance {
	res := make([]coin.Balance, 0, len(cs.deltas))

	for _, address := range sortedKeys(cs.deltas) {
		coins := cs.deltas[address]

		var out []coin.Coin
		for _, denom := range sortedKeys(coins) {
			if d := coins[denom]; d.Sign() != 0 {
				out = append(out, coin.NewFromBig(denom, new(big.Int).Set(d)))
			}
		}
		if len(out) > 0 {
			res = append(res, coin.Balance{Address: address, Coins: out})
		}
	}

	return res
}
