package multisend_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/nspcc-dev/multisend/coin"
	"github.com/nspcc-dev/multisend/internal/testutil"
	"github.com/nspcc-dev/multisend/multisend"
	"github.com/nspcc-dev/multisend/token"
	"github.com/stretchr/testify/require"
)

// exactFee returns base * rate as an exact rational, rate given as a
// decimal string.
func exactFee(t testing.TB, base int64, rateS string) *big.Rat {
	r, ok := new(big.Rat).SetString(rateS)
	require.True(t, ok)
	return r.Mul(r, new(big.Rat).SetInt64(base))
}

// ceilRat returns the smallest integer not less than r.
func ceilRat(r *big.Rat) *big.Int {
	quo, rem := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	if rem.Sign() != 0 {
		quo.Add(quo, big.NewInt(1))
	}
	return quo
}

func TestFeeSharesRoundUpIndividually(t *testing.T) {
	const rateS = "0.3"
	contributions := []int64{7, 13, 29, 51} // sums to 100

	defs := []token.DenomDefinition{{
		Denom:    "core",
		Issuer:   "issuer",
		BurnRate: rate(t, rateS),
	}}

	var (
		balances []coin.Balance
		inputs   []coin.Balance
		total    int64
	)
	senders := testutil.RandomAddresses(len(contributions))
	for i, a := range contributions {
		balances = append(balances, balance(senders[i], coin.New("core", 10*a)))
		inputs = append(inputs, balance(senders[i], coin.New("core", a)))
		total += a
	}
	tx := multisend.Tx{
		Inputs:  inputs,
		Outputs: []coin.Balance{balance(testutil.RandomAddress(), coin.New("core", total))},
	}

	res, err := multisend.ComputeBalanceChanges(balances, defs, tx)
	require.NoError(t, err)
	m := changes(t, res)

	sumShares := new(big.Int)
	for i, a := range contributions {
		share := -m[senders[i]]["core"] - a
		sumShares.Add(sumShares, big.NewInt(share))

		// each share is the ceiling of its exact proportional value and
		// within one unit of it
		exact := exactFee(t, a, rateS) // fee base equals the input sum here
		require.Equal(t, ceilRat(exact).Int64(), share, "sender %d", i)
		require.LessOrEqual(t, new(big.Rat).SetInt64(share).Cmp(new(big.Rat).Add(exact, new(big.Rat).SetInt64(1))), 0)
	}

	// the redistributed total never undershoots the exact aggregate fee
	exactTotal := exactFee(t, total, rateS)
	require.GreaterOrEqual(t, new(big.Rat).SetInt(sumShares).Cmp(exactTotal), 0)
}

func TestConservation(t *testing.T) {
	const (
		burnRate       = "0.25"
		commissionRate = "0.37"
	)

	defs := []token.DenomDefinition{
		{Denom: "burny", Issuer: "burny-issuer", BurnRate: rate(t, burnRate)},
		{Denom: "commy", Issuer: "commy-issuer", CommissionRate: rate(t, commissionRate)},
	}

	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		nSenders := 1 + rng.Intn(4)
		nRecipients := 1 + rng.Intn(4)
		senders := testutil.RandomAddresses(nSenders)
		recipients := testutil.RandomAddresses(nRecipients)

		var balances, inputs []coin.Balance
		totals := map[string]int64{}
		for _, s := range senders {
			in := balance(s)
			var bal []coin.Coin
			for _, denom := range []string{"burny", "commy"} {
				a := 1 + rng.Int63n(1_000_000)
				totals[denom] += a
				in.Coins = append(in.Coins, coin.New(denom, a))
				bal = append(bal, coin.New(denom, 2*a)) // covers amount plus any fee
			}
			inputs = append(inputs, in)
			balances = append(balances, balance(s, bal...))
		}

		// split each denom's total over the recipients, remainder to the
		// last one, so the transaction is structurally balanced
		var outputs []coin.Balance
		for _, denom := range []string{"burny", "commy"} {
			left := totals[denom]
			for i, r := range recipients {
				a := left / int64(nRecipients-i)
				if i == nRecipients-1 {
					a = left
				}
				left -= a
				outputs = append(outputs, balance(r, coin.New(denom, a)))
			}
		}

		res, err := multisend.ComputeBalanceChanges(balances, defs, multisend.Tx{Inputs: inputs, Outputs: outputs})
		require.NoError(t, err)

		net := map[string]*big.Int{"burny": new(big.Int), "commy": new(big.Int)}
		for _, b := range res {
			for _, c := range b.Coins {
				net[c.Denom].Add(net[c.Denom], c.Amount)
			}
		}

		// commission only moves value to the issuer, the denom nets to zero
		require.Zero(t, net["commy"].Sign(), "round %d", round)

		// burn drains the denom by at least the exact aggregate fee and by
		// at most one extra unit per contributing sender
		burned := new(big.Int).Neg(net["burny"])
		exact := exactFee(t, totals["burny"], burnRate)
		require.GreaterOrEqual(t, new(big.Rat).SetInt(burned).Cmp(exact), 0, "round %d", round)
		slack := new(big.Rat).Add(exact, new(big.Rat).SetInt64(int64(nSenders)))
		require.LessOrEqual(t, new(big.Rat).SetInt(burned).Cmp(slack), 0, "round %d", round)
	}
}
