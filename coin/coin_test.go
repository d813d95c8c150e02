package coin_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/nspcc-dev/multisend/coin"
	"github.com/stretchr/testify/require"
)

func TestCoinJSON(t *testing.T) {
	// amounts can exceed both int64 and the float64 mantissa
	const big128 = "170141183460469231731687303715884105727"

	amount, ok := new(big.Int).SetString(big128, 10)
	require.True(t, ok)

	data, err := json.Marshal(coin.NewFromBig("core", amount))
	require.NoError(t, err)
	require.JSONEq(t, `{"denom":"core","amount":"`+big128+`"}`, string(data))

	var c coin.Coin
	require.NoError(t, json.Unmarshal(data, &c))
	require.Equal(t, "core", c.Denom)
	require.Zero(t, c.Amount.Cmp(amount))

	t.Run("malformed amount", func(t *testing.T) {
		var c coin.Coin
		require.Error(t, json.Unmarshal([]byte(`{"denom":"core","amount":"12.5"}`), &c))
	})
}

func TestBalanceAmountOf(t *testing.T) {
	b := coin.Balance{
		Address: "addr1",
		Coins: []coin.Coin{
			coin.New("core", 100),
			coin.New("gas", 7),
			coin.New("core", 20), // duplicate denoms are summed
		},
	}

	require.Equal(t, int64(120), b.AmountOf("core").Int64())
	require.Equal(t, int64(7), b.AmountOf("gas").Int64())
	require.Equal(t, int64(0), b.AmountOf("usdt").Int64())

	// returned amount is a copy
	b.AmountOf("gas").SetInt64(42)
	require.Equal(t, int64(7), b.AmountOf("gas").Int64())
}

func TestCoinIsValid(t *testing.T) {
	require.True(t, coin.New("core", 0).IsValid())
	require.False(t, coin.New("", 1).IsValid())
	require.False(t, coin.Coin{Denom: "core"}.IsValid())
	require.False(t, coin.New("core", -1).IsValid())
}
