// Package testutil provides fixture helpers shared by the multisend tests.
package testutil

import (
	"math/rand"

	"github.com/mr-tron/base58"
)

// RandomAddress returns a base58 encoded 20 byte account address.
func RandomAddress() string {
	b := make([]byte, 20)
	rand.Read(b) //nolint:staticcheck // SA1019: rand.Read has been deprecated since Go 1.20
	return base58.Encode(b)
}

// RandomAddresses returns n distinct random addresses.
func RandomAddresses(n int) []string {
	res := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for len(res) < n {
		a := RandomAddress()
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		res = append(res, a)
	}
	return res
}
