package multisend

import "fmt"

// AmountMismatchError means input and output totals of a denom differ, so
// the transaction is not structurally balanced.
type AmountMismatchError struct {
	Denom string
}

func (e AmountMismatchError) Error() string {
	return fmt.Sprintf("input and output amounts mismatch for denom '%s'", e.Denom)
}

// AddressNotFoundError means a transaction input refers to an address with
// no record in the original balances.
type AddressNotFoundError struct {
	Address string
}

func (e AddressNotFoundError) Error() string {
	return fmt.Sprintf("address '%s' not found in original balances", e.Address)
}

// InsufficientBalanceError means a sender's balance does not cover its
// requested input amount plus the fees charged on it.
type InsufficientBalanceError struct {
	Address string
	Denom   string
}

func (e InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance of denom '%s' on address '%s'", e.Denom, e.Address)
}

// UnknownDenomError means the transaction refers to a denom that has no
// definition. This is a data error on the caller side, fee rates are never
// silently defaulted.
type UnknownDenomError struct {
	Denom string
}

func (e UnknownDenomError) Error() string {
	return fmt.Sprintf("unknown denom '%s'", e.Denom)
}
