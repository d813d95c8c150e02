/*
Package multisend computes the balance changes of a batched multi-party
transfer transaction.

A transaction moves several denoms from several sender accounts to several
recipient accounts at once. Per denom the input and output totals must match
exactly. Denoms may carry a burn rate and an issuer commission rate (see the
token package); both fees are charged on top of the transferred amounts, on
the sending side only, and only on the part of the flow that neither
originates from nor terminates at the denom's issuer.

ComputeBalanceChanges runs three stages in order: validation (structural
balance and sender solvency), fee calculation (aggregate fee base capped by
the non-issuer flow, distributed proportionally across the non-issuer
senders with per-sender upward rounding) and projection (folding inputs,
fees and outputs into signed per-account deltas, dropping zero entries).
The computation is a pure function of its inputs: it performs no I/O, keeps
no state between calls and either returns the complete change set or
rejects the transaction as a whole.
*/
package multisend
