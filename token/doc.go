/*
Package token describes denominations and their transfer fee rules.

Every denom has exactly one definition: the issuer address plus a burn rate
and an issuer commission rate. Rates are 8-decimal fixed point numbers
(fixedn.Fixed8) in the [0, 1] range, so all fee arithmetic is exact integer
arithmetic and never drifts the way binary floats do. Burnt amounts leave
circulation entirely, commission amounts are credited to the issuer. The
issuer itself transfers its own denom free of both fees.
*/
package token
