/*
Package coin provides the value types shared by all multisend packages.

A Coin is an amount of a single denomination (denom). A Balance binds a list
of coins to an account address. Both types appear in three roles: original
account balances, transaction input/output legs and the resulting balance
changes. Amounts are kept as big integers to cover the full signed 128-bit
range used by settlement amounts; JSON encoding represents them as decimal
strings so that no precision is lost in transport.
*/
package coin
