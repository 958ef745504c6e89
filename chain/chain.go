package chain

import (
	"fmt"
	"strconv"
	"strings"
)

// Chain identifies a blockchain network participating in the cross-chain
// messaging protocol. On the wire it is a single unsigned 16-bit integer;
// every value in the uint16 domain is a valid Chain, so decoding never
// fails and unrecognized values survive a round trip untouched. Byte order
// is owned by whatever binary framing embeds the value, not by this type.
type Chain uint16

const (
	// ChainAny (0) means a message is addressed to any destination chain.
	ChainAny Chain = 0

	// ChainSolana (1) is the Solana network.
	ChainSolana Chain = 1
)

// FromUint16 returns the Chain identified by n. Total: every value maps to
// exactly one Chain and Uint16 gives the value back.
func FromUint16(n uint16) Chain {
	return Chain(n)
}

// Uint16 returns the numeric wire value of the chain.
func (c Chain) Uint16() uint16 {
	return uint16(c)
}

func (c Chain) String() string {
	switch c {
	case ChainAny:
		return "Any"
	case ChainSolana:
		return "Solana"
	default:
		return fmt.Sprintf("Unknown(%d)", uint16(c))
	}
}

// InvalidChainError is returned by ParseChain for input that is not a
// recognized chain name or a well-formed "Unknown(<id>)" form. It carries
// the offending input verbatim.
type InvalidChainError struct {
	Input string
}

func (e *InvalidChainError) Error() string {
	return "invalid chain: " + e.Input
}

// ParseChain is the inverse of String. Chain names are matched
// case-insensitively, and the id inside "Unknown(...)" must be a decimal
// integer fitting in 16 bits. Reserved ids are normalized, so
// "Unknown(1)" parses to ChainSolana.
func ParseChain(s string) (Chain, error) {
	if strings.EqualFold(s, "any") {
		return ChainAny, nil
	}
	if strings.EqualFold(s, "solana") {
		return ChainSolana, nil
	}

	// Split on '(' and ')', keeping empty segments: the id is whatever sits
	// between the first delimiter and the second (or the end of the string).
	i := strings.IndexAny(s, "()")
	if i < 0 || !strings.EqualFold(s[:i], "unknown") {
		return ChainAny, &InvalidChainError{Input: s}
	}
	rest := s[i+1:]
	if j := strings.IndexAny(rest, "()"); j >= 0 {
		rest = rest[:j]
	}
	id, err := strconv.ParseUint(rest, 10, 16)
	if err != nil {
		return ChainAny, &InvalidChainError{Input: s}
	}
	return FromUint16(uint16(id)), nil
}
