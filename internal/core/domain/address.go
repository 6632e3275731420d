package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Address is a case-normalized account identifier. Chain-derived addresses
// are always 0x + 40 lowercase hex chars; seed addresses are only trimmed
// and lowercased.
type Address string

// NormalizeAddress trims and lowercases a raw address string.
func NormalizeAddress(raw string) Address {
	return Address(strings.ToLower(strings.TrimSpace(raw)))
}

// AddressFrom converts a go-ethereum address into its ledger key.
func AddressFrom(a common.Address) Address {
	return Address(strings.ToLower(a.Hex()))
}

// AddressFromTopic extracts the address packed into an indexed event topic.
func AddressFromTopic(topic common.Hash) Address {
	return AddressFrom(common.BytesToAddress(topic.Bytes()))
}

func (a Address) String() string {
	return string(a)
}
