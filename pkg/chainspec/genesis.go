// Package chainspec assembles block-zero state for the development and
// local-testnet network profiles.
package chainspec

import (
	"fmt"

	"github.com/irenemae27/substrate-warmup/pkg/keys"
	"github.com/irenemae27/substrate-warmup/pkg/runtime"
)

// EndowedBalance is the uniform starting balance handed to every endowed
// account. Large enough to be effectively unbounded in a test network.
const EndowedBalance uint64 = 1 << 60

// GenesisConfig is the complete block-zero state handed to the chain
// initializer. It is assembled once per request and never mutated.
type GenesisConfig struct {
	System   SystemConfig   `json:"system"`
	Aura     AuraConfig     `json:"aura"`
	Indices  IndicesConfig  `json:"indices"`
	Balances BalancesConfig `json:"balances"`
	Sudo     SudoConfig     `json:"sudo"`
}

// SystemConfig carries the compiled runtime program.
type SystemConfig struct {
	Code []byte `json:"code"`
}

// AuraConfig lists the initial consensus authorities. Order is meaningful
// downstream (slot assignment) and is preserved exactly as supplied.
type AuraConfig struct {
	Authorities []keys.AuthorityID `json:"authorities"`
}

// IndicesConfig enumerates the accounts eligible for short index aliases.
type IndicesConfig struct {
	IDs []keys.AccountID `json:"ids"`
}

// BalancesConfig holds the initial endowments. No vesting is configured.
type BalancesConfig struct {
	Balances []BalanceEntry `json:"balances"`
}

// BalanceEntry is one account's starting balance.
type BalanceEntry struct {
	Account keys.AccountID `json:"account"`
	Balance uint64         `json:"balance"`
}

// SudoConfig records the administrative key.
type SudoConfig struct {
	Key keys.AccountID `json:"key"`
}

// TestnetGenesis assembles a genesis configuration from derived identities.
//
// The authority list is recorded order-preserved and undeduplicated; every
// endowed account is registered in the index table and given EndowedBalance.
// The root key must be one of the endowed accounts — profile label lists are
// compiled-in constants, so a violation here is a programming error and
// aborts construction.
func TestnetGenesis(authorities []keys.AuthorityID, endowed []keys.AccountID, root keys.AccountID) (*GenesisConfig, error) {
	endowedRoot := false
	for _, acct := range endowed {
		if acct == root {
			endowedRoot = true
			break
		}
	}
	if !endowedRoot {
		return nil, fmt.Errorf("sudo key %s is not an endowed account", root)
	}

	balances := make([]BalanceEntry, len(endowed))
	for i, acct := range endowed {
		balances[i] = BalanceEntry{Account: acct, Balance: EndowedBalance}
	}

	return &GenesisConfig{
		System:   SystemConfig{Code: runtime.Binary},
		Aura:     AuraConfig{Authorities: authorities},
		Indices:  IndicesConfig{IDs: endowed},
		Balances: BalancesConfig{Balances: balances},
		Sudo:     SudoConfig{Key: root},
	}, nil
}
