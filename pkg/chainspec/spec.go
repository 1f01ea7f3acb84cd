package chainspec

import (
	"encoding/json"
	"fmt"

	"github.com/irenemae27/substrate-warmup/pkg/keys"
)

// ChainSpec names a network profile and knows how to build its genesis.
// The genesis constructor runs on every Genesis() call, so each request
// independently re-derives all identities.
type ChainSpec struct {
	Name      string   `json:"name"`
	ID        string   `json:"id"`
	BootNodes []string `json:"bootNodes"`

	buildGenesis func() (*GenesisConfig, error)
}

// FromGenesis wires a display name, machine id, genesis constructor and
// boot-node list into a ChainSpec.
func FromGenesis(name, id string, build func() (*GenesisConfig, error), bootNodes []string) *ChainSpec {
	return &ChainSpec{
		Name:         name,
		ID:           id,
		BootNodes:    bootNodes,
		buildGenesis: build,
	}
}

// Genesis constructs the profile's block-zero state. Any derivation failure
// aborts construction; there is no partial result.
func (s *ChainSpec) Genesis() (*GenesisConfig, error) {
	return s.buildGenesis()
}

// ToJSON renders the spec, genesis included, for handoff or inspection.
func (s *ChainSpec) ToJSON() ([]byte, error) {
	genesis, err := s.Genesis()
	if err != nil {
		return nil, err
	}

	return json.MarshalIndent(&struct {
		Name      string         `json:"name"`
		ID        string         `json:"id"`
		BootNodes []string       `json:"bootNodes"`
		Genesis   *GenesisConfig `json:"genesis"`
	}{
		Name:      s.Name,
		ID:        s.ID,
		BootNodes: s.BootNodes,
		Genesis:   genesis,
	}, "", "\t")
}

// Dev is the single-participant development profile: Alice produces blocks,
// holds the only endowed account and carries the sudo key.
func Dev() *ChainSpec {
	return FromGenesis(
		"Development",
		"dev",
		func() (*GenesisConfig, error) {
			return profileGenesis(
				[]string{"Alice"},
				[]string{"Alice"},
				"Alice",
			)
		},
		[]string{},
	)
}

// LocalTestnet is the multi-participant profile: Alice and Bob produce
// blocks, six well-known accounts are endowed, Alice holds the sudo key.
func LocalTestnet() *ChainSpec {
	return FromGenesis(
		"Local Testnet",
		"local_testnet",
		func() (*GenesisConfig, error) {
			return profileGenesis(
				[]string{"Alice", "Bob"},
				[]string{"Alice", "Bob", "Charlie", "Dave", "Eve", "Ferdie"},
				"Alice",
			)
		},
		[]string{},
	)
}

// Get resolves a profile id to its ChainSpec. "local" is accepted as a
// shorthand for "local_testnet".
func Get(id string) (*ChainSpec, error) {
	switch id {
	case "dev":
		return Dev(), nil
	case "local", "local_testnet":
		return LocalTestnet(), nil
	default:
		return nil, fmt.Errorf("unknown chain profile %q (want dev or local_testnet)", id)
	}
}

// profileGenesis derives every identity named in the label lists and hands
// them to the assembler.
func profileGenesis(authorityLabels, accountLabels []string, rootLabel string) (*GenesisConfig, error) {
	authorities := make([]keys.AuthorityID, len(authorityLabels))
	for i, label := range authorityLabels {
		key, err := keys.AuthorityKey(label)
		if err != nil {
			return nil, err
		}
		authorities[i] = key
	}

	endowed := make([]keys.AccountID, len(accountLabels))
	for i, label := range accountLabels {
		key, err := keys.AccountKey(label)
		if err != nil {
			return nil, err
		}
		endowed[i] = key
	}

	root, err := keys.AccountKey(rootLabel)
	if err != nil {
		return nil, err
	}

	return TestnetGenesis(authorities, endowed, root)
}
