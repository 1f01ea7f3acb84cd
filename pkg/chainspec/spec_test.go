package chainspec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irenemae27/substrate-warmup/pkg/keys"
)

func TestDevProfile(t *testing.T) {
	spec := Dev()
	assert.Equal(t, "Development", spec.Name)
	assert.Equal(t, "dev", spec.ID)
	assert.Empty(t, spec.BootNodes)

	genesis, err := spec.Genesis()
	require.NoError(t, err)

	require.Len(t, genesis.Aura.Authorities, 1)
	assert.Equal(t, mustAuthority(t, "Alice"), genesis.Aura.Authorities[0])

	require.Len(t, genesis.Indices.IDs, 1)
	alice := mustAccount(t, "Alice")
	assert.Equal(t, alice, genesis.Indices.IDs[0])
	assert.Equal(t, alice, genesis.Sudo.Key)

	require.Len(t, genesis.Balances.Balances, 1)
	assert.Equal(t, alice, genesis.Balances.Balances[0].Account)
	assert.Equal(t, EndowedBalance, genesis.Balances.Balances[0].Balance)
}

func TestLocalTestnetProfile(t *testing.T) {
	spec := LocalTestnet()
	assert.Equal(t, "Local Testnet", spec.Name)
	assert.Equal(t, "local_testnet", spec.ID)
	assert.Empty(t, spec.BootNodes)

	genesis, err := spec.Genesis()
	require.NoError(t, err)

	require.Len(t, genesis.Aura.Authorities, 2)
	assert.Equal(t, mustAuthority(t, "Alice"), genesis.Aura.Authorities[0])
	assert.Equal(t, mustAuthority(t, "Bob"), genesis.Aura.Authorities[1])

	require.Len(t, genesis.Indices.IDs, 6)
	seen := make(map[keys.AccountID]bool)
	for _, id := range genesis.Indices.IDs {
		assert.False(t, seen[id], "endowed account duplicated")
		seen[id] = true
	}

	alice := mustAccount(t, "Alice")
	assert.True(t, seen[alice], "Alice must be endowed")
	assert.Equal(t, alice, genesis.Sudo.Key)

	require.Len(t, genesis.Balances.Balances, 6)
	for _, entry := range genesis.Balances.Balances {
		assert.Equal(t, EndowedBalance, entry.Balance)
	}
}

func TestGenesisRebuildsIdentically(t *testing.T) {
	spec := LocalTestnet()

	first, err := spec.Genesis()
	require.NoError(t, err)
	second, err := spec.Genesis()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		wantID    string
		expectErr bool
	}{
		{"dev", "dev", "dev", false},
		{"local shorthand", "local", "local_testnet", false},
		{"local testnet", "local_testnet", "local_testnet", false},
		{"unknown", "mainnet", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Get(tt.id)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, spec.ID)
		})
	}
}

func TestToJSON(t *testing.T) {
	data, err := Dev().ToJSON()
	require.NoError(t, err)

	var decoded struct {
		Name      string   `json:"name"`
		ID        string   `json:"id"`
		BootNodes []string `json:"bootNodes"`
		Genesis   struct {
			Aura struct {
				Authorities []string `json:"authorities"`
			} `json:"aura"`
			Sudo struct {
				Key string `json:"key"`
			} `json:"sudo"`
		} `json:"genesis"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "Development", decoded.Name)
	assert.Equal(t, "dev", decoded.ID)
	assert.Len(t, decoded.Genesis.Aura.Authorities, 1)
	assert.Contains(t, decoded.Genesis.Sudo.Key, "0x")
}
