// Package keys derives the deterministic development identities used to
// populate test-network genesis state. All identities come from a single
// public development phrase plus one hard junction per participant label,
// so every machine derives the same keys for "Alice", "Bob" and friends.
package keys

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// AuthorityID is an ed25519 public key authorising block production.
type AuthorityID [32]byte

// AccountID is an sr25519 public key owning a balance.
//
// AuthorityID and AccountID use different curves and different derivation
// namespaces; the same label produces unrelated keys for the two kinds.
type AccountID [32]byte

// Bytes returns the raw public key.
func (a AuthorityID) Bytes() []byte { return a[:] }

// Bytes returns the raw public key.
func (a AccountID) Bytes() []byte { return a[:] }

// String renders the key as an SS58 address.
func (a AuthorityID) String() string { return ss58Address(a[:]) }

// String renders the key as an SS58 address.
func (a AccountID) String() string { return ss58Address(a[:]) }

// MarshalJSON encodes the key as 0x-prefixed hex.
func (a AuthorityID) MarshalJSON() ([]byte, error) {
	return json.Marshal("0x" + hex.EncodeToString(a[:]))
}

// UnmarshalJSON decodes a 0x-prefixed hex key.
func (a *AuthorityID) UnmarshalJSON(data []byte) error {
	return unmarshalKey(data, a[:])
}

// MarshalJSON encodes the key as 0x-prefixed hex.
func (a AccountID) MarshalJSON() ([]byte, error) {
	return json.Marshal("0x" + hex.EncodeToString(a[:]))
}

// UnmarshalJSON decodes a 0x-prefixed hex key.
func (a *AccountID) UnmarshalJSON(data []byte) error {
	return unmarshalKey(data, a[:])
}

func unmarshalKey(data []byte, dst []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return fmt.Errorf("invalid key encoding %q: %w", s, err)
	}
	if len(raw) != len(dst) {
		return fmt.Errorf("invalid key length %d, want %d", len(raw), len(dst))
	}
	copy(dst, raw)
	return nil
}
