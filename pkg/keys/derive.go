package keys

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	schnorrkel "github.com/ChainSafe/go-schnorrkel"
	bip39 "github.com/cosmos/go-bip39"
	"golang.org/x/crypto/blake2b"
)

// DevPhrase is the well-known public development phrase. It is not a secret:
// its whole purpose is that every deployment derives the same test
// identities from it.
const DevPhrase = "bottom drive obey lake curtain smoke basket hold race lonely fit walk"

// ed25519HDKDTag is the SCALE encoding of the string "Ed25519HDKD", the
// domain separator for hard junctions on the ed25519 side.
var ed25519HDKDTag = append([]byte{0x2c}, []byte("Ed25519HDKD")...)

// AuthorityKey derives the ed25519 consensus key for a participant label.
// The derivation is DevPhrase -> seed -> one hard junction keyed by label.
// Only the public key is returned; the secret half never leaves this call.
func AuthorityKey(label string) (AuthorityID, error) {
	mini, err := devMiniSecret()
	if err != nil {
		return AuthorityID{}, fmt.Errorf("deriving authority key %q: %w", label, err)
	}

	cc, err := chainCode(label)
	if err != nil {
		return AuthorityID{}, fmt.Errorf("deriving authority key %q: %w", label, err)
	}

	// Hard junction: child seed = blake2b-256("Ed25519HDKD" ++ seed ++ cc).
	seed := mini.Encode()
	h := append(append(append([]byte{}, ed25519HDKDTag...), seed[:]...), cc[:]...)
	child := blake2b.Sum256(h)

	priv := ed25519.NewKeyFromSeed(child[:])
	var pub AuthorityID
	copy(pub[:], priv.Public().(ed25519.PublicKey))
	return pub, nil
}

// AccountKey derives the sr25519 account key for a participant label, using
// the Schnorr/Ristretto hard key-derivation function over the same phrase.
// Only the public key is returned.
func AccountKey(label string) (AccountID, error) {
	mini, err := devMiniSecret()
	if err != nil {
		return AccountID{}, fmt.Errorf("deriving account key %q: %w", label, err)
	}

	cc, err := chainCode(label)
	if err != nil {
		return AccountID{}, fmt.Errorf("deriving account key %q: %w", label, err)
	}

	child, _, err := mini.HardDeriveMiniSecretKey(nil, cc)
	if err != nil {
		return AccountID{}, fmt.Errorf("deriving account key %q: %w", label, err)
	}

	return AccountID(child.Public().Encode()), nil
}

var errEmptyLabel = errors.New("derivation label must not be empty")

// devMiniSecret expands DevPhrase into the root mini secret shared by both
// derivation schemes.
func devMiniSecret() (*schnorrkel.MiniSecretKey, error) {
	if !bip39.IsMnemonicValid(DevPhrase) {
		return nil, errors.New("development phrase is not a valid mnemonic")
	}
	return schnorrkel.MiniSecretKeyFromMnemonic(DevPhrase, "")
}

// chainCode turns a junction label into a 32-byte chain code: the
// SCALE-encoded label zero-padded to 32 bytes, or its blake2b-256 hash when
// the encoding is longer than that.
func chainCode(label string) ([32]byte, error) {
	var cc [32]byte
	if label == "" {
		return cc, errEmptyLabel
	}

	enc, err := scaleString(label)
	if err != nil {
		return cc, err
	}
	if len(enc) > len(cc) {
		return blake2b.Sum256(enc), nil
	}
	copy(cc[:], enc)
	return cc, nil
}

// scaleString encodes a string as SCALE: compact length prefix, then bytes.
func scaleString(s string) ([]byte, error) {
	n := len(s)
	switch {
	case n < 1<<6:
		return append([]byte{byte(n << 2)}, s...), nil
	case n < 1<<14:
		v := uint16(n)<<2 | 0b01
		return append([]byte{byte(v), byte(v >> 8)}, s...), nil
	default:
		return nil, fmt.Errorf("junction label of %d bytes is too long", n)
	}
}
