package keys

import (
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

// ss58Prefix is the generic substrate network identifier byte.
const ss58Prefix = 42

var ss58Preimage = []byte("SS58PRE")

// ss58Address renders a 32-byte public key in SS58 form: network prefix,
// key bytes, then the first two bytes of a blake2b-512 checksum.
func ss58Address(pub []byte) string {
	payload := make([]byte, 0, 1+len(pub)+2)
	payload = append(payload, ss58Prefix)
	payload = append(payload, pub...)

	sum := blake2b.Sum512(append(append([]byte{}, ss58Preimage...), payload...))
	payload = append(payload, sum[0], sum[1])

	return base58.Encode(payload)
}
