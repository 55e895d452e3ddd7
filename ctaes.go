// Package ctaes implements a constant-time, bit-sliced software
// implementation of the AES block cipher (FIPS-197) in its three standard
// key sizes.
//
// The implementation follows Emilia Kasper and Peter Schwabe's
// bit-slicing technique ("Faster and Timing-Attack Resistant AES-GCM"),
// adapted to a single AES state per bit-slice word rather than 8 states
// in parallel, and the Boyar-Peralta depth-16 gate network for the S-box.
// Every primitive operates as fixed-width Boolean logic on the bit-sliced
// state, with no table lookups and no branches on key, plaintext, or
// ciphertext bytes: its running time and memory access pattern depend
// only on the key size.
//
//	[kasper-schwabe]: http://www.iacr.org/archive/ches2009/57470001/57470001.pdf
//	[boyar-peralta]: https://eprint.iacr.org/2011/332.pdf
package ctaes

import (
	"crypto/cipher"
	"fmt"

	"github.com/bitcoin-core/ctaes/internal/bitslice"
)

// BlockSize is the size in bytes of an AES block, for all three key sizes.
const BlockSize = 16

const (
	// KeySize128 is the size in bytes of an AES-128 key.
	KeySize128 = 16
	// KeySize192 is the size in bytes of an AES-192 key.
	KeySize192 = 24
	// KeySize256 is the size in bytes of an AES-256 key.
	KeySize256 = 32
)

const (
	nk128, nr128 = 4, 10
	nk192, nr192 = 6, 12
	nk256, nr256 = 8, 14
)

// New creates a cipher.Block implementing AES with the given key. The key
// argument selects AES-128, AES-192, or AES-256 by length (16, 24, or 32
// bytes); any other length is an error.
func New(key []byte) (cipher.Block, error) {
	switch len(key) {
	case KeySize128:
		return NewAES128(key), nil
	case KeySize192:
		return NewAES192(key), nil
	case KeySize256:
		return NewAES256(key), nil
	default:
		return nil, fmt.Errorf("ctaes: invalid key length %d", len(key))
	}
}

// AES128 is a bit-sliced AES-128 context: a key schedule of 11 round keys,
// produced once by NewAES128 and read-only afterward. The zero value is
// not a valid context.
type AES128 struct {
	rk [nr128 + 1]bitslice.State
}

// NewAES128 initializes an AES-128 context from a 16-byte key. It panics
// if key is not exactly KeySize128 bytes.
func NewAES128(key []byte) *AES128 {
	if len(key) != KeySize128 {
		panic("ctaes: invalid AES-128 key length")
	}
	ctx := new(AES128)
	bitslice.Expand(ctx.rk[:], key, nk128, nr128)
	return ctx
}

// BlockSize returns the AES block size, satisfying cipher.Block.
func (*AES128) BlockSize() int { return BlockSize }

// Encrypt encrypts the 16-byte block in src, writing the result to dst.
// The entire input block is loaded into bit-sliced form before any byte of
// dst is written, so dst and src may overlap in any way, not just exactly
// or not at all.
func (c *AES128) Encrypt(dst, src []byte) {
	_, _ = dst[:BlockSize], src[:BlockSize]
	bitslice.Encrypt(c.rk[:], nr128, dst, src)
}

// Decrypt decrypts the 16-byte block in src, writing the result to dst.
// As with Encrypt, dst and src may overlap in any way.
func (c *AES128) Decrypt(dst, src []byte) {
	_, _ = dst[:BlockSize], src[:BlockSize]
	bitslice.Decrypt(c.rk[:], nr128, dst, src)
}

// AES192 is a bit-sliced AES-192 context: a key schedule of 13 round keys.
type AES192 struct {
	rk [nr192 + 1]bitslice.State
}

// NewAES192 initializes an AES-192 context from a 24-byte key. It panics
// if key is not exactly KeySize192 bytes.
func NewAES192(key []byte) *AES192 {
	if len(key) != KeySize192 {
		panic("ctaes: invalid AES-192 key length")
	}
	ctx := new(AES192)
	bitslice.Expand(ctx.rk[:], key, nk192, nr192)
	return ctx
}

// BlockSize returns the AES block size, satisfying cipher.Block.
func (*AES192) BlockSize() int { return BlockSize }

// Encrypt encrypts the 16-byte block in src, writing the result to dst.
// The entire input block is loaded into bit-sliced form before any byte of
// dst is written, so dst and src may overlap in any way, not just exactly
// or not at all.
func (c *AES192) Encrypt(dst, src []byte) {
	_, _ = dst[:BlockSize], src[:BlockSize]
	bitslice.Encrypt(c.rk[:], nr192, dst, src)
}

// Decrypt decrypts the 16-byte block in src, writing the result to dst.
// As with Encrypt, dst and src may overlap in any way.
func (c *AES192) Decrypt(dst, src []byte) {
	_, _ = dst[:BlockSize], src[:BlockSize]
	bitslice.Decrypt(c.rk[:], nr192, dst, src)
}

// AES256 is a bit-sliced AES-256 context: a key schedule of 15 round keys.
type AES256 struct {
	rk [nr256 + 1]bitslice.State
}

// NewAES256 initializes an AES-256 context from a 32-byte key. It panics
// if key is not exactly KeySize256 bytes.
func NewAES256(key []byte) *AES256 {
	if len(key) != KeySize256 {
		panic("ctaes: invalid AES-256 key length")
	}
	ctx := new(AES256)
	bitslice.Expand(ctx.rk[:], key, nk256, nr256)
	return ctx
}

// BlockSize returns the AES block size, satisfying cipher.Block.
func (*AES256) BlockSize() int { return BlockSize }

// Encrypt encrypts the 16-byte block in src, writing the result to dst.
// The entire input block is loaded into bit-sliced form before any byte of
// dst is written, so dst and src may overlap in any way, not just exactly
// or not at all.
func (c *AES256) Encrypt(dst, src []byte) {
	_, _ = dst[:BlockSize], src[:BlockSize]
	bitslice.Encrypt(c.rk[:], nr256, dst, src)
}

// Decrypt decrypts the 16-byte block in src, writing the result to dst.
// As with Encrypt, dst and src may overlap in any way.
func (c *AES256) Decrypt(dst, src []byte) {
	_, _ = dst[:BlockSize], src[:BlockSize]
	bitslice.Decrypt(c.rk[:], nr256, dst, src)
}
