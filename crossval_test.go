package ctaes_test

import (
	"bytes"
	"crypto/aes"
	"crypto/rand"
	"testing"

	"github.com/bitcoin-core/ctaes"
)

// TestCrossValidateStdlib checks this package's bit-sliced encrypt/decrypt
// against the standard library's crypto/aes across a spread of key sizes
// and random blocks, the same role the teacher's cgo reference package
// plays for AEGIS, adapted to a reference available without cgo.
func TestCrossValidateStdlib(t *testing.T) {
	for _, keySize := range []int{ctaes.KeySize128, ctaes.KeySize192, ctaes.KeySize256} {
		key := make([]byte, keySize)
		if _, err := rand.Read(key); err != nil {
			t.Fatal(err)
		}

		want, err := aes.NewCipher(key)
		if err != nil {
			t.Fatal(err)
		}
		got, err := ctaes.New(key)
		if err != nil {
			t.Fatal(err)
		}

		for i := 0; i < 64; i++ {
			plaintext := make([]byte, ctaes.BlockSize)
			if _, err := rand.Read(plaintext); err != nil {
				t.Fatal(err)
			}

			wantCt := make([]byte, ctaes.BlockSize)
			gotCt := make([]byte, ctaes.BlockSize)
			want.Encrypt(wantCt, plaintext)
			got.Encrypt(gotCt, plaintext)
			if !bytes.Equal(wantCt, gotCt) {
				t.Fatalf("keySize=%d plaintext=%#x: expected %#x, got %#x", keySize, plaintext, wantCt, gotCt)
			}

			wantPt := make([]byte, ctaes.BlockSize)
			gotPt := make([]byte, ctaes.BlockSize)
			want.Decrypt(wantPt, wantCt)
			got.Decrypt(gotPt, gotCt)
			if !bytes.Equal(wantPt, gotPt) {
				t.Fatalf("keySize=%d ciphertext=%#x: expected %#x, got %#x", keySize, wantCt, wantPt, gotPt)
			}
			if !bytes.Equal(wantPt, plaintext) {
				t.Fatalf("keySize=%d: decrypt did not recover plaintext: expected %#x, got %#x", keySize, plaintext, wantPt)
			}
		}
	}
}
