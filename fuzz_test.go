//go:build fuzz

package ctaes_test

import (
	"bytes"
	"crypto/aes"
	"os"
	"testing"
	"time"

	"github.com/bitcoin-core/ctaes"
	rand "github.com/ericlagergren/saferand"
)

func TestFuzz(t *testing.T) {
	t.Run("AES-128", func(t *testing.T) {
		t.Parallel()

		testFuzz(t, ctaes.KeySize128)
	})
	t.Run("AES-192", func(t *testing.T) {
		t.Parallel()

		testFuzz(t, ctaes.KeySize192)
	})
	t.Run("AES-256", func(t *testing.T) {
		t.Parallel()

		testFuzz(t, ctaes.KeySize256)
	})
}

// testFuzz draws random keys and blocks for a time budget and checks that
// this package's bit-sliced implementation agrees with the standard
// library's table-driven crypto/aes on every one of them.
func testFuzz(t *testing.T, keySize int) {
	d := 2 * time.Second
	if testing.Short() {
		d = 10 * time.Millisecond
	}
	if s := os.Getenv("CTAES_FUZZ_TIMEOUT"); s != "" {
		var err error
		d, err = time.ParseDuration(s)
		if err != nil {
			t.Fatal(err)
		}
	}
	tm := time.NewTimer(d)

	key := make([]byte, keySize)
	plaintext := make([]byte, ctaes.BlockSize)
	for i := 0; ; i++ {
		select {
		case <-tm.C:
			t.Logf("iters: %d", i)
			return
		default:
		}

		if _, err := rand.Read(key); err != nil {
			t.Fatal(err)
		}
		if _, err := rand.Read(plaintext); err != nil {
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

		wantCt := make([]byte, ctaes.BlockSize)
		gotCt := make([]byte, ctaes.BlockSize)
		want.Encrypt(wantCt, plaintext)
		got.Encrypt(gotCt, plaintext)
		if !bytes.Equal(wantCt, gotCt) {
			t.Fatalf("key=%#x plaintext=%#x: expected %#x, got %#x", key, plaintext, wantCt, gotCt)
		}

		wantPt := make([]byte, ctaes.BlockSize)
		gotPt := make([]byte, ctaes.BlockSize)
		want.Decrypt(wantPt, wantCt)
		got.Decrypt(gotPt, gotCt)
		if !bytes.Equal(wantPt, gotPt) {
			t.Fatalf("key=%#x ciphertext=%#x: expected %#x, got %#x", key, wantCt, wantPt, gotPt)
		}
	}
}
