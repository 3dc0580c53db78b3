package password

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	h := NewHasherWithCost(bcrypt.MinCost)

	plaintexts := []string{"secret", "", "p@ssw0rd!", strings.Repeat("x", 70)}
	for _, p := range plaintexts {
		digest, err := h.Hash(p)
		if err != nil {
			t.Fatalf("Hash(%q) error: %v", p, err)
		}
		if digest == p {
			t.Fatalf("digest must not equal plaintext")
		}
		if !h.Verify(p, digest) {
			t.Fatalf("Verify(%q, hash(%q)) = false, want true", p, p)
		}
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()

	h := NewHasherWithCost(bcrypt.MinCost)

	digest, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if h.Verify("wrong", digest) {
		t.Fatalf("Verify with wrong plaintext must be false")
	}
}

func TestHash_Salted(t *testing.T) {
	t.Parallel()

	h := NewHasherWithCost(bcrypt.MinCost)

	d1, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	d2, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if d1 == d2 {
		t.Fatalf("two hashes of the same plaintext must differ (salt)")
	}
}

func TestDummyVerify_DoesNotPanic(t *testing.T) {
	t.Parallel()

	h := NewHasher()
	h.DummyVerify("anything")
}
