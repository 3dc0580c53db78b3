// Package password wraps bcrypt hashing and verification behind a small
// Hasher type. Plaintext passwords never cross this boundary: services store
// and compare only the opaque digests produced here.
package password

import "golang.org/x/crypto/bcrypt"

// dummyDigest is a bcrypt hash of a throwaway value. Verifying against it
// makes the unknown-user path of authentication cost the same as a real
// password mismatch, so response timing does not reveal whether an email
// exists.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

// NewHasherWithCost is intended for tests that want a cheaper cost factor.
func NewHasherWithCost(cost int) *Hasher {
	return &Hasher{cost: cost}
}

// Hash derives a salted one-way digest of the plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches the digest. The underlying
// bcrypt comparison is constant-time.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// DummyVerify burns one bcrypt comparison against a fixed digest. Callers
// use it on lookup misses to equalize timing with the mismatch path.
func (h *Hasher) DummyVerify(plaintext string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyDigest), []byte(plaintext))
}
