package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher is the one-way credential hashing primitive used by the
// session layer. Implementations must be safe for concurrent use and must
// compare in constant time.
type PasswordHasher interface {
	// Hash derives an encoded, self-describing hash string from the
	// plaintext password. The returned string embeds the salt and the
	// tuning parameters needed for later verification.
	Hash(password string) (string, error)

	// Verify reports whether password matches the encoded hash produced by
	// [PasswordHasher.Hash]. The comparison is constant-time. A malformed
	// encoded string yields an error, not a mismatch.
	Verify(encoded, password string) (bool, error)
}
