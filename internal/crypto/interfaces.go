package crypto

// PasswordHasherService handles password hashing for profile registration
// and login. It knows nothing about the network, the database or profiles;
// its only job is deriving and verifying password hashes.
type PasswordHasherService interface {
	// HashPassword derives an Argon2id hash from the plaintext password
	// with a fresh random salt, returning the self-describing encoded form
	// (parameters, salt and digest in one string) for storage.
	HashPassword(password string) (string, error)

	// VerifyPassword re-derives the hash from the candidate password using
	// the parameters and salt embedded in encodedHash and compares the
	// digests in constant time. Returns true on match.
	VerifyPassword(password, encodedHash string) (bool, error)
}
