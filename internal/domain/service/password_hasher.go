// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. The salt and cost
	// parameters are embedded in the output, so verification needs no side channel.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash. A mismatch is not
	// an error: it returns (false, nil). The error is non-nil only when the
	// stored hash is structurally invalid, wrapping domainerrors.ErrCorruptCredential.
	Check(password, hash string) (bool, error)
}
