package ports

// PasswordHasher abstracts the password hashing scheme so the core never
// touches raw bcrypt.
type PasswordHasher interface {
	// Hash derives a storable digest from a raw password.
	Hash(password string) (string, error)

	// Verify reports whether the raw password matches the stored digest.
	Verify(password, hash string) bool
}
