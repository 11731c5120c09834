package interfaces

// CryptoProvider derives key material from the master password and
// transforms opaque byte buffers.
type CryptoProvider interface {
	DeriveKey(password string) ([]byte, error)
	// DeriveIV returns the initialization vector. It does not depend on the
	// password.
	DeriveIV() ([]byte, error)
	Encrypt(plaintext, key, iv []byte) ([]byte, error)
	Decrypt(ciphertext, key, iv []byte) ([]byte, error)
}
