// Package crypto implements the key/IV derivation and cipher primitives the
// password store encrypts its file with.
//
// Contents
//
//   - Password-based key derivation: scrypt (default), Argon2id and PBKDF2,
//     all selectable by name (KDF, KDFByName)
//   - A password-independent IV expanded with HKDF from a fixed label
//   - Ciphers: AES-256-CBC with PKCS#7 padding (default) and
//     ChaCha20-Poly1305 (Cipher, CipherByName)
//   - Provider, which combines one KDF and one Cipher into a
//     domain.CryptoProvider
//   - A random secret generator for new entries (GenerateSecret)
//
// # Notes
//
// The store file carries no header, so there is nowhere to keep a random salt
// or nonce. Keys are derived with a fixed application salt and the IV does
// not depend on the password. Both are inherited limitations of the file
// format; changing them changes on-disk compatibility.
package crypto
