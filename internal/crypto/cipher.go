package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"
)

// Cipher encrypts and decrypts with a caller-supplied key and IV.
type Cipher interface {
	Name() string
	KeySize() int
	IVSize() int
	Seal(plaintext, key, iv []byte) ([]byte, error)
	Open(ciphertext, key, iv []byte) ([]byte, error)
}

// Names of the supported ciphers.
const (
	CipherAESCBC           = "aes-cbc"
	CipherChaCha20Poly1305 = "chacha20poly1305"
)

// AESCBC is AES-256 in CBC mode with PKCS#7 padding.
type AESCBC struct{}

func (AESCBC) Name() string { return CipherAESCBC }
func (AESCBC) KeySize() int { return 32 }
func (AESCBC) IVSize() int  { return aes.BlockSize }

func (c AESCBC) Seal(plaintext, key, iv []byte) ([]byte, error) {
	block, err := c.block(key, iv)
	if err != nil {
		return nil, err
	}
	padded := pkcs7Pad(plaintext, aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
	return out, nil
}

func (c AESCBC) Open(ciphertext, key, iv []byte) ([]byte, error) {
	block, err := c.block(key, iv)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, errors.Wrapf(ErrBadCiphertext, "length %d is not a positive multiple of %d", len(ciphertext), aes.BlockSize)
	}
	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ciphertext)
	return pkcs7Unpad(out, aes.BlockSize)
}

func (c AESCBC) block(key, iv []byte) (cipher.Block, error) {
	if len(key) != c.KeySize() {
		return nil, errors.Wrapf(ErrBadKey, "aes: got %d bytes, want %d", len(key), c.KeySize())
	}
	if len(iv) != c.IVSize() {
		return nil, errors.Wrapf(ErrBadIV, "aes: got %d bytes, want %d", len(iv), c.IVSize())
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create aes block cipher")
	}
	return block, nil
}

func pkcs7Pad(b []byte, size int) []byte {
	n := size - len(b)%size
	return append(append(make([]byte, 0, len(b)+n), b...), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, size int) ([]byte, error) {
	if len(b) == 0 || len(b)%size != 0 {
		return nil, ErrBadPadding
	}
	n := int(b[len(b)-1])
	if n == 0 || n > size {
		return nil, ErrBadPadding
	}
	want := bytes.Repeat([]byte{byte(n)}, n)
	if subtle.ConstantTimeCompare(b[len(b)-n:], want) != 1 {
		return nil, ErrBadPadding
	}
	return b[:len(b)-n], nil
}

// ChaCha20Poly1305 is the ChaCha20-Poly1305 AEAD; the IV is used as the nonce.
//
// With a password-independent IV every save reuses the same nonce under the
// same key. Prefer AESCBC unless tamper detection matters more.
type ChaCha20Poly1305 struct{}

func (ChaCha20Poly1305) Name() string { return CipherChaCha20Poly1305 }
func (ChaCha20Poly1305) KeySize() int { return chacha20poly1305.KeySize }
func (ChaCha20Poly1305) IVSize() int  { return chacha20poly1305.NonceSize }

func (c ChaCha20Poly1305) Seal(plaintext, key, iv []byte) ([]byte, error) {
	aead, err := c.aead(key, iv)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, iv, plaintext, nil), nil
}

func (c ChaCha20Poly1305) Open(ciphertext, key, iv []byte) ([]byte, error) {
	aead, err := c.aead(key, iv)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < aead.Overhead() {
		return nil, errors.Wrapf(ErrBadCiphertext, "length %d is shorter than the tag", len(ciphertext))
	}
	pt, err := aead.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthFailed
	}
	return pt, nil
}

func (c ChaCha20Poly1305) aead(key, iv []byte) (cipher.AEAD, error) {
	if len(key) != c.KeySize() {
		return nil, errors.Wrapf(ErrBadKey, "chacha20poly1305: got %d bytes, want %d", len(key), c.KeySize())
	}
	if len(iv) != c.IVSize() {
		return nil, errors.Wrapf(ErrBadIV, "chacha20poly1305: got %d bytes, want %d", len(iv), c.IVSize())
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create chacha20poly1305 aead")
	}
	return aead, nil
}

var ciphers = map[string]Cipher{
	CipherAESCBC:           AESCBC{},
	CipherChaCha20Poly1305: ChaCha20Poly1305{},
}

// CipherByName returns the cipher registered under name.
func CipherByName(name string) (Cipher, error) {
	c, ok := ciphers[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupported, "cipher %q", name)
	}
	return c, nil
}

// CipherNames lists the supported cipher names, sorted.
func CipherNames() []string {
	out := make([]string, 0, len(ciphers))
	for n := range ciphers {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
