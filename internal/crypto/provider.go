package crypto

import (
	"github.com/pkg/errors"

	"passkeeper/internal/domain"
	"passkeeper/internal/util/memzero"
)

// Provider pairs one KDF with one Cipher.
type Provider struct {
	kdf    KDF
	cipher Cipher
}

// NewProvider returns a Provider using kdf and c.
func NewProvider(kdf KDF, c Cipher) *Provider {
	return &Provider{kdf: kdf, cipher: c}
}

// NewProviderByName looks both algorithms up by name.
func NewProviderByName(kdfName, cipherName string) (*Provider, error) {
	kdf, err := KDFByName(kdfName)
	if err != nil {
		return nil, err
	}
	c, err := CipherByName(cipherName)
	if err != nil {
		return nil, err
	}
	return NewProvider(kdf, c), nil
}

// Default returns scrypt with AES-256-CBC.
func Default() *Provider { return NewProvider(NewScrypt(), AESCBC{}) }

// Name describes the suite, e.g. "scrypt+aes-cbc".
func (p *Provider) Name() string { return p.kdf.Name() + "+" + p.cipher.Name() }

// DeriveKey derives a key of the cipher's size from password.
func (p *Provider) DeriveKey(password string) ([]byte, error) {
	pw := []byte(password)
	defer memzero.Zero(pw)

	key, err := p.kdf.Key(pw, p.cipher.KeySize())
	if err != nil {
		return nil, errors.Wrap(err, "derive key")
	}
	return key, nil
}

// DeriveIV returns the fixed IV for the cipher.
func (p *Provider) DeriveIV() ([]byte, error) {
	return deriveIV(p.cipher.IVSize())
}

func (p *Provider) Encrypt(plaintext, key, iv []byte) ([]byte, error) {
	ct, err := p.cipher.Seal(plaintext, key, iv)
	if err != nil {
		return nil, errors.Wrap(err, "encrypt")
	}
	return ct, nil
}

func (p *Provider) Decrypt(ciphertext, key, iv []byte) ([]byte, error) {
	pt, err := p.cipher.Open(ciphertext, key, iv)
	if err != nil {
		return nil, errors.Wrap(err, "decrypt")
	}
	return pt, nil
}

// Compile-time assertion that Provider implements domain.CryptoProvider.
var _ domain.CryptoProvider = (*Provider)(nil)
