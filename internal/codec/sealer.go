package codec

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/rezonia/invoice-ledger/internal/model"
)

// staticKeyHex is the compiled-in AES-256 key. Exports sealed with it
// stay readable by every build of the application, which is the point:
// this is obfuscation at rest for a single-user local tool, not
// protection against an attacker holding the binary.
const staticKeyHex = "6b2f9d4c81e3a7065f0cd8b12e94a37c5d61f08b3a92ce47d105e86f24b9c3a0"

// Sealer encrypts and decrypts whole data bundles with AES-GCM.
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer builds a sealer from a raw AES key (16/24/32 bytes).
func NewSealer(key []byte) (*Sealer, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}
	return &Sealer{aead: aead}, nil
}

// NewStaticSealer builds the sealer for the compiled-in key.
func NewStaticSealer() *Sealer {
	key, err := hex.DecodeString(staticKeyHex)
	if err != nil {
		panic(err) // the constant is malformed, not a runtime condition
	}
	s, err := NewSealer(key)
	if err != nil {
		panic(err)
	}
	return s
}

// Seal encrypts plaintext and returns a base64 payload of
// nonce || ciphertext.
func (s *Sealer) Seal(plaintext []byte) (string, error) {
	if s == nil || s.aead == nil {
		return "", fmt.Errorf("sealer is not configured")
	}

	// AES-GCM requires a unique nonce per encryption under the same key.
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("read nonce: %w", err)
	}

	ciphertext := s.aead.Seal(nil, nonce, plaintext, nil)
	payload := append(nonce, ciphertext...)
	return base64.RawStdEncoding.EncodeToString(payload), nil
}

// Open decrypts a previously sealed payload. Wrong keys and mangled
// ciphertexts come back as a DecryptionError, never a panic.
func (s *Sealer) Open(sealed string) ([]byte, error) {
	if s == nil || s.aead == nil {
		return nil, model.NewDecryptionError("sealer is not configured", nil)
	}

	payload, err := base64.RawStdEncoding.DecodeString(sealed)
	if err != nil {
		return nil, model.NewDecryptionError("ciphertext is not valid base64", err)
	}

	nonceSize := s.aead.NonceSize()
	if len(payload) < nonceSize {
		return nil, model.NewDecryptionError("ciphertext is too short", nil)
	}

	nonce := payload[:nonceSize]
	ciphertext := payload[nonceSize:]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, model.NewDecryptionError("wrong key or corrupted data", err)
	}
	return plaintext, nil
}
