package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gtank/cryptopasta"
)

var (
	ErrKeyTooShort  = errors.New("key too short, want at least 32 chars")
	ErrMalformed    = errors.New("sealed value malformed")
	ErrBadSignature = errors.New("signature validation failed")
)

// NewRandomKey generates a random key suitable for NewSealer.
func NewRandomKey() (string, error) {
	key := &[33]byte{} // slightly longer than we need to be safe
	_, err := io.ReadFull(rand.Reader, key[:])
	return base64.RawURLEncoding.EncodeToString(key[:]), err
}

// Sealer encrypts and signs small payloads into URL safe strings.
type Sealer struct {
	encryption *[32]byte
	signature  *[32]byte
}

// NewSealer builds a Sealer from an encryption key & a signing key.
func NewSealer(encKey, sigKey string) (*Sealer, error) {
	enc, err := toKey(encKey)
	if err != nil {
		return nil, fmt.Errorf("encryption %w", err)
	}
	sig, err := toKey(sigKey)
	if err != nil {
		return nil, fmt.Errorf("signing %w", err)
	}
	return &Sealer{encryption: enc, signature: sig}, nil
}

// NewRandomSealer is a Sealer with throwaway keys, anything it seals can
// only be opened by the same instance.
func NewRandomSealer() *Sealer {
	return &Sealer{
		encryption: cryptopasta.NewEncryptionKey(),
		signature:  cryptopasta.NewHMACKey(),
	}
}

// Seal encrypts plaintext & base64 encodes the result, with an HMAC
// signature attached on the end: <cyphertext>.<signature>
func (s *Sealer) Seal(plaintext []byte) (string, error) {
	cyphertext, err := cryptopasta.Encrypt(plaintext, s.encryption)
	if err != nil {
		return "", err
	}

	signature := cryptopasta.GenerateHMAC(cyphertext, s.signature)

	return fmt.Sprintf(
		"%s.%s",
		base64.RawURLEncoding.EncodeToString(cyphertext),
		base64.RawURLEncoding.EncodeToString(signature),
	), nil
}

// Open is the inverse of Seal, checking the HMAC before decrypting.
func (s *Sealer) Open(sealed string) ([]byte, error) {
	bits := strings.SplitN(sealed, ".", 2)
	if len(bits) != 2 {
		return nil, ErrMalformed
	}

	cypher, err := base64.RawURLEncoding.DecodeString(bits[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	signature, err := base64.RawURLEncoding.DecodeString(bits[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if !cryptopasta.CheckHMAC(cypher, signature, s.signature) {
		return nil, ErrBadSignature
	}

	return cryptopasta.Decrypt(cypher, s.encryption)
}

// toKey takes the first 32 bytes of s as a key.
func toKey(s string) (*[32]byte, error) {
	if len(s) < 32 {
		return nil, ErrKeyTooShort
	}
	data := &[32]byte{}
	copy(data[:], s)
	return data, nil
}
