package store

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"shopadmin/internal/util/memzero"
)

// sealedFormatVersion is the newest sealed file layout this build can read.
const sealedFormatVersion = 1

// ErrWrongPassphrase is returned when the passphrase is incorrect or the
// sealed file has been modified.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted session file")

// sealed is the on-disk JSON structure holding the ciphertext and KDF parameters.
type sealed struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// encrypt derives a key from passphrase and seals raw into a JSON document.
func encrypt(passphrase string, raw []byte, N, r, p int) ([]byte, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	aead, err := newAEAD(passphrase, salt[:], N, r, p)
	if err != nil {
		return nil, err
	}
	// Zero nonce: every write draws a fresh salt, so the key is never reused.
	var nonce [chacha20poly1305.NonceSize]byte
	return json.Marshal(sealed{
		V:      sealedFormatVersion,
		Salt:   salt[:],
		N:      N,
		R:      r,
		P:      p,
		Cipher: aead.Seal(nil, nonce[:], raw, salt[:]),
	})
}

// decrypt opens a document produced by encrypt.
func decrypt(passphrase string, b []byte) ([]byte, error) {
	var doc sealed
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("sealed file: %w", err)
	}
	if doc.V > sealedFormatVersion {
		return nil, fmt.Errorf("unsupported sealed file version %d", doc.V)
	}
	aead, err := newAEAD(passphrase, doc.Salt, doc.N, doc.R, doc.P)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], doc.Cipher, doc.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func newAEAD(passphrase string, salt []byte, N, r, p int) (cipher.AEAD, error) {
	pass := []byte(passphrase)
	defer memzero.Bytes(pass)
	key, err := scrypt.Key(pass, salt, N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	// The AEAD keeps its own copy of the key.
	defer memzero.Bytes(key)
	return chacha20poly1305.New(key)
}

// Tunables for scrypt key derivation.
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }
