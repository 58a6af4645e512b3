// Package password hashes and verifies user passwords with argon2id.
//
// Hashes are stored in the PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// with salt and key in unpadded standard base64.
package password

import (
	"errors"
	"fmt"

	"github.com/alexedwards/argon2id"
)

// Params controls the cost of a hash.
type Params = argon2id.Params

// DefaultParams follows the argon2id recommendation of RFC 9106 for
// memory-constrained environments.
var DefaultParams = Params{
	Memory:      64 * 1024,
	Iterations:  1,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

var (
	ErrInvalidHash         = errors.New("password: encoded hash is not in the expected format")
	ErrIncompatibleVersion = errors.New("password: incompatible argon2 version")
)

// Hash derives a salted argon2id hash of plain using DefaultParams.
func Hash(plain string) (string, error) {
	return HashWithParams(plain, DefaultParams)
}

// HashWithParams is Hash with explicit cost parameters.
func HashWithParams(plain string, p Params) (string, error) {
	encoded, err := argon2id.CreateHash(plain, &p)
	if err != nil {
		return "", fmt.Errorf("password: hashing: %w", err)
	}
	return encoded, nil
}

// Verify reports whether plain matches encoded. A malformed encoding is
// returned as an error and never matches.
func Verify(plain, encoded string) (bool, error) {
	if err := check(encoded); err != nil {
		return false, err
	}

	match, err := argon2id.ComparePasswordAndHash(plain, encoded)
	if err != nil {
		return false, ErrInvalidHash
	}
	return match, nil
}

// check rejects encodings argon2id would decode but that cannot be a real
// hash: zero cost parameters, or an empty salt or key.
func check(encoded string) error {
	p, salt, key, err := argon2id.DecodeHash(encoded)
	if err != nil {
		if errors.Is(err, argon2id.ErrIncompatibleVersion) {
			return ErrIncompatibleVersion
		}
		return ErrInvalidHash
	}

	if p.Memory == 0 || p.Iterations == 0 || p.Parallelism == 0 || len(salt) == 0 || len(key) == 0 {
		return ErrInvalidHash
	}
	return nil
}
