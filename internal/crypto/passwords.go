// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrMalformedHash is returned when an encoded hash cannot be parsed back
// into its parameters, salt and digest.
var ErrMalformedHash = errors.New("malformed password hash")

// passwordHasherService is the private implementation of [PasswordHasherService].
type passwordHasherService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
	saltLen      int
}

// NewPasswordHasherService constructs a [PasswordHasherService] with the
// Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewPasswordHasherService() PasswordHasherService {
	return &passwordHasherService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
		saltLen:      16,
	}
}

// HashPassword implements [PasswordHasherService]. The returned string uses
// the standard encoded form
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<digest>
//
// so every parameter needed for verification travels with the hash itself.
func (p *passwordHasherService) HashPassword(password string) (string, error) {
	salt := make([]byte, p.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}

	digest := argon2.IDKey([]byte(password), salt, p.argonTime, p.argonMemory, p.argonThreads, p.argonKeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.argonMemory, p.argonTime, p.argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)

	return encoded, nil
}

// VerifyPassword implements [PasswordHasherService]. Comparison uses
// [subtle.ConstantTimeCompare] so timing does not leak how many digest
// bytes matched.
func (p *passwordHasherService) VerifyPassword(password, encodedHash string) (bool, error) {
	memory, time, threads, salt, digest, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(digest)))

	return subtle.ConstantTimeCompare(candidate, digest) == 1, nil
}

func decodeHash(encodedHash string) (memory, time uint32, threads uint8, salt, digest []byte, err error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: unsupported argon2 version %d", ErrMalformedHash, version)
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}

	digest, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}

	return memory, time, threads, salt, digest, nil
}
