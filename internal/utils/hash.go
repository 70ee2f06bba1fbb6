// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rodrigo Machado

package utils

import "golang.org/x/crypto/bcrypt"

// passwordHashCost is the bcrypt work factor applied to every password.
// Each cost increment doubles the hashing time; the hash must stay
// expensive to brute force.
const passwordHashCost = 12

// HashPassword derives a salted bcrypt hash of the given plain-text
// password using a fixed work factor.
//
// The returned string is self-describing: it encodes the algorithm
// version, cost, per-call random salt, and digest, so verification needs
// no out-of-band parameters.
//
// Returns an error only if the bcrypt implementation rejects the input
// (e.g. a password longer than 72 bytes).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// CheckPassword reports whether the plain-text password matches the given
// bcrypt hash. The comparison is constant-time.
//
// It never panics or returns an error: any mismatch, including a
// malformed or truncated hash, yields false.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
