package identity

import "golang.org/x/crypto/bcrypt"

// passwordCost matches the work factor the original deployment used. It is a
// fixed constant so the stored hashes stay comparable across releases.
const passwordCost = 10

// HashPassword produces a salted bcrypt hash of the plaintext password.
// Hashing the same plaintext twice yields different outputs; the salt is
// embedded in the hash.
func HashPassword(plaintext string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plaintext), passwordCost)
}

// VerifyPassword reports whether plaintext is the password that produced hash.
// The comparison is constant-time courtesy of the bcrypt primitive.
func VerifyPassword(plaintext string, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(plaintext)) == nil
}
