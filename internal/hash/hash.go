package hash

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted one-way digest from the plaintext.
// bcrypt generates a fresh salt per call and embeds it in the digest.
func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// CheckPassword reports whether password matches digest. A malformed
// digest counts as a mismatch, never an error.
func CheckPassword(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
