package service

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted hash from a plaintext password. bcrypt
// generates the salt itself; the cost stays at the library default.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored hash. A mismatch is
// a false return, never an error.
func CheckPassword(plain, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plain)) == nil
}
