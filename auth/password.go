package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt hash; the salt is embedded in the
// returned string so verification needs only the stored hash.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
