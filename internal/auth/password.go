package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plaintext password combined with the server-side
// pepper at the configured cost.
func HashPassword(password, pepper string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password+pepper), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a peppered password against its hashed value.
func ComparePassword(hashed, plain, pepper string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain+pepper))
}
