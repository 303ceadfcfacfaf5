package auth

import "golang.org/x/crypto/bcrypt"

// BcryptHasher implementa el hashing de contraseñas con bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher usa el costo por defecto de bcrypt si cost <= 0.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash genera el hash bcrypt de una contraseña en claro.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify compara hash y contraseña; error no-nil si no coinciden.
func (h *BcryptHasher) Verify(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
