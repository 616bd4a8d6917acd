package hasher

import (
	"golang.org/x/crypto/bcrypt"
)

// IPasswordHasher is the one-way hash primitive used for credential storage.
// Hash output embeds its own salt, so equal plaintexts may hash differently
// while Verify still succeeds.
type IPasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

type bcryptHasher struct {
	cost int
}

func NewBcryptHasher() IPasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *bcryptHasher) Hash(plain string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (h *bcryptHasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
