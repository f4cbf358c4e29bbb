package helpers

import "golang.org/x/crypto/bcrypt"

// BcryptPinHasher is the production services.PinHasher. The gate never sees
// anything but the opaque hash.
type BcryptPinHasher struct {
	Cost int
}

func NewBcryptPinHasher() BcryptPinHasher {
	return BcryptPinHasher{Cost: bcrypt.DefaultCost}
}

func (h BcryptPinHasher) Hash(pin string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(pin), h.Cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (h BcryptPinHasher) Verify(hash, pin string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}
