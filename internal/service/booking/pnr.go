package booking

import "crypto/rand"

const (
	pnrLength   = 6
	pnrAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewPNR returns a fixed-length alphanumeric booking reference. Global
// uniqueness is enforced by the bookings.pnr constraint; collisions are
// handled by regenerating.
func NewPNR() (string, error) {
	buf := make([]byte, pnrLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = pnrAlphabet[int(b)%len(pnrAlphabet)]
	}
	return string(buf), nil
}
