package jwtx

import (
	"github.com/golang-jwt/jwt/v5"
)

// HMAC signs and verifies HS256 tokens with one process-wide secret.
type HMAC struct {
	secret []byte
	opts   VerifyOptions
}

// NewHMAC returns an HS256 signer/verifier. Secrets shorter than 32 bytes are
// rejected.
func NewHMAC(secret []byte, opts VerifyOptions) (*HMAC, error) {
	if len(secret) < 32 {
		return nil, ErrWeakSecret
	}
	return &HMAC{secret: append([]byte(nil), secret...), opts: opts}, nil
}

func (h *HMAC) Alg() string { return jwt.SigningMethodHS256.Alg() }

func (h *HMAC) Sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
}

func (h *HMAC) Verify(token string) (Claims, error) {
	return parse(token, jwt.SigningMethodHS256, h.secret, h.opts)
}
