package jwtx

import (
	"crypto/ed25519"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// EdDSA signs with an Ed25519 private key and verifies with its public half.
type EdDSA struct {
	kid  string
	key  ed25519.PrivateKey
	pub  ed25519.PublicKey
	opts VerifyOptions
}

// NewEdDSA wraps key. kid is stamped into each token header so a future key
// rollover can tell tokens apart.
func NewEdDSA(kid string, key ed25519.PrivateKey, opts VerifyOptions) (*EdDSA, error) {
	if len(key) != ed25519.PrivateKeySize {
		return nil, errors.New("jwtx: invalid Ed25519 private key size")
	}
	return &EdDSA{
		kid:  kid,
		key:  key,
		pub:  key.Public().(ed25519.PublicKey),
		opts: opts,
	}, nil
}

func (e *EdDSA) Alg() string { return jwt.SigningMethodEdDSA.Alg() }
func (e *EdDSA) KID() string { return e.kid }

func (e *EdDSA) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = e.kid
	return t.SignedString(e.key)
}

func (e *EdDSA) Verify(token string) (Claims, error) {
	return parse(token, jwt.SigningMethodEdDSA, e.pub, e.opts)
}
