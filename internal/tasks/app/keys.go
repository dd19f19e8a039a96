package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
)

const (
	AlgHS256 = "HS256"
	AlgEdDSA = "EdDSA"
)

// TokenKeys is the signer/verifier pair the services share. Both halves are
// the same value for every supported algorithm.
type TokenKeys struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
}

// InitTokenKeys builds the token signer for cfg.Algorithm.
//
// Keys come from configuration when present. Otherwise a key is generated for
// this process only and every token it issues stops verifying on restart.
func InitTokenKeys(cfg Config, logger *slog.Logger) (TokenKeys, error) {
	opts := jwtx.VerifyOptions{Issuer: cfg.Issuer}

	switch strings.ToUpper(cfg.Algorithm) {
	case strings.ToUpper(AlgEdDSA):
		pemBytes, ephemeral, err := loadSigningKey(cfg.SigningKeyFile)
		if err != nil {
			return TokenKeys{}, err
		}
		key, err := cryptox.ParseEd25519Key(pemBytes)
		if err != nil {
			return TokenKeys{}, fmt.Errorf("failed to parse signing key: %w", err)
		}

		kid, err := cryptox.GenerateSecret(8)
		if err != nil {
			return TokenKeys{}, fmt.Errorf("failed to generate key id: %w", err)
		}
		ed, err := jwtx.NewEdDSA(kid, key, opts)
		if err != nil {
			return TokenKeys{}, fmt.Errorf("failed to initialize EdDSA signer: %w", err)
		}

		logger.Info("token signer ready", "algorithm", ed.Alg(), "kid", kid, "issuer", cfg.Issuer)
		if ephemeral {
			logger.Warn("no AUTH_SIGNING_KEY_FILE configured, tokens will not survive a restart")
		}
		return TokenKeys{Signer: ed, Verifier: ed}, nil

	case AlgHS256:
		secret := cfg.JWTSecret
		if secret == "" {
			generated, err := cryptox.GenerateSecret(32)
			if err != nil {
				return TokenKeys{}, fmt.Errorf("failed to generate JWT secret: %w", err)
			}
			secret = generated
			logger.Warn("no AUTH_JWT_SECRET configured, tokens will not survive a restart")
		}

		h, err := jwtx.NewHMAC([]byte(secret), opts)
		if err != nil {
			return TokenKeys{}, fmt.Errorf("failed to initialize HS256 signer: %w", err)
		}

		logger.Info("token signer ready", "algorithm", h.Alg(), "issuer", cfg.Issuer)
		return TokenKeys{Signer: h, Verifier: h}, nil

	default:
		return TokenKeys{}, fmt.Errorf("unsupported AUTH_ALGORITHM %q (want %s or %s)", cfg.Algorithm, AlgHS256, AlgEdDSA)
	}
}

// loadSigningKey reads a PEM key from path, or generates one when path is
// empty. ephemeral reports the latter.
func loadSigningKey(path string) (pemBytes []byte, ephemeral bool, err error) {
	if path == "" {
		pemBytes, err = cryptox.GenerateEd25519Key()
		return pemBytes, true, err
	}

	pemBytes, err = os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read signing key: %w", err)
	}
	return pemBytes, false, nil
}
