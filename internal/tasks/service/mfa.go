package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

var (
	ErrInvalidTOTPCode   = errors.New("invalid_totp_code")
	ErrMFANotEnrolled    = errors.New("mfa_not_enrolled")
	ErrMFANotEnabled     = errors.New("mfa_not_enabled")
	ErrMFAAlreadyEnabled = errors.New("mfa_already_enabled")
)

var totpOpts = totp.ValidateOpts{
	Period:    30,
	Skew:      1,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

// MFAService manages the optional TOTP second factor.
type MFAService struct {
	Store  store.Store
	Issuer string // shown by authenticator apps
	Now    func() time.Time
}

type Enrollment struct {
	Secret string
	URL    string // otpauth:// URI for QR codes
}

// Enroll stores a new pending secret. Enrolling again before verifying
// replaces the pending secret.
func (s *MFAService) Enroll(ctx context.Context, id domain.Identity) (Enrollment, error) {
	u, err := s.user(ctx, id)
	if err != nil {
		return Enrollment{}, err
	}
	if u.MFAEnabled() {
		return Enrollment{}, ErrMFAAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: u.Email,
		Period:      totpOpts.Period,
		Digits:      totpOpts.Digits,
		Algorithm:   totpOpts.Algorithm,
	})
	if err != nil {
		return Enrollment{}, fmt.Errorf("generate totp key: %w", err)
	}

	if err := s.Store.Users().SetMFASecret(ctx, u.ID, key.Secret(), clock(s.Now).now()); err != nil {
		return Enrollment{}, fmt.Errorf("store mfa secret: %w", err)
	}
	return Enrollment{Secret: key.Secret(), URL: key.URL()}, nil
}

// Verify confirms a pending enrollment with a current code and enables MFA.
func (s *MFAService) Verify(ctx context.Context, id domain.Identity, code string) error {
	u, err := s.user(ctx, id)
	if err != nil {
		return err
	}
	if u.MFAEnabled() {
		return ErrMFAAlreadyEnabled
	}
	if u.MFASecret == nil {
		return ErrMFANotEnrolled
	}

	now := clock(s.Now).now()
	if !validateTOTP(code, *u.MFASecret, now) {
		return ErrInvalidTOTPCode
	}
	if err := s.Store.Users().EnableMFA(ctx, u.ID, now); err != nil {
		return fmt.Errorf("enable mfa: %w", err)
	}

	slogx.FromContext(ctx).Info("mfa enabled")
	return nil
}

// Disable turns MFA off. A current code is required.
func (s *MFAService) Disable(ctx context.Context, id domain.Identity, code string) error {
	u, err := s.user(ctx, id)
	if err != nil {
		return err
	}
	if !u.MFAEnabled() || u.MFASecret == nil {
		return ErrMFANotEnabled
	}

	now := clock(s.Now).now()
	if !validateTOTP(code, *u.MFASecret, now) {
		return ErrInvalidTOTPCode
	}
	if err := s.Store.Users().DisableMFA(ctx, u.ID, now); err != nil {
		return fmt.Errorf("disable mfa: %w", err)
	}

	slogx.FromContext(ctx).Info("mfa disabled")
	return nil
}

func (s *MFAService) user(ctx context.Context, id domain.Identity) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id.ID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func validateTOTP(code, secret string, now time.Time) bool {
	if code == "" {
		return false
	}
	ok, err := totp.ValidateCustom(code, secret, now, totpOpts)
	return err == nil && ok
}
