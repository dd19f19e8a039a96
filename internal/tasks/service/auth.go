package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// AuthService issues bearer tokens for new and returning users.
type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration
	Now      func() time.Time
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string // requested role, never honoured
}

type SignInInput struct {
	Email    string
	Password string
	OTP      string
}

// Session is a freshly issued token and the user it was issued to.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}

// fallbackDummyHash stands in when the dummy hash cannot be generated. It
// uses the same argon2id parameters as real hashes and matches no password.
const fallbackDummyHash = "$argon2id$v=19$m=19456,t=2,p=1$YvwC+F+DSQtywDMqt9kzRg$e6KH3JPiRiHZRsf0oRCfwzouOuwj5Q5mJbk+7Kze6N4"

var (
	dummyOnce sync.Once
	dummyHash string
)

// dummyPasswordHash is verified against when the email is unknown so both
// failure paths cost one argon2 derivation.
func dummyPasswordHash() string {
	dummyOnce.Do(func() {
		dummyHash = newDummyHash(cryptox.HashPassword)
	})
	return dummyHash
}

func newDummyHash(hash func(string) (string, error)) string {
	h, err := hash("taskboard-dummy-password")
	if err != nil {
		slog.Error("failed to generate dummy password hash, using fallback", slog.Any("error", err))
		return fallbackDummyHash
	}
	return h
}

// Register creates a user with role user and signs them in. Any requested
// role is ignored; promotion goes through UserService.UpdateRole.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (Session, error) {
	l := slogx.FromContext(ctx)

	name := strings.TrimSpace(in.Name)
	email := NormalizeEmail(in.Email)

	var verr ValidationError
	validateName(&verr, name)
	validateEmail(&verr, email)
	validatePassword(&verr, "password", in.Password)
	if err := verr.err(); err != nil {
		return Session{}, err
	}

	if in.Role != "" && domain.Role(in.Role) != domain.RoleUser {
		l.Warn("ignoring role requested at signup", slog.String("requested_role", in.Role))
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		l.Error("failed to hash password", slog.Any("error", err))
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	now := clock(s.Now).now()
	u := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return Session{}, ErrEmailAlreadyExists
		}
		l.Error("failed to create user", slog.Any("error", err))
		return Session{}, fmt.Errorf("create user: %w", err)
	}

	l.Info("user registered", slog.String("user_id", u.ID))
	return s.issue(u, []string{jwtx.AMRPassword}, now)
}

// SignIn checks email and password and, when the account has TOTP enabled,
// the one-time code. Unknown email and wrong password are indistinguishable.
func (s *AuthService) SignIn(ctx context.Context, in SignInInput) (Session, error) {
	l := slogx.FromContext(ctx)
	email := NormalizeEmail(in.Email)

	var verr ValidationError
	if email == "" {
		verr.add("email", "is required")
	}
	if in.Password == "" {
		verr.add("password", "is required")
	}
	if err := verr.err(); err != nil {
		return Session{}, err
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		_ = cryptox.VerifyPassword(in.Password, dummyPasswordHash())
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		l.Error("failed to look up user", slog.Any("error", err))
		return Session{}, fmt.Errorf("get user: %w", err)
	}

	if err := cryptox.VerifyPassword(in.Password, u.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Error("stored password hash unusable", slog.String("user_id", u.ID), slog.Any("error", err))
		}
		return Session{}, ErrInvalidCredentials
	}

	now := clock(s.Now).now()
	amr := []string{jwtx.AMRPassword}

	if u.MFAEnabled() {
		if strings.TrimSpace(in.OTP) == "" {
			return Session{}, ErrMFARequired
		}
		if u.MFASecret == nil || !validateTOTP(in.OTP, *u.MFASecret, now) {
			l.Warn("invalid one-time code at sign in", slog.String("user_id", u.ID))
			return Session{}, ErrInvalidCredentials
		}
		amr = append(amr, jwtx.AMROTP)
	}

	if cryptox.NeedsRehash(u.PasswordHash) {
		s.rehash(ctx, u.ID, in.Password, now)
	}

	return s.issue(u, amr, now)
}

// rehash upgrades a legacy hash after a successful sign in. Failure only
// costs the upgrade, never the sign in.
func (s *AuthService) rehash(ctx context.Context, userID, password string, now time.Time) {
	l := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		l.Warn("failed to rehash password", slog.Any("error", err))
		return
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, userID, hash, now); err != nil {
		l.Warn("failed to store rehashed password", slog.Any("error", err))
		return
	}
	l.Info("upgraded password hash", slog.String("user_id", userID))
}

func (s *AuthService) issue(u domain.User, amr []string, now time.Time) (Session, error) {
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultTokenTTL
	}

	claims := jwtx.NewClaims(u.ID, amr, ttl, s.Issuer, now)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return Session{}, fmt.Errorf("sign token: %w", err)
	}
	return Session{Token: token, ExpiresAt: claims.ExpiresAt.Time, User: u}, nil
}
