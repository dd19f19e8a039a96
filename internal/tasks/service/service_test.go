package service

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store/drivers/sqlite"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer = "taskboard-test"
	testSecret = "0123456789abcdef0123456789abcdef"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "service")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// stepClock advances by step on every read so rows written in a loop get
// distinct timestamps.
type stepClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.t
	c.t = c.t.Add(c.step)
	return now
}

type testEnv struct {
	store *sqlite.Store
	clock *stepClock
	jwt   *jwtx.HMAC

	auth  *AuthService
	ids   *IdentityService
	tasks *TaskService
	users *UserService
	mfa   *MFAService
	seed  *SeedService
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	clk := &stepClock{t: time.Now().UTC(), step: time.Millisecond}
	h, err := jwtx.NewHMAC([]byte(testSecret), jwtx.VerifyOptions{Issuer: testIssuer, Now: clk.Now})
	require.NoError(t, err)

	return &testEnv{
		store: st,
		clock: clk,
		jwt:   h,
		auth:  &AuthService{Store: st, Signer: h, Issuer: testIssuer, TokenTTL: time.Hour, Now: clk.Now},
		ids:   &IdentityService{Store: st, Verifier: h},
		tasks: &TaskService{Store: st, Now: clk.Now},
		users: &UserService{Store: st, Now: clk.Now},
		mfa:   &MFAService{Store: st, Issuer: "Taskboard", Now: clk.Now},
		seed:  &SeedService{Store: st, Now: clk.Now},
	}
}

func (e *testEnv) register(t *testing.T, name, email string) domain.Identity {
	t.Helper()

	sess, err := e.auth.Register(context.Background(), RegisterInput{Name: name, Email: email, Password: "password-" + name})
	require.NoError(t, err)
	return sess.User.Identity()
}

func (e *testEnv) admin(t *testing.T) domain.Identity {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, e.seed.EnsureAdmin(ctx, SeedAdmin{Name: "Root", Email: "root@example.com", Password: "root-password"}))
	u, err := e.store.Users().GetUserByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	return u.Identity()
}
