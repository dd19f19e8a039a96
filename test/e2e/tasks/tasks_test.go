//go:build e2e

package tasks_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

// runTaskFlow drives one complete user and admin session against client.
func runTaskFlow(t *testing.T, client *tasksdk.Client) {
	ctx := t.Context()

	alice := signUp(t, client, "Alice")
	bob := signUp(t, client, "Bob")
	admin := signInAdmin(t, client)

	for i := range 12 {
		_, err := alice.CreateTask(ctx, tasksdk.CreateTaskRequest{Title: fmt.Sprintf("Alice task %02d", i)})
		require.NoError(t, err)
	}

	page, err := alice.ListTasks(ctx, tasksdk.ListTasksParams{Page: 2, Limit: 5})
	require.NoError(t, err)
	require.Len(t, page.Tasks, 5)
	require.Equal(t, tasksdk.Pagination{Current: 2, Pages: 3, Total: 12, Limit: 5}, page.Pagination)

	target := page.Tasks[0]
	done, err := alice.UpdateTask(ctx, target.ID, tasksdk.UpdateTaskRequest{Status: ptr("completed")})
	require.NoError(t, err)
	require.Equal(t, "completed", done.Status)

	_, err = bob.UpdateTask(ctx, target.ID, tasksdk.UpdateTaskRequest{Title: ptr("stolen")})
	requireCode(t, err, http.StatusNotFound, tasksdk.ErrorCodeNotFound)

	_, err = alice.DeleteTask(ctx, target.ID)
	requireCode(t, err, http.StatusForbidden, tasksdk.ErrorCodeForbidden)

	_, err = admin.DeleteTask(ctx, target.ID)
	require.NoError(t, err)

	sum, err := alice.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, 11, sum.Total)
	require.Equal(t, 0, sum.Completed)

	users, err := admin.ListUsers(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 3, users.Pagination.Total)
}

func TestTaskFlowSQLite(t *testing.T) {
	client := startService(t, nil)

	health, err := client.Readiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)

	runTaskFlow(t, client)
}

func TestTaskFlowPostgres(t *testing.T) {
	nw, dsn := startPostgres(t)
	client := startService(t, map[string]string{
		"DATABASE_DRIVER": "postgres",
		"DATABASE_URL":    dsn,
	}, nw)

	runTaskFlow(t, client)
}

func TestSignUpIgnoresRole(t *testing.T) {
	client := startService(t, nil)

	sess, err := client.SignUp(t.Context(), tasksdk.SignUpRequest{
		Name:     "Mallory",
		Email:    "mallory@example.com",
		Password: userPassword,
		Role:     "admin",
	})
	require.NoError(t, err)
	require.Equal(t, "user", sess.User().Role)

	_, err = sess.ListUsers(t.Context(), 0, 0)
	requireCode(t, err, http.StatusForbidden, tasksdk.ErrorCodeForbidden)
}

func TestAdminSeedFromConfig(t *testing.T) {
	client := startService(t, map[string]string{
		"ADMIN_NAME":  "Ops",
		"ADMIN_EMAIL": "Ops@Example.com",
	})

	admin, err := client.SignIn(t.Context(), tasksdk.SignInRequest{Email: "ops@example.com", Password: adminPassword})
	require.NoError(t, err)
	require.Equal(t, "admin", admin.User().Role)
	require.Equal(t, "Ops", admin.User().Name)

	users, err := admin.ListUsers(t.Context(), 0, 0)
	require.NoError(t, err)
	require.Len(t, users.Users, 1)
}

func TestEdDSATokens(t *testing.T) {
	client := startService(t, map[string]string{"AUTH_ALGORITHM": "EdDSA"})

	sess := signUp(t, client, "Carol")
	me, err := sess.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, "carol@example.com", me.Email)
}
