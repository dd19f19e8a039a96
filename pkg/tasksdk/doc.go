/*
Package tasksdk is the Go client for the taskboard API, and the home of the
request and response types the server encodes.

# Client vs Session

Client talks to the public endpoints and produces a Session by signing up or
signing in:

	client := tasksdk.NewClient("http://localhost:8080")

	session, err := client.SignIn(ctx, tasksdk.SignInRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	})

A Session carries the bearer token and exposes the authenticated endpoints:

	task, err := session.CreateTask(ctx, tasksdk.CreateTaskRequest{Title: "Write report"})
	page, err := session.ListTasks(ctx, tasksdk.ListTasksParams{Page: 1, Limit: 10})

Tokens are not refreshed. When one expires every call fails with an *APIError
whose Code is ErrorCodeInvalidToken and the caller signs in again.

# Errors

Non-2xx responses are returned as *APIError. Use errors.As to inspect the
code, or the IsCode helper:

	if tasksdk.IsCode(err, tasksdk.ErrorCodeMFARequired) {
		// ask for a one-time code and retry SignIn with OTP set
	}
*/
package tasksdk
