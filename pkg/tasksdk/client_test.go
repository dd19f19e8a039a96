package tasksdk_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

func TestListTasksQuery(t *testing.T) {
	var gotQuery, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(tasksdk.TaskListResponse{
			Tasks:      []tasksdk.Task{{ID: "t1", Title: "one"}},
			Pagination: tasksdk.Pagination{Current: 2, Pages: 2, Total: 11, Limit: 10},
		})
	}))
	defer srv.Close()

	sess := tasksdk.NewClient(srv.URL + "/").NewSession("tok")
	out, err := sess.ListTasks(t.Context(), tasksdk.ListTasksParams{Page: 2, Status: "pending", Search: "a b"})
	require.NoError(t, err)
	require.Equal(t, "page=2&search=a+b&status=pending", gotQuery)
	require.Equal(t, "Bearer tok", gotAuth)
	require.Len(t, out.Tasks, 1)
	require.Equal(t, 2, out.Pagination.Pages)
}

func TestAPIErrorDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tasks":
			e := tasksdk.NewAPIError(http.StatusBadRequest, tasksdk.ErrorCodeValidation, "request validation failed")
			e.Details = map[string]string{"title": "title is required"}
			e.WriteError(w)
		default:
			http.Error(w, "bad gateway", http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	sess := tasksdk.NewClient(srv.URL).NewSession("tok")

	_, err := sess.CreateTask(t.Context(), tasksdk.CreateTaskRequest{})
	var apiErr *tasksdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "title is required", apiErr.Details["title"])
	require.True(t, tasksdk.IsCode(err, tasksdk.ErrorCodeValidation))

	_, err = sess.Summary(t.Context())
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, tasksdk.ErrorCodeServerError, apiErr.Code)
}

func TestNoContentCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req tasksdk.MFACodeRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Code != "123456" {
			tasksdk.NewAPIError(http.StatusBadRequest, tasksdk.ErrorCodeInvalidOTP, "bad code").WriteError(w)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sess := tasksdk.NewClient(srv.URL).NewSession("tok")
	require.NoError(t, sess.VerifyMFA(t.Context(), "123456"))
	require.True(t, tasksdk.IsCode(sess.DisableMFA(t.Context(), "000000"), tasksdk.ErrorCodeInvalidOTP))
}
