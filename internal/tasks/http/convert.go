package http

import (
	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/service"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

func toUser(u domain.User) tasksdk.User {
	return tasksdk.User{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		MFAEnabled: u.MFAEnabled(),
		CreatedAt:  u.CreatedAt,
	}
}

func toTask(t domain.Task) tasksdk.Task {
	return tasksdk.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toPagination(p domain.Pagination) tasksdk.Pagination {
	return tasksdk.Pagination{Current: p.Current, Pages: p.Pages, Total: p.Total, Limit: p.Limit}
}

func toAuthResponse(s service.Session) tasksdk.AuthResponse {
	return tasksdk.AuthResponse{Token: s.Token, ExpiresAt: s.ExpiresAt, User: toUser(s.User)}
}

func toSummary(s domain.Summary) tasksdk.Summary {
	out := tasksdk.Summary{
		Total:          s.Total,
		Completed:      s.Completed,
		Pending:        s.Pending,
		CompletionRate: s.CompletionRate,
		Weekly:         make([]tasksdk.DayActivity, len(s.Weekly)),
		Monthly:        make([]tasksdk.DayCount, len(s.Monthly)),
	}
	for i, d := range s.Weekly {
		out.Weekly[i] = tasksdk.DayActivity{Date: d.Date, Created: d.Created, Completed: d.Completed}
	}
	for i, d := range s.Monthly {
		out.Monthly[i] = tasksdk.DayCount{Date: d.Date, Tasks: d.Tasks}
	}
	return out
}
