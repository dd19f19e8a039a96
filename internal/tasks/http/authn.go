package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
)

// identityAuthenticator adapts IdentityService to httpx.AuthnMiddleware.
type identityAuthenticator struct {
	ids *service.IdentityService
}

func (a identityAuthenticator) Authenticate(ctx context.Context, token string) (httpx.Principal, error) {
	id, err := a.ids.Verify(ctx, token)
	if err != nil {
		return httpx.Principal{}, err
	}
	return httpx.Principal{Subject: id.ID, Role: string(id.Role), Value: id}, nil
}

// identityFrom returns the caller attached by the authn middleware.
func identityFrom(r *http.Request) (domain.Identity, bool) {
	p, ok := httpx.PrincipalFrom(r.Context())
	if !ok {
		return domain.Identity{}, false
	}
	id, ok := p.Value.(domain.Identity)
	return id, ok
}

func requireRole(roles ...domain.Role) func(httpx.Principal) error {
	return func(p httpx.Principal) error {
		id, ok := p.Value.(domain.Identity)
		if !ok {
			return service.ErrMissingToken
		}
		return service.Authorize(id, roles...)
	}
}
