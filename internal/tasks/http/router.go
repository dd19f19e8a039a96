package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/service"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"

	_ "github.com/aussiebroadwan/taskboard/api/tasks" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      *httpx.Metrics

	store           store.Store
	AuthService     *service.AuthService
	IdentityService *service.IdentityService
	TaskService     *service.TaskService
	UserService     *service.UserService
	MFAService      *service.MFAService

	// Rate limit profiles; NewRouter copies the httpx defaults.
	StrictLimit   httpx.RateLimitConfig
	ModerateLimit httpx.RateLimitConfig
	LenientLimit  httpx.RateLimitConfig
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger, corsOrigins []string) *Router {
	r := &Router{
		Mux:           http.NewServeMux(),
		buildVersion:  buildVersion,
		startTime:     time.Now(),
		logger:        logger,
		metrics:       httpx.NewMetrics("taskboard"),
		store:         st,
		StrictLimit:   httpx.StrictLimit,
		ModerateLimit: httpx.ModerateLimit,
		LenientLimit:  httpx.LenientLimit,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.SecurityHeaders,
		httpx.CORS(corsOrigins),
	}

	return r
}

// Metrics exposes the router's collectors.
func (r *Router) Metrics() *httpx.Metrics { return r.metrics }

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerTasks()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Taskboard API
//	@version		0.1.0
//	@description	Task management API. Users manage their own tasks; admins manage users and may delete any task.
//	@description
//	@description				Tokens are JWTs signed with HS256 by default, or EdDSA when configured.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/taskboard
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// handle mounts h at pattern behind per-route metrics and mws.
func (r *Router) handle(pattern string, h http.HandlerFunc, mws ...httpx.Middleware) {
	all := append([]httpx.Middleware{r.metrics.Instrument(pattern)}, mws...)
	r.Mux.Handle(pattern, httpx.Chain(h, all...))
}

func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(identityAuthenticator{ids: r.IdentityService}, writeServiceError)
}

func (r *Router) admin() httpx.Middleware {
	return httpx.Require(requireRole(domain.RoleAdmin), writeServiceError)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService: r.AuthService,
		UserService: r.UserService,
		MFAService:  r.MFAService,
	}

	// Credential endpoints: strict, keyed by address and submitted email
	r.handle("POST /api/auth/signup", h.HandleSignUp,
		httpx.RateLimitByIPAndJSONField(r.StrictLimit, "email"),
	)
	r.handle("POST /api/auth/signin", h.HandleSignIn,
		httpx.RateLimitByIPAndJSONField(r.StrictLimit, "email"),
	)

	r.handle("GET /api/auth/me", h.HandleMe,
		r.authn(),
		httpx.RateLimitByUser(r.LenientLimit),
	)
	r.handle("PUT /api/auth/password", h.HandleChangePassword,
		r.authn(),
		httpx.RateLimitByUser(r.StrictLimit),
	)

	r.handle("POST /api/auth/mfa/enroll", h.HandleMFAEnroll,
		r.authn(),
		httpx.RateLimitByUser(r.ModerateLimit),
	)
	r.handle("POST /api/auth/mfa/verify", h.HandleMFAVerify,
		r.authn(),
		httpx.RateLimitByUser(r.StrictLimit),
	)
	r.handle("DELETE /api/auth/mfa", h.HandleMFADisable,
		r.authn(),
		httpx.RateLimitByUser(r.StrictLimit),
	)
}

func (r *Router) registerTasks() {
	h := &TaskHandler{TaskService: r.TaskService}

	r.handle("GET /api/tasks", h.HandleList,
		r.authn(),
		httpx.RateLimitByUser(r.LenientLimit),
	)
	r.handle("POST /api/tasks", h.HandleCreate,
		r.authn(),
		httpx.RateLimitByUser(r.ModerateLimit),
	)
	r.handle("GET /api/tasks/summary", h.HandleSummary,
		r.authn(),
		httpx.RateLimitByUser(r.LenientLimit),
	)
	r.handle("PUT /api/tasks/{id}", h.HandleUpdate,
		r.authn(),
		httpx.RateLimitByUser(r.ModerateLimit),
	)
	r.handle("DELETE /api/tasks/{id}", h.HandleDelete,
		r.authn(),
		r.admin(),
		httpx.RateLimitByUser(r.ModerateLimit),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.handle("GET /api/users", h.HandleList,
		r.authn(),
		r.admin(),
		httpx.RateLimitByUser(r.LenientLimit),
	)
	r.handle("PATCH /api/users/{id}/role", h.HandleUpdateRole,
		r.authn(),
		r.admin(),
		httpx.RateLimitByUser(r.ModerateLimit),
	)
}

func (r *Router) registerSystem() {
	livez := LivezHandler(r.startTime, r.buildVersion)
	readyz := ReadyzHandler(r.startTime, r.buildVersion, r.store, r.AuthService.Signer)

	r.handle("GET /livez", livez, httpx.RateLimitByIP(r.LenientLimit))
	r.handle("GET /api/health", livez, httpx.RateLimitByIP(r.LenientLimit))
	r.handle("GET /readyz", readyz, httpx.RateLimitByIP(r.LenientLimit))

	r.Mux.Handle("GET /metrics", r.metrics.Handler())
}
