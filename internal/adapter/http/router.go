package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Routes bundles every handler and the optional middleware the API mounts.
// Nil middleware is simply not installed.
type Routes struct {
	Health      *Handler
	Facilities  *FacilityHandler
	Forms       *FormHandler
	Submissions *SubmissionHandler
	Auth        *AuthHandler
	Upload      *UploadHandler
	Metrics     http.Handler

	// RequireAuth guards the console API when AUTH_ENABLED is set.
	RequireAuth echo.MiddlewareFunc
	// Authenticate always parses a bearer token (for /auth/me).
	Authenticate echo.MiddlewareFunc
	// Idempotency wraps mutating facility routes.
	Idempotency echo.MiddlewareFunc
}

func (r Routes) Register(e *echo.Echo) {
	e.GET("/health", r.Health.Health)
	if r.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.Metrics))
	}

	if r.Auth != nil {
		e.POST("/auth/login", r.Auth.Login)
		e.GET("/auth/me", r.Auth.Me, nonNil(r.Authenticate)...)
	}

	// group middleware runs first, so auth is checked before a key is reserved
	guard := nonNil(r.RequireAuth)
	idem := nonNil(r.Idempotency)

	fac := e.Group("/facility", guard...)
	fac.POST("", r.Facilities.Create, idem...)
	fac.GET("", r.Facilities.List)
	fac.GET("/:id", r.Facilities.Get)
	fac.PUT("/:id", r.Facilities.Update, idem...)
	fac.PATCH("/:id/approve", r.Facilities.Approve, idem...)
	fac.GET("/:id/audit-logs", r.Facilities.AuditTrail)

	if r.Forms != nil {
		g := e.Group("/forms", guard...)
		g.POST("", r.Forms.Create)
		g.GET("", r.Forms.List)
		g.GET("/:id", r.Forms.Get)
		g.PUT("/:id", r.Forms.Update)
		g.DELETE("/:id", r.Forms.Delete)
	}
	if r.Submissions != nil {
		g := e.Group("/submissions", guard...)
		g.POST("", r.Submissions.Create)
		g.GET("", r.Submissions.List)
		g.GET("/:id", r.Submissions.Get)
		g.PUT("/:id", r.Submissions.Update)
		g.DELETE("/:id", r.Submissions.Delete)
	}
	if r.Upload != nil {
		e.POST("/upload", r.Upload.Upload, guard...)
	}
}

func nonNil(mws ...echo.MiddlewareFunc) []echo.MiddlewareFunc {
	out := make([]echo.MiddlewareFunc, 0, len(mws))
	for _, m := range mws {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}
