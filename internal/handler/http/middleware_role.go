package http

import (
	"net/http"
	"slices"

	"github.com/minhng-dev/taskblog/internal/apperr"
	"github.com/minhng-dev/taskblog/internal/logger"
	"github.com/minhng-dev/taskblog/internal/utils"
)

// withRole is an HTTP middleware factory that restricts a route to the given
// account roles. It must run after [Handler.auth], which places the role
// claim in the request context.
//
// A request whose token carries no role, or a role outside allowedRoles, is
// rejected with a 403 failure envelope.
func (h *Handler) withRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			role, ok := utils.GetUserRoleFromContext(r.Context())
			if !ok || role == "" {
				log.Debug().Msg("no role claim on authenticated request")
				renderError(w, r, apperr.New(apperr.Forbidden, "You are not authorized to access this resource."))
				return
			}

			if !slices.Contains(allowedRoles, role) {
				log.Debug().Str("role", role).Msg("role not allowed for route")
				renderError(w, r, apperr.New(apperr.Forbidden, "You are not authorized to access this resource."))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
