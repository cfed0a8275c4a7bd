package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"fitpet/internal/service"
)

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListUsers is the ADMIN-gated credential listing.
// GET {base}/admin/users -> 200 [user...] | 401 | 403.
func ListUsers(svc *service.AuthService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			translateError(w, lg, err)
			return
		}
		out := make([]userResponse, 0, len(users))
		for _, u := range users {
			roles := make([]string, 0, len(u.Roles))
			for _, role := range u.Roles {
				roles = append(roles, role.Name)
			}
			out = append(out, userResponse{ID: u.ID, Username: u.Username, Roles: roles, CreatedAt: u.CreatedAt})
		}
		respondJSON(w, http.StatusOK, out)
	}
}
