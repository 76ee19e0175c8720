package interfaces

import (
	"net/http"
)

// RequireOwner enforces that the verified identity matches the {userID}
// path segment. The comparison runs before any store access, so a caller
// probing another user's paths cannot tell "not yours" from "does not
// exist".
func RequireOwner(respondJSON func(w http.ResponseWriter, status int, payload interface{})) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			verifiedID, ok := r.Context().Value("userID").(string)
			if !ok || verifiedID == "" {
				respondJSON(w, http.StatusUnauthorized, map[string]interface{}{"message": "Unauthorized"})
				return
			}
			if r.PathValue("userID") != verifiedID {
				respondJSON(w, http.StatusForbidden, map[string]interface{}{"message": "Access denied"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
