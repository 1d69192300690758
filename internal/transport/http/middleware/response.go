package middleware

import (
	"net/http"

	"github.com/go-chi/render"
)

// writeJSONError writes a {"message": msg} body with the given status.
func writeJSONError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, map[string]string{"message": msg})
}
