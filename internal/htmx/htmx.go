// Package htmx renders templ components for HTMX and full-page requests.
package htmx

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// RequestHeaderKey is the header HTMX sets on requests it issues.
const RequestHeaderKey = "HX-Request"

// IsHTMXRequest reports whether the request was initiated by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeaderKey), "true")
}

// RenderPage renders fragment for HTMX requests and full otherwise.
// If either component is nil the other is used for both paths.
func RenderPage(w http.ResponseWriter, r *http.Request, fragment, full templ.Component) {
	w.Header().Add("Vary", RequestHeaderKey)

	target := full
	if IsHTMXRequest(r) {
		target = fragment
	}
	if target == nil {
		target = fragment
		if target == nil {
			target = full
		}
	}
	if target == nil {
		return
	}
	templ.Handler(target).ServeHTTP(w, r)
}

// Render writes a component with the given status code.
func Render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	templ.Handler(c, templ.WithStatus(status)).ServeHTTP(w, r)
}
