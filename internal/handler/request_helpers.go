package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// DefaultListLimit is the page size used when the caller does not pass one
const DefaultListLimit = 500

// parsePageParams reads limit/offset query parameters with defaults.
// Range validation (limit > 0, offset >= 0) is owned by the services.
func parsePageParams(r *http.Request) (int, int, bool) {
	limit := DefaultListLimit
	offset := 0

	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, false
		}
		limit = parsed
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, false
		}
		offset = parsed
	}

	return limit, offset, true
}

// lootboxNameParam returns the {name} route parameter. Lootbox names may
// contain spaces, which arrive percent-encoded in the path.
func lootboxNameParam(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

// parseFloatParam reads an optional float query parameter
func parseFloatParam(r *http.Request, name string, fallback float64) (float64, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback, true
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}
