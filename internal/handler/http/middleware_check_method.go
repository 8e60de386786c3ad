// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// candidateMethods are probed when building the Allow header.
var candidateMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// It answers 405 Method Not Allowed with the JSON error body and an Allow
// header listing the methods router serves for the requested path. Mounted
// sub-routers are entered with the remaining path and the final lookup goes
// through [chi.Routes.Match], so parameterised patterns resolve the same way
// as during normal routing.
//
// Usage:
//
//	router := chi.NewRouter()
//	router.MethodNotAllowed(CheckHTTPMethod(router))
//	// ... register routes ...
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(router, r.URL.Path)
		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		writeError(w, http.StatusMethodNotAllowed,
			"The method "+r.Method+" is not allowed for the requested URL.")
	}
}

func allowedMethods(router chi.Routes, path string) []string {
	var allowed []string
	for _, method := range candidateMethods {
		if routeMatches(router, method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

// routeMatches reports whether routes serves method on path. Paths under a
// mounted sub-router are resolved inside it, since the mount point itself
// accepts every method.
func routeMatches(routes chi.Routes, method, path string) bool {
	for _, route := range routes.Routes() {
		if route.SubRoutes == nil || !strings.HasSuffix(route.Pattern, "/*") {
			continue
		}

		mountPath := strings.TrimSuffix(route.Pattern, "/*")
		if path != mountPath && !strings.HasPrefix(path, mountPath+"/") {
			continue
		}

		return routeMatches(route.SubRoutes, method, "/"+strings.TrimPrefix(path[len(mountPath):], "/"))
	}

	return routes.Match(chi.NewRouteContext(), method, path)
}
