// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// hideMethodNotAllowed is registered as the router's MethodNotAllowed
// handler. A path that exists under another method answers 404, so probing
// with the wrong verb does not reveal the route table.
//
// Parameterised patterns such as /api/devices/{deviceID} are matched
// through [chi.Mux.Match], so they are covered as well.
func hideMethodNotAllowed(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	}
}
