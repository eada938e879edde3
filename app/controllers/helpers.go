// Package controllers maps HTTP requests onto the services and service
// errors back onto status codes. Error classification happens exactly once,
// here, via pkg/apperr.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/storefront/pkg/apperr"
	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/response"
)

// idParam parses the {id} path parameter.
func idParam(r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// pageParam parses the optional {page} path parameter. Absent or
// non-numeric values default to page 1; the services reject page <= 0.
func pageParam(r *http.Request) int {
	raw := chi.URLParam(r, "page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}

// fail writes a classified service error. Internal errors are logged with
// the request-scoped logger; everything else is the client's problem.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	if fields := apperr.FieldsOf(err); len(fields) > 0 {
		response.ValidationError(w, fields)
		return
	}

	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.WithCtx(r.Context()).Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error(),
		)
		response.Error(w, status, "Internal Server Error")
		return
	}

	response.Error(w, status, err.Error())
}

// badRequest writes a 400 for malformed request bodies.
func badRequest(w http.ResponseWriter, err error) {
	response.Error(w, http.StatusBadRequest, err.Error())
}
