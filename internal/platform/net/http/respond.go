// Package http provides the router seam, server, and JSON response helpers
package http

import (
	"encoding/json"
	stdhttp "net/http"

	"postanalyzer/internal/platform/logger"
	pnet "postanalyzer/internal/platform/net"
)

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Named("http").Error().Err(err).Msg("encode response")
	}
}

// RespondError maps a project error into the error body and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, body := pnet.Error(err, pnet.RequestID(r.Context()))
	JSON(w, status, body)
}

// ErrorDetail is a bare error body for responses that carry no project error
type ErrorDetail string

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
	// optional headers if a handler wants to add any
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	switch body := resp.Body.(type) {
	case error:
		RespondError(w, r, body)
		return
	case ErrorDetail:
		JSON(w, status, pnet.ErrorBody{Detail: string(body), RequestID: pnet.RequestID(r.Context())})
		return
	}

	// success bodies go out as-is, no envelope
	JSON(w, status, resp.Body)
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error returns a response that maps the error to status and error body
func Error(err error) Response { return Response{Body: err} }
