package net

import (
	"net/http"

	perr "postanalyzer/internal/platform/errors"
)

// ErrorBody is the error payload every transport writes
// detail carries the human message; code and request_id help correlate
type ErrorBody struct {
	Detail    string         `json:"detail"`
	Code      perr.ErrorCode `json:"code"`
	Field     string         `json:"field,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
}

// Error builds the status and error body for err
// a nil err yields 200 and a zero body so callers can branch on status alone
func Error(err error, reqID string) (int, ErrorBody) {
	if err == nil {
		return http.StatusOK, ErrorBody{}
	}
	w := perr.WireFrom(err)
	return perr.HTTPStatus(err), ErrorBody{
		Detail:    w.Detail,
		Code:      w.Code,
		Field:     w.Field,
		RequestID: reqID,
	}
}
