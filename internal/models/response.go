package models

import "github.com/ascendia/ascendia-api/internal/errs"

// Response is the envelope for every error body.
type Response struct {
	Success bool              `json:"success"`
	Code    string            `json:"code,omitempty"`
	Status  int               `json:"status,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  []errs.FieldError `json:"errors,omitempty"`
}

// Hata response'u için helper
func ErrorResponse(err *errs.HTTPError) Response {
	return Response{
		Success: false,
		Code:    err.Code,
		Status:  err.Status,
		Error:   err.Message,
		Errors:  err.Errors,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}

// SubmissionResponse is returned after a document was stored.
type SubmissionResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

func SubmissionOK(id string) SubmissionResponse {
	return SubmissionResponse{Status: "ok", ID: id}
}
