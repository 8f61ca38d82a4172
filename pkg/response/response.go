// Package response implements the uniform API envelope. Every endpoint,
// including panics caught by the recoverer, answers with this shape. The
// transport status always equals the envelope code.
package response

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

const (
	StatusSuccess      = "success"
	StatusError        = "error"
	StatusPartialError = "partial_error"
)

type Response struct {
	Status  string `json:"status" example:"success"`
	Code    int    `json:"code" example:"200"`
	Message string `json:"message" example:"ok"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// FieldError describes a validation problem on a single request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func Write(w http.ResponseWriter, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func Success(w http.ResponseWriter, message string, data any) {
	Write(w, Response{
		Status:  StatusSuccess,
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
	})
}

func Error(w http.ResponseWriter, code int, message string) {
	Write(w, Response{
		Status:  StatusError,
		Code:    code,
		Message: message,
	})
}

func ErrorWith(w http.ResponseWriter, code int, message string, errs any) {
	Write(w, Response{
		Status:  StatusError,
		Code:    code,
		Message: message,
		Errors:  errs,
	})
}

// PartialError reports a batch where only some records were rejected by
// the engine. The envelope carries the per-record errors; code 400.
func PartialError(w http.ResponseWriter, message string, errs any) {
	Write(w, Response{
		Status:  StatusPartialError,
		Code:    http.StatusBadRequest,
		Message: message,
		Errors:  errs,
	})
}
