package dto

import (
	"net/http"
	"time"
)

const DefaultSuccessMessage = "request succeeded"

// EvaluateRequest names a truth and a prediction BIO file on the server.
type EvaluateRequest struct {
	TrueFilePath string `json:"trueFilePath" example:"data/truth.txt"`
	PredFilePath string `json:"predFilePath" example:"data/pred.txt"`
}

// CommonResult is the envelope of every metrics API response.
type CommonResult struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	RequestID string    `json:"requestId,omitempty"`
	Data      any       `json:"data"`
}

func NewResult(requestID string) *CommonResult {
	return &CommonResult{
		Timestamp: time.Now(),
		Message:   DefaultSuccessMessage,
		RequestID: requestID,
	}
}

func (r *CommonResult) WithData(data any) *CommonResult {
	r.Data = data
	return r
}

func (r *CommonResult) WithMessage(msg string) *CommonResult {
	r.Message = msg
	return r
}

func (r *CommonResult) Success() *CommonResult {
	r.Status = http.StatusOK
	return r
}

func (r *CommonResult) Fail(status int) *CommonResult {
	r.Status = status
	return r
}
