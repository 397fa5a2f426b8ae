package http

import "time"

// QueryReq is the inbound assistant query payload.
type QueryReq struct {
	UserID  string `json:"user_id,omitempty"`
	Message string `json:"message"`
}

// QueryResp is the assistant's decision for one turn.
type QueryResp struct {
	Intent        string    `json:"intent"`
	Answer        string    `json:"answer"`
	ShowOrderForm bool      `json:"show_order_form"`
	Meta          QueryMeta `json:"meta"`
}

// QueryMeta describes how the intent was obtained.
type QueryMeta struct {
	Source         string     `json:"source"`
	Score          *float64   `json:"score,omitempty"`
	RequestedStart *time.Time `json:"requested_start,omitempty"`
}

// ErrorCode is a machine-readable error category.
type ErrorCode string

const (
	ErrorCode_BadRequest ErrorCode = "BAD_REQUEST"
	ErrorCode_NotFound   ErrorCode = "NOT_FOUND"
	ErrorCode_Internal   ErrorCode = "INTERNAL"
)

// ErrorResp is the error envelope for all endpoints.
type ErrorResp struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the error code and message.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}
