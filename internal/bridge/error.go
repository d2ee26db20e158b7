package bridge

import (
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Stable error codes shared with the backend. Unknown codes still surface;
// the classifier in the vault layer falls back to a generic notice for them.
const (
	CodeVaultLocked      = "VAULT_LOCKED"
	CodeNetworkError     = "NETWORK_ERROR"
	CodeValidationError  = "VALIDATION_ERROR"
	CodeFolderNameExists = "FOLDER_NAME_EXISTS"
	CodeNotFound         = "NOT_FOUND"
	CodeInternalError    = "INTERNAL_ERROR"
)

// Error is the structured failure object every backend command may return.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsError extracts the structured backend error from err, if present.
func AsError(err error) (*Error, bool) {
	var be *Error
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// CommandError builds the status error a backend implementation returns for
// a failed command. Used by fake backends in tests and kept next to
// decodeError so both directions stay in sync.
func CommandError(code, message string) error {
	payload, _ := json.Marshal(Error{Code: code, Message: message})
	return status.Error(codes.FailedPrecondition, string(payload))
}

// decodeError converts a gRPC call failure into a *Error. Transport-level
// failures (backend not running, timeouts) map to NETWORK_ERROR; everything
// else is expected to carry the JSON error object in the status message.
func decodeError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return &Error{Code: CodeNetworkError, Message: err.Error()}
	}

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return &Error{Code: CodeNetworkError, Message: st.Message()}
	}

	var be Error
	if jsonErr := json.Unmarshal([]byte(st.Message()), &be); jsonErr == nil && be.Code != "" {
		return &be
	}

	return &Error{Code: CodeInternalError, Message: st.Message()}
}
