/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

import "fmt"

// ErrorCode identifies the kind of failure a task operation reported.
type ErrorCode string

const (
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyCompleted ErrorCode = "ALREADY_COMPLETED"
	CodeInvalidInput     ErrorCode = "INVALID_INPUT"
)

// Sentinels for errors.Is. Only the Code is compared.
var (
	ErrNotFound         = &TaskError{Code: CodeNotFound}
	ErrAlreadyCompleted = &TaskError{Code: CodeAlreadyCompleted}
	ErrInvalidInput     = &TaskError{Code: CodeInvalidInput}
)

// TaskError provides structured error information for task operations.
// All codes are recoverable; the store stays usable after returning one.
type TaskError struct {
	Code    ErrorCode `json:"code"`
	ID      uint32    `json:"id,omitempty"`
	Message string    `json:"message"`
}

func (e *TaskError) Error() string {
	switch e.Code {
	case CodeNotFound:
		return fmt.Sprintf("Task #%d not found", e.ID)
	case CodeAlreadyCompleted:
		return fmt.Sprintf("Task #%d is already completed", e.ID)
	case CodeInvalidInput:
		return fmt.Sprintf("Invalid input: %s", e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// Is matches any TaskError carrying the same code.
func (e *TaskError) Is(target error) bool {
	t, ok := target.(*TaskError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewNotFound reports an id that is absent from the store.
func NewNotFound(id uint32) *TaskError {
	return &TaskError{Code: CodeNotFound, ID: id, Message: "task not found"}
}

// NewAlreadyCompleted reports a completion request on a completed task.
func NewAlreadyCompleted(id uint32) *TaskError {
	return &TaskError{Code: CodeAlreadyCompleted, ID: id, Message: "task already completed"}
}

// NewInvalidInput reports malformed caller input such as an unparseable id.
func NewInvalidInput(format string, args ...any) *TaskError {
	return &TaskError{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}
