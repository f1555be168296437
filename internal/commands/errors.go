package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes carried by classified command failures. Hosts branch on these
// instead of matching error strings.
const (
	codeValidationFailed = "COMMAND_VALIDATION_FAILED"
	codeContextCanceled  = "COMMAND_CONTEXT_CANCELED"
	codeContextTimeout   = "COMMAND_CONTEXT_TIMEOUT"
	codeContextError     = "COMMAND_CONTEXT_ERROR"
	codeExecutionFailed  = "COMMAND_EXECUTION_FAILED"
)

// alreadyClassified reports whether err was wrapped upstream, either here or
// in a nested handler. Wrapping twice would bury the original category.
func alreadyClassified(err error) bool {
	return goerrors.IsWrapped(err)
}

func wrapValidationError(err error) error {
	if err == nil || alreadyClassified(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command validation failed").
		WithTextCode(codeValidationFailed)
}

func wrapContextError(err error) error {
	if err == nil || alreadyClassified(err) {
		return err
	}
	code, message := codeContextError, "command context error"
	switch {
	case errors.Is(err, context.Canceled):
		code, message = codeContextCanceled, "command execution cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		code, message = codeContextTimeout, "command execution deadline exceeded"
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, message).
		WithTextCode(code)
}

func wrapExecuteError(err error) error {
	if err == nil || alreadyClassified(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed").
		WithTextCode(codeExecutionFailed)
}
