package commands

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes share the configdocs.* namespace with the command message
// validation codes so hosts can route every command failure consistently.
const (
	codeValidationFailed = "CONFIGDOCS_COMMAND_VALIDATION_FAILED"
	codeContextCanceled  = "CONFIGDOCS_COMMAND_CANCELED"
	codeContextTimeout   = "CONFIGDOCS_COMMAND_TIMEOUT"
	codeContextError     = "CONFIGDOCS_COMMAND_CONTEXT_ERROR"
	codeExecutionFailed  = "CONFIGDOCS_COMMAND_EXECUTION_FAILED"
)

func wrapValidationError(err error) error {
	return wrap(err, goerrors.CategoryValidation, "configdocs command validation failed", codeValidationFailed)
}

func wrapContextError(err error) error {
	switch err {
	case nil:
		return nil
	case context.Canceled:
		return wrap(err, goerrors.CategoryCommand, "configdocs command cancelled", codeContextCanceled)
	case context.DeadlineExceeded:
		return wrap(err, goerrors.CategoryCommand, "configdocs command deadline exceeded", codeContextTimeout)
	default:
		return wrap(err, goerrors.CategoryCommand, "configdocs command context error", codeContextError)
	}
}

func wrapExecuteError(err error) error {
	return wrap(err, goerrors.CategoryCommand, "configdocs command execution failed", codeExecutionFailed)
}

func wrap(err error, category goerrors.Category, message, code string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, category, message).WithTextCode(code)
}
