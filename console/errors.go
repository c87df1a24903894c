package console

import (
	"errors"
	"fmt"

	"biller/domain/services"
	"biller/domain/utils"

	log "github.com/sirupsen/logrus"
)

// ConsoleError represents a structured error with user-facing and internal messages
type ConsoleError struct {
	UserMessage string      // Message shown on the terminal
	LogMessage  string      // Internal message for logging
	Err         error       // Underlying error
	Context     interface{} // Additional context for logging
}

// Error implements the error interface
func (e *ConsoleError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.LogMessage, e.Err)
	}
	return e.LogMessage
}

// Unwrap returns the underlying error
func (e *ConsoleError) Unwrap() error {
	return e.Err
}

// NewUserError creates an error for user-caused issues (validation, insufficient funds, etc)
func NewUserError(userMessage string, logMessage string) *ConsoleError {
	return &ConsoleError{
		UserMessage: userMessage,
		LogMessage:  logMessage,
	}
}

// NewSystemError creates an error for system issues (persistence, unexpected state, etc)
func NewSystemError(err error, logMessage string) *ConsoleError {
	return &ConsoleError{
		UserMessage: "Something went wrong. Please try again.",
		LogMessage:  logMessage,
		Err:         err,
	}
}

// HandleError logs an error with context and prints the appropriate user
// message. Domain errors are translated to their user-facing wording here so
// the services never format terminal output.
func (a *App) HandleError(operation string, err error) {
	var consoleErr *ConsoleError
	if errors.As(err, &consoleErr) {
		log.WithFields(log.Fields{
			"operation": operation,
			"error":     consoleErr.Error(),
			"context":   consoleErr.Context,
		}).Error(consoleErr.LogMessage)
		a.style.PrintError(consoleErr.UserMessage)
		return
	}

	var insufficient *services.InsufficientFundsError
	var validation *services.ValidationError
	switch {
	case errors.As(err, &insufficient):
		a.style.PrintError(fmt.Sprintf("Insufficient funds. Available: %s", utils.FormatCurrency(insufficient.Available)))
	case errors.As(err, &validation):
		a.style.PrintError(capitalize(validation.Reason) + "!")
	case errors.Is(err, services.ErrInvalidAmount):
		a.style.PrintError("Amount must be greater than zero!")
	case errors.Is(err, services.ErrPersistence):
		a.style.PrintError("Failed to save transaction to file")
	case errors.Is(err, services.ErrAccountNotFound):
		a.style.PrintError("Account ID not found!")
	default:
		log.WithFields(log.Fields{
			"operation": operation,
			"error":     err.Error(),
		}).Error("Unexpected error in console operation")
		a.style.PrintError("Something went wrong. Please try again.")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
