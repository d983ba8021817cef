package core

import (
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	ErrorConfigurationInvalid = "DWOLLA_CONFIGURATION_INVALID"
	ErrorMissingCallback      = "DWOLLA_MISSING_CALLBACK"
	ErrorMissingCredential    = "DWOLLA_MISSING_CREDENTIAL"
	ErrorMissingArgument      = "DWOLLA_MISSING_ARGUMENT"
	ErrorExternalFailure      = "DWOLLA_EXTERNAL_FAILURE"
	ErrorInternal             = "DWOLLA_INTERNAL_ERROR"
)

func configurationError(message string, metadata map[string]any) *goerrors.Error {
	err := goerrors.New(message, goerrors.CategoryBadInput).
		WithCode(http.StatusBadRequest).
		WithTextCode(ErrorConfigurationInvalid)
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

func missingCallbackError(operation string) *goerrors.Error {
	return goerrors.New("dwolla: missing callback", goerrors.CategoryBadInput).
		WithCode(http.StatusBadRequest).
		WithTextCode(ErrorMissingCallback).
		WithMetadata(map[string]any{"operation": operation})
}

func missingCredentialError(operation string, credential string) *goerrors.Error {
	return goerrors.New("dwolla: missing arg "+credential, goerrors.CategoryAuth).
		WithCode(http.StatusUnauthorized).
		WithTextCode(ErrorMissingCredential).
		WithMetadata(map[string]any{"operation": operation, "credential": credential})
}

func missingArgumentError(operation string, argument string) *goerrors.Error {
	return goerrors.NewValidation("dwolla: missing arg "+argument, goerrors.FieldError{
		Field:   argument,
		Message: "is required",
	}).
		WithCode(http.StatusBadRequest).
		WithTextCode(ErrorMissingArgument).
		WithMetadata(map[string]any{"operation": operation, "argument": argument})
}

func internalError(message string) *goerrors.Error {
	return goerrors.New(message, goerrors.CategoryInternal).
		WithCode(http.StatusInternalServerError).
		WithTextCode(ErrorInternal)
}

// IsMissingCallback reports whether err was raised for a nil completion.
func IsMissingCallback(err error) bool { return hasTextCode(err, ErrorMissingCallback) }

// IsMissingCredential reports whether err was raised for an absent access
// token or application credential.
func IsMissingCredential(err error) bool { return hasTextCode(err, ErrorMissingCredential) }

// IsMissingArgument reports whether err was raised for an empty required
// endpoint argument.
func IsMissingArgument(err error) bool { return hasTextCode(err, ErrorMissingArgument) }

func IsConfigurationError(err error) bool { return hasTextCode(err, ErrorConfigurationInvalid) }

func hasTextCode(err error, textCode string) bool {
	if err == nil {
		return false
	}
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		return false
	}
	return richErr.TextCode == textCode
}

func clientErrorMapper(err error) *goerrors.Error {
	if err == nil {
		return nil
	}

	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return ensureErrorEnvelope(richErr)
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case strings.Contains(msg, "required"), strings.Contains(msg, "invalid"):
		return ensureErrorEnvelope(goerrors.New(err.Error(), goerrors.CategoryBadInput).
			WithTextCode(ErrorConfigurationInvalid))
	}

	mapped := goerrors.MapToError(err, goerrors.DefaultErrorMappers())
	return ensureErrorEnvelope(mapped)
}

func ensureErrorEnvelope(err *goerrors.Error) *goerrors.Error {
	if err == nil {
		return nil
	}
	if err.Code == 0 {
		err.Code = clientHTTPStatus(err.Category)
	}
	if strings.TrimSpace(err.TextCode) == "" {
		err.TextCode = defaultTextCode(err.Category)
	}
	if err.Category == goerrors.CategoryInternal && strings.TrimSpace(err.Message) == "" {
		err.Message = "An unexpected error occurred"
	}
	return err
}

func defaultTextCode(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return ErrorConfigurationInvalid
	case goerrors.CategoryAuth, goerrors.CategoryAuthz:
		return ErrorMissingCredential
	case goerrors.CategoryExternal:
		return ErrorExternalFailure
	default:
		return ErrorInternal
	}
}

func clientHTTPStatus(category goerrors.Category) int {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return http.StatusBadRequest
	case goerrors.CategoryAuth:
		return http.StatusUnauthorized
	case goerrors.CategoryAuthz:
		return http.StatusForbidden
	case goerrors.CategoryExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
