package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/retell-relay/internal/domain"
)

// User-facing messages. The frontend displays these verbatim.
const (
	MsgInvalidBody              = "No se recibió un cuerpo JSON válido."
	MsgIncompleteParameters     = "Parámetros incompletos."
	DetailsIncompleteParameters = "Faltan 'from_number', 'agent_id', o 'to_number' (en dynamic_variables)."
	MsgUpstreamFailure          = "No se pudo procesar la llamada con Retell AI."
	MsgAgentNotFound            = "Agente no encontrado."
	MsgUnexpected               = "Ocurrió un error inesperado."
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrBadRequest),
		errors.Is(err, domain.ErrIncompleteParameters):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the user-facing message for err.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		return MsgInvalidBody
	case errors.Is(err, domain.ErrIncompleteParameters):
		return MsgIncompleteParameters
	case errors.Is(err, domain.ErrUpstreamCallFailure):
		return MsgUpstreamFailure
	default:
		return MsgUnexpected
	}
}

// GetErrorDetails returns the details string sent alongside the message.
// Upstream failures relay the provider error text; malformed bodies carry none.
func GetErrorDetails(err error) string {
	switch {
	case errors.Is(err, domain.ErrIncompleteParameters):
		return DetailsIncompleteParameters
	case errors.Is(err, domain.ErrUpstreamCallFailure):
		return upstreamDetails(err)
	default:
		return ""
	}
}

// upstreamError ties a provider failure to ErrUpstreamCallFailure while
// keeping the provider's own text as the error message.
type upstreamError struct {
	cause error
}

func (e *upstreamError) Error() string { return e.cause.Error() }

func (e *upstreamError) Unwrap() []error {
	return []error{domain.ErrUpstreamCallFailure, e.cause}
}

func newUpstreamError(cause error) error {
	return &upstreamError{cause: cause}
}

func upstreamDetails(err error) string {
	var ue *upstreamError
	if errors.As(err, &ue) {
		return ue.cause.Error()
	}
	return err.Error()
}
