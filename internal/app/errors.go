package app

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/tkoseoglu/theatre-reservation-system/api"
	"github.com/tkoseoglu/theatre-reservation-system/internal/domain"
	appvalidator "github.com/tkoseoglu/theatre-reservation-system/internal/validator"
)

const (
	ErrInternalServer     = "The server encountered a problem and could not process your request"
	ErrNotFound           = "The requested resource not found"
	ErrUnauthorizedAccess = "You must be authenticated to access this resource"
	ErrNotPermitted       = "Your user account doesn't have the necessary permissions to access this resource"
	ErrInvalidCredentials = "Invalid authentication credentials"
	ErrFailedValidation   = "One or more fields failed validation"
	ErrTransient          = "The request could not be completed in time, please retry"
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) unauthorizedAccessResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, ErrUnauthorizedAccess)
}

func (app *Application) notPermittedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusForbidden, ErrNotPermitted)
}

func (app *Application) invalidCredentialsResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, ErrInvalidCredentials)
}

// transientErrorResponse reports a timed out or otherwise retryable store
// failure. The reservation request is safe to retry as-is: either it never
// committed, or the retry runs into the seat conflict response.
func (app *Application) transientErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	w.Header().Set("Retry-After", "1")
	app.errorResponse(w, r, http.StatusServiceUnavailable, ErrTransient)
}

// failedValidationResponse maps validator.ValidationErrors into the
// field-addressable response shape.
func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		app.serverErrorResponse(w, r, err)
		return
	}

	fieldErrors := make([]api.ValidationError, 0, len(validationErrors))
	for _, vErr := range validationErrors {
		fieldErrors = append(fieldErrors, api.ValidationError{
			Field: vErr.Field(),
			Issue: appvalidator.ValidationMessage(vErr),
		})
	}

	app.validationErrorResponse(w, r, fieldErrors)
}

// seatValidationResponse reports out-of-bounds seat picks, one entry per
// violated field, aggregated rather than first-failure-only.
func (app *Application) seatValidationResponse(w http.ResponseWriter, r *http.Request, violations []domain.SeatViolation) {
	fieldErrors := make([]api.ValidationError, 0, len(violations))
	for _, v := range violations {
		fieldErrors = append(fieldErrors, api.ValidationError{
			Field: v.Field,
			Issue: v.Issue,
		})
	}

	app.validationErrorResponse(w, r, fieldErrors)
}

func (app *Application) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors []api.ValidationError) {
	resp := api.ValidationErrorResponse{
		Message:          ErrFailedValidation,
		ValidationErrors: fieldErrors,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
	}

	err := app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) seatConflictResponse(w http.ResponseWriter, r *http.Request, seatErr *domain.SeatTakenError) {
	resp := api.SeatConflictResponse{
		Message:   seatErr.Error(),
		Row:       seatErr.Row,
		Seat:      seatErr.Seat,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, http.StatusConflict, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}
