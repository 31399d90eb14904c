package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventticketing/internal/delivery/http/helpers"
	"eventticketing/internal/delivery/http/middleware"
	"eventticketing/internal/domain"
)

// errorMapping pairs a domain sentinel with its HTTP status and API error code.
type errorMapping struct {
	err    error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{domain.ErrNotFound, http.StatusNotFound, helpers.ErrCodeNotFound},
	{domain.ErrUnauthorized, http.StatusForbidden, helpers.ErrCodeForbidden},
	{domain.ErrAlreadyExists, http.StatusConflict, helpers.ErrCodeAlreadyExists},
	{domain.ErrInvalidQuantity, http.StatusBadRequest, helpers.ErrCodeInvalidQuantity},
	{domain.ErrAlreadyChecker, http.StatusConflict, helpers.ErrCodeAlreadyChecker},
	{domain.ErrNotAChecker, http.StatusConflict, helpers.ErrCodeNotAChecker},
	{domain.ErrAlreadyHasTicket, http.StatusConflict, helpers.ErrCodeAlreadyHasTicket},
	{domain.ErrNoUnclaimedTicket, http.StatusConflict, helpers.ErrCodeNoUnclaimedTicket},
	{domain.ErrSoldOut, http.StatusConflict, helpers.ErrCodeSoldOut},
	{domain.ErrInsufficientFunds, http.StatusPaymentRequired, helpers.ErrCodeInsufficientFunds},
	{domain.ErrZeroBalance, http.StatusConflict, helpers.ErrCodeZeroBalance},
	{domain.ErrAssetTransferFailed, http.StatusBadGateway, helpers.ErrCodeAssetTransferFailed},
	{domain.ErrReentrantCall, http.StatusConflict, helpers.ErrCodeReentrantCall},
	{domain.ErrInvalidInput, http.StatusBadRequest, helpers.ErrCodeBadRequest},
}

// writeServiceError writes the response for an error returned by a service.
// Unmapped errors are logged and reported as 500. Asset transfer failures are
// logged too since they carry the gateway's cause.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			if m.status == http.StatusBadGateway {
				logger.WarnContext(r.Context(), "asset gateway failed", "path", r.URL.Path, "method", r.Method, "err", err)
			}
			helpers.WriteJSONError(w, m.status, m.code, m.err.Error())
			return
		}
	}
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
}

// requireCaller returns the authenticated caller or writes 401.
func requireCaller(w http.ResponseWriter, r *http.Request) (domain.Address, bool) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return "", false
	}
	return caller, true
}
