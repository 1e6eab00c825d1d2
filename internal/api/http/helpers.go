package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"

	"github.com/TangibleTNFT/tangible-marketplace/internal/domain"
	"github.com/TangibleTNFT/tangible-marketplace/internal/logger"
	"github.com/TangibleTNFT/tangible-marketplace/internal/security"

	"github.com/gorilla/mux"
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// respondError maps service sentinels onto HTTP statuses and stable reason
// codes. Everything unrecognized is a 500 with the detail kept server-side.
func respondError(w http.ResponseWriter, err error) {
	var status int
	var code string
	switch {
	case errors.Is(err, domain.ErrInvalidArgument), errors.Is(err, domain.ErrRentTokenMismatch):
		status, code = http.StatusBadRequest, "INVALID_ARGUMENT"
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, security.ErrInvalidToken), errors.Is(err, security.ErrExpiredToken):
		status, code = http.StatusForbidden, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrNotFound):
		status, code = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrNothingToClaim):
		status, code = http.StatusConflict, "NOTHING_TO_CLAIM"
	case errors.Is(err, domain.ErrInsufficientFunds):
		status, code = http.StatusConflict, "INSUFFICIENT_FUNDS"
	case errors.Is(err, domain.ErrAlreadyListed), errors.Is(err, domain.ErrNotListed):
		status, code = http.StatusConflict, "LISTING_CONFLICT"
	default:
		logger.Error("Internal error", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error", Code: "INTERNAL"})
		return
	}
	respondJSON(w, status, errorBody{Error: err.Error(), Code: code})
}

func pathTokenID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["tokenID"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed token id %q", domain.ErrInvalidArgument, raw)
	}
	return id, nil
}

func pathInt64(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed %s %q", domain.ErrInvalidArgument, name, raw)
	}
	return id, nil
}

// parseAmount parses a decimal string into a non-negative big.Int.
func parseAmount(raw string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, fmt.Errorf("%w: malformed amount %q", domain.ErrInvalidArgument, raw)
	}
	if amount.Sign() < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", domain.ErrInvalidArgument)
	}
	return amount, nil
}

func queryInt32(r *http.Request, name string, fallback int32) int32 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(v)
}

func decodeBody(r *http.Request, into any) error {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		return fmt.Errorf("%w: malformed request body", domain.ErrInvalidArgument)
	}
	return nil
}
