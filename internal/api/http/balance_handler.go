package http

import (
	"net/http"

	"github.com/TangibleTNFT/tangible-marketplace/internal/service"

	"github.com/gorilla/mux"
)

type BalanceHandler struct {
	transferSvc service.TransferService
}

func NewBalanceHandler(transferSvc service.TransferService) *BalanceHandler {
	return &BalanceHandler{transferSvc: transferSvc}
}

// GetBalance returns the caller's balance in the given token.
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	caller := CallerAddress(r.Context())
	balance, err := h.transferSvc.BalanceOf(r.Context(), caller, token)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"address": caller,
		"token":   token,
		"balance": balance.String(),
	})
}

type fundRequest struct {
	To     string `json:"to"`
	Token  string `json:"token"`
	Amount string `json:"amount"`
}

// Fund credits an address; the service restricts it to the operator.
func (h *BalanceHandler) Fund(w http.ResponseWriter, r *http.Request) {
	var req fundRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.transferSvc.Fund(r.Context(), CallerAddress(r.Context()), req.To, req.Token, amount); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"to":     req.To,
		"token":  req.Token,
		"amount": amount.String(),
	})
}
