package http

import (
	"math/big"
	"net/http"
	"time"

	"github.com/TangibleTNFT/tangible-marketplace/internal/domain"
	"github.com/TangibleTNFT/tangible-marketplace/internal/metrics"
	"github.com/TangibleTNFT/tangible-marketplace/internal/service"
)

// RentHandler exposes the rent vesting ledger over HTTP.
type RentHandler struct {
	rentSvc service.RentService
	metrics *metrics.Metrics
}

func NewRentHandler(rentSvc service.RentService, m *metrics.Metrics) *RentHandler {
	return &RentHandler{rentSvc: rentSvc, metrics: m}
}

type depositRequest struct {
	RentToken string `json:"rent_token"`
	Amount    string `json:"amount"`
	EndTime   int64  `json:"end_time"` // unix seconds
}

func (h *RentHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	tokenID, err := pathTokenID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var req depositRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		respondError(w, err)
		return
	}

	caller := CallerAddress(r.Context())
	err = h.rentSvc.Deposit(r.Context(), caller, tokenID, req.RentToken, amount, time.Unix(req.EndTime, 0))
	if err != nil {
		respondError(w, err)
		return
	}
	if h.metrics != nil {
		h.metrics.RentDepositsTotal.WithLabelValues(req.RentToken).Inc()
		f, _ := new(big.Float).SetInt(amount).Float64()
		h.metrics.RentDepositVolume.WithLabelValues(req.RentToken).Add(f)
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"token_id":   tokenID,
		"rent_token": req.RentToken,
		"amount":     amount.String(),
	})
}

func (h *RentHandler) Claimable(w http.ResponseWriter, r *http.Request) {
	tokenID, err := pathTokenID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	claimable, err := h.rentSvc.ClaimableRentForToken(r.Context(), tokenID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"token_id":  tokenID,
		"claimable": claimable.String(),
	})
}

func (h *RentHandler) Claim(w http.ResponseWriter, r *http.Request) {
	tokenID, err := pathTokenID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	caller := CallerAddress(r.Context())
	paid, err := h.rentSvc.ClaimRentForToken(r.Context(), caller, tokenID)
	if err != nil {
		respondError(w, err)
		return
	}
	record, err := h.rentSvc.GetRentRecord(r.Context(), tokenID)
	if err != nil {
		respondError(w, err)
		return
	}
	if h.metrics != nil {
		h.metrics.RentClaimsTotal.WithLabelValues(record.RentToken).Inc()
		f, _ := new(big.Float).SetInt(paid).Float64()
		h.metrics.RentClaimVolume.WithLabelValues(record.RentToken).Add(f)
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"token_id":   tokenID,
		"claimer":    caller,
		"rent_token": record.RentToken,
		"amount":     paid.String(),
	})
}

func (h *RentHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	tokenID, err := pathTokenID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	record, err := h.rentSvc.GetRentRecord(r.Context(), tokenID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, record)
}

type updateDepositorRequest struct {
	Depositor string `json:"depositor"`
}

func (h *RentHandler) UpdateDepositor(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathInt64(r, "categoryID")
	if err != nil {
		respondError(w, err)
		return
	}
	var req updateDepositorRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	caller := CallerAddress(r.Context())
	if err := h.rentSvc.UpdateDepositor(r.Context(), caller, categoryID, req.Depositor); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"category_id": categoryID,
		"depositor":   req.Depositor,
	})
}

func (h *RentHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	tokenID, err := pathTokenID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	page := queryInt32(r, "page", 1)
	pageSize := queryInt32(r, "page_size", 20)
	events, total, err := h.rentSvc.ListRentEvents(r.Context(), tokenID, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	if events == nil {
		events = []domain.RentEvent{}
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"events": events,
		"total":  total,
	})
}
