package http

import (
	"net/http"

	"github.com/TangibleTNFT/tangible-marketplace/internal/metrics"
	"github.com/TangibleTNFT/tangible-marketplace/internal/service"
)

type MarketplaceHandler struct {
	marketSvc service.MarketplaceService
	metrics   *metrics.Metrics
}

func NewMarketplaceHandler(marketSvc service.MarketplaceService, m *metrics.Metrics) *MarketplaceHandler {
	return &MarketplaceHandler{marketSvc: marketSvc, metrics: m}
}

type listAssetRequest struct {
	PaymentToken string `json:"payment_token"`
	Price        string `json:"price"`
}

func (h *MarketplaceHandler) ListAsset(w http.ResponseWriter, r *http.Request) {
	tokenID, err := pathTokenID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var req listAssetRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	price, err := parseAmount(req.Price)
	if err != nil {
		respondError(w, err)
		return
	}
	listing, err := h.marketSvc.ListAsset(r.Context(), CallerAddress(r.Context()), tokenID, req.PaymentToken, price)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, listing)
}

func (h *MarketplaceHandler) DelistAsset(w http.ResponseWriter, r *http.Request) {
	tokenID, err := pathTokenID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.marketSvc.DelistAsset(r.Context(), CallerAddress(r.Context()), tokenID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"token_id": tokenID, "listed": false})
}

func (h *MarketplaceHandler) PurchaseAsset(w http.ResponseWriter, r *http.Request) {
	tokenID, err := pathTokenID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	asset, err := h.marketSvc.PurchaseAsset(r.Context(), CallerAddress(r.Context()), tokenID)
	if err != nil {
		respondError(w, err)
		return
	}
	if h.metrics != nil {
		h.metrics.PurchasesTotal.Inc()
	}
	respondJSON(w, http.StatusOK, asset)
}

func (h *MarketplaceHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	tokenID, err := pathTokenID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	listing, err := h.marketSvc.GetListing(r.Context(), tokenID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}
