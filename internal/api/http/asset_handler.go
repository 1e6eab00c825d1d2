package http

import (
	"net/http"

	"github.com/TangibleTNFT/tangible-marketplace/internal/domain"
	"github.com/TangibleTNFT/tangible-marketplace/internal/service"
)

type AssetHandler struct {
	assetSvc service.AssetService
	priceSvc service.PriceService
}

func NewAssetHandler(assetSvc service.AssetService, priceSvc service.PriceService) *AssetHandler {
	return &AssetHandler{assetSvc: assetSvc, priceSvc: priceSvc}
}

type createCategoryRequest struct {
	Name      string `json:"name"`
	Treasury  string `json:"treasury"`
	Depositor string `json:"depositor"`
	FeeBps    int32  `json:"fee_bps"`
}

// CreateCategory makes the caller the admin of the new category.
func (h *AssetHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	category := &domain.Category{
		Name:      req.Name,
		Admin:     CallerAddress(r.Context()),
		Treasury:  req.Treasury,
		Depositor: req.Depositor,
		FeeBps:    req.FeeBps,
	}
	if err := h.assetSvc.CreateCategory(r.Context(), category); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, category)
}

func (h *AssetHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "categoryID")
	if err != nil {
		respondError(w, err)
		return
	}
	category, err := h.assetSvc.GetCategory(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, category)
}

type mintAssetRequest struct {
	Owner string `json:"owner"`
}

func (h *AssetHandler) MintAsset(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathInt64(r, "categoryID")
	if err != nil {
		respondError(w, err)
		return
	}
	var req mintAssetRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	asset, err := h.assetSvc.MintAsset(r.Context(), CallerAddress(r.Context()), categoryID, req.Owner)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, asset)
}

func (h *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	tokenID, err := pathTokenID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	asset, err := h.assetSvc.GetAsset(r.Context(), tokenID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, asset)
}

type transferAssetRequest struct {
	NewOwner string `json:"new_owner"`
}

func (h *AssetHandler) TransferAsset(w http.ResponseWriter, r *http.Request) {
	tokenID, err := pathTokenID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var req transferAssetRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if err := h.assetSvc.TransferAsset(r.Context(), CallerAddress(r.Context()), tokenID, req.NewOwner); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"token_id": tokenID,
		"owner":    req.NewOwner,
	})
}

func (h *AssetHandler) ListMyAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.assetSvc.ListAssetsByOwner(r.Context(), CallerAddress(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	if assets == nil {
		assets = []domain.Asset{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"assets": assets})
}

type setPriceRequest struct {
	PaymentToken string `json:"payment_token"`
	Price        string `json:"price"`
}

func (h *AssetHandler) SetPrice(w http.ResponseWriter, r *http.Request) {
	tokenID, err := pathTokenID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var req setPriceRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	price, err := parseAmount(req.Price)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.priceSvc.SetPrice(r.Context(), CallerAddress(r.Context()), tokenID, req.PaymentToken, price); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"token_id": tokenID,
		"price":    price.String(),
	})
}

type batchPricesRequest struct {
	TokenIDs []int64 `json:"token_ids"`
}

// BatchPrices is the batched price lookup; tokens without a stored price
// are absent from the result.
func (h *AssetHandler) BatchPrices(w http.ResponseWriter, r *http.Request) {
	var req batchPricesRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	prices, err := h.priceSvc.PricesForTokens(r.Context(), req.TokenIDs)
	if err != nil {
		respondError(w, err)
		return
	}
	if prices == nil {
		prices = []domain.AssetPrice{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"prices": prices})
}
