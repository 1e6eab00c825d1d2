package http

import (
	"net/http"

	"github.com/TangibleTNFT/tangible-marketplace/internal/metrics"
	"github.com/TangibleTNFT/tangible-marketplace/internal/security"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth        *AuthHandler
	Rent        *RentHandler
	Asset       *AssetHandler
	Marketplace *MarketplaceHandler
	Balance     *BalanceHandler
}

// NewRouter wires all routes. Everything under /api/v1 except signup/login
// requires a bearer token; /metrics and /healthz are open.
func NewRouter(h Handlers, tokens security.TokenManager, m *metrics.Metrics) *mux.Router {
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/v1/auth/signup", h.Auth.Signup).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/auth/login", h.Auth.Login).Methods(http.MethodPost)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(tokens))

	// Rent vesting ledger
	api.HandleFunc("/rent/{tokenID}/deposit", h.Rent.Deposit).Methods(http.MethodPost)
	api.HandleFunc("/rent/{tokenID}/claimable", h.Rent.Claimable).Methods(http.MethodGet)
	api.HandleFunc("/rent/{tokenID}/claim", h.Rent.Claim).Methods(http.MethodPost)
	api.HandleFunc("/rent/{tokenID}", h.Rent.GetRecord).Methods(http.MethodGet)
	api.HandleFunc("/rent/{tokenID}/events", h.Rent.ListEvents).Methods(http.MethodGet)
	api.HandleFunc("/categories/{categoryID}/depositor", h.Rent.UpdateDepositor).Methods(http.MethodPut)

	// Asset registry
	api.HandleFunc("/categories", h.Asset.CreateCategory).Methods(http.MethodPost)
	api.HandleFunc("/categories/{categoryID}", h.Asset.GetCategory).Methods(http.MethodGet)
	api.HandleFunc("/categories/{categoryID}/assets", h.Asset.MintAsset).Methods(http.MethodPost)
	api.HandleFunc("/assets/{tokenID}", h.Asset.GetAsset).Methods(http.MethodGet)
	api.HandleFunc("/assets/{tokenID}/transfer", h.Asset.TransferAsset).Methods(http.MethodPost)
	api.HandleFunc("/assets", h.Asset.ListMyAssets).Methods(http.MethodGet)

	// Price ledger
	api.HandleFunc("/assets/{tokenID}/price", h.Asset.SetPrice).Methods(http.MethodPut)
	api.HandleFunc("/prices/batch", h.Asset.BatchPrices).Methods(http.MethodPost)

	// Marketplace
	api.HandleFunc("/marketplace/{tokenID}/list", h.Marketplace.ListAsset).Methods(http.MethodPost)
	api.HandleFunc("/marketplace/{tokenID}/delist", h.Marketplace.DelistAsset).Methods(http.MethodPost)
	api.HandleFunc("/marketplace/{tokenID}/purchase", h.Marketplace.PurchaseAsset).Methods(http.MethodPost)
	api.HandleFunc("/marketplace/{tokenID}", h.Marketplace.GetListing).Methods(http.MethodGet)

	// Balances
	api.HandleFunc("/balances/{token}", h.Balance.GetBalance).Methods(http.MethodGet)
	api.HandleFunc("/balances/fund", h.Balance.Fund).Methods(http.MethodPost)

	return r
}
