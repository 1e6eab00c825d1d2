package domain

import (
	"math/big"
	"time"
)

// Category groups assets that share an admin, a fee treasury and a rent
// depositor. Categories replace the original per-collection contract
// deployments: a category is a row, not a deployed contract.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Admin     string    `json:"admin"`     // may update depositor, mint assets
	Treasury  string    `json:"treasury"`  // receives marketplace fees
	Depositor string    `json:"depositor"` // sole address allowed to deposit rent
	FeeBps    int32     `json:"fee_bps"`   // marketplace fee in basis points
	CreatedOn time.Time `json:"created_on"`
}

// Asset is an NFT-like record representing a physical asset. Ownership is
// looked up live on every claim and purchase, never cached.
type Asset struct {
	TokenID    int64     `json:"token_id"`
	CategoryID int64     `json:"category_id"`
	Owner      string    `json:"owner"`
	Listed     bool      `json:"listed"`
	CreatedOn  time.Time `json:"created_on"`
	UpdatedOn  time.Time `json:"updated_on"`
}

// Listing is an active marketplace offer for an asset.
type Listing struct {
	TokenID      int64     `json:"token_id"`
	Seller       string    `json:"seller"`
	PaymentToken string    `json:"payment_token"`
	Price        *big.Int  `json:"price"`
	CreatedOn    time.Time `json:"created_on"`
}

// AssetPrice is the appraised value of an asset, maintained by the price
// ledger and served in batched lookups.
type AssetPrice struct {
	TokenID      int64     `json:"token_id"`
	PaymentToken string    `json:"payment_token"`
	Price        *big.Int  `json:"price"`
	UpdatedOn    time.Time `json:"updated_on"`
}

// Account is a wallet-address identity that can own assets and hold
// balances. Email is used for claimable-rent notices.
type Account struct {
	Address      string    `json:"address"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedOn    time.Time `json:"created_on"`
}
