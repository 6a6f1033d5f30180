package domain

// ShopView is what a signed in user sees when opening the shop.
type ShopView struct {
	Coins      int64            `json:"coins"`
	Inventory  []PurchaseRecord `json:"inventory"`
	ItemCounts map[string]int   `json:"itemCounts"`
	Catalog    ShopMetadata     `json:"catalog"`
}
