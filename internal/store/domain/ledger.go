package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	UsersCollection = "Users"

	CoinsField     = "coins"
	InventoryField = "inventory"

	DefaultStartBalance int64 = 1000
)

type UserLedger struct {
	UserID    string           `json:"-"`
	Coins     int64            `json:"coins"`
	Inventory []PurchaseRecord `json:"inventory"`
}

// PurchaseRecord is appended once per successful purchase and never changed.
// The same item id may appear several times.
type PurchaseRecord struct {
	PurchaseID   string    `json:"purchaseId"`
	ItemID       string    `json:"itemId"`
	Cost         int64     `json:"cost"`
	PurchaseDate time.Time `json:"purchaseDate"`
}

func NewPurchaseRecord(item CatalogItem, now time.Time) PurchaseRecord {
	return PurchaseRecord{
		PurchaseID:   uuid.NewString(),
		ItemID:       item.ItemID,
		Cost:         item.Cost,
		PurchaseDate: now.UTC(),
	}
}

func (l UserLedger) Validate() error {
	if l.Coins < 0 {
		return &CorruptedDocumentError{Msg: fmt.Sprintf("ledger of user %s has negative balance %d", l.UserID, l.Coins)}
	}

	return nil
}

// Apply returns the ledger after paying for record. The receiver is not modified.
func (l UserLedger) Apply(record PurchaseRecord) (UserLedger, error) {
	if record.Cost < 0 {
		return UserLedger{}, &InvalidArgumentsError{Msg: fmt.Sprintf("item %s has negative cost", record.ItemID)}
	}

	if l.Coins < record.Cost {
		return UserLedger{}, &InsufficientBalanceError{
			Msg: fmt.Sprintf("insufficient balance: have %d, need %d", l.Coins, record.Cost),
		}
	}

	inventory := make([]PurchaseRecord, 0, len(l.Inventory)+1)
	inventory = append(inventory, l.Inventory...)
	inventory = append(inventory, record)

	return UserLedger{
		UserID:    l.UserID,
		Coins:     l.Coins - record.Cost,
		Inventory: inventory,
	}, nil
}

// ItemCounts groups the inventory by item id.
func (l UserLedger) ItemCounts() map[string]int {
	counts := make(map[string]int, len(l.Inventory))
	for _, record := range l.Inventory {
		counts[record.ItemID]++
	}

	return counts
}
