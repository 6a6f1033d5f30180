package domain

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	GlobalSettingsCollection = "GlobalSettings"
	ShopMetadataID           = "shopMetadata"

	LastRefreshField    = "lastRefresh"
	NextRefreshField    = "nextRefresh"
	ItemsField          = "items"
	WallpapersField     = "wallpapers"
	ShelfColorsField    = "shelfColors"
	RotationWindowField = "rotationWindow"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type CatalogItem struct {
	ItemID          string `json:"itemId" yaml:"itemId" validate:"required,max=128"`
	Name            string `json:"name" yaml:"name" validate:"max=256"`
	Cost            int64  `json:"cost" yaml:"cost" validate:"gte=0"`
	ImageReference  string `json:"imageReference,omitempty" yaml:"imageReference"`
	LocksOnPurchase bool   `json:"locksOnPurchase,omitempty" yaml:"locksOnPurchase"`
	StyleID         string `json:"styleId,omitempty" yaml:"styleId"`
}

func (i CatalogItem) Validate() error {
	return validateStruct(i)
}

// DisplayName is what purchase messages call the item.
func (i CatalogItem) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}

	return i.ItemID
}

type CatalogSelection struct {
	Items       []string `json:"items"`
	Wallpapers  []string `json:"wallpapers"`
	ShelfColors []string `json:"shelfColors"`
}

type ShopMetadata struct {
	LastRefresh time.Time `json:"lastRefresh"`
	NextRefresh time.Time `json:"nextRefresh"`
	CatalogSelection
	// RotationWindow is the NextRefresh the current selection was made for.
	RotationWindow *time.Time `json:"rotationWindow,omitempty"`
}

func (m ShopMetadata) Validate() error {
	if !m.NextRefresh.After(m.LastRefresh) {
		return &CorruptedDocumentError{
			Msg: fmt.Sprintf("shop metadata next refresh %s is not after last refresh %s", m.NextRefresh, m.LastRefresh),
		}
	}

	return nil
}

// ShopMetadataPatch lists the fields a refresh writes. Nil fields are left as stored.
type ShopMetadataPatch struct {
	LastRefresh    time.Time
	NextRefresh    time.Time
	RotationWindow *time.Time
	Selection      *CatalogSelection
}

type CatalogPool struct {
	Items       []CatalogItem `yaml:"items" validate:"dive"`
	Wallpapers  []string      `yaml:"wallpapers"`
	ShelfColors []string      `yaml:"shelfColors"`
}

func (p CatalogPool) ItemIDs() []string {
	ids := make([]string, 0, len(p.Items))
	for _, item := range p.Items {
		ids = append(ids, item.ItemID)
	}

	return ids
}

func (p CatalogPool) FindItem(itemID string) (CatalogItem, bool) {
	for _, item := range p.Items {
		if item.ItemID == itemID {
			return item, true
		}
	}

	return CatalogItem{}, false
}

func ParseCatalogPool(data []byte) (CatalogPool, error) {
	var pool CatalogPool
	if err := yaml.Unmarshal(data, &pool); err != nil {
		return CatalogPool{}, fmt.Errorf("failed to parse catalog pool: %w", err)
	}

	if err := validateStruct(pool); err != nil {
		return CatalogPool{}, err
	}

	seen := make(map[string]struct{}, len(pool.Items))
	for _, item := range pool.Items {
		if _, dup := seen[item.ItemID]; dup {
			return CatalogPool{}, &InvalidArgumentsError{Msg: fmt.Sprintf("catalog pool lists item %s twice", item.ItemID)}
		}
		seen[item.ItemID] = struct{}{}
	}

	return pool, nil
}

func LoadCatalogPool(path string) (CatalogPool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CatalogPool{}, fmt.Errorf("failed to read catalog pool %s: %w", path, err)
	}

	return ParseCatalogPool(data)
}

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &InvalidArgumentsError{Msg: err.Error()}
	}

	problems := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		problems = append(problems, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}

	return &InvalidArgumentsError{Msg: "invalid " + strings.Join(problems, ", ")}
}
