package domain

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	DefaultTimezone     = "America/New_York"
	DefaultDemoDuration = 10 * time.Second
)

type RefreshMode string

const (
	RefreshScheduled RefreshMode = "scheduled"
	RefreshManual    RefreshMode = "manual"
	RefreshDemo      RefreshMode = "demo"
)

func ParseRefreshMode(s string) (RefreshMode, error) {
	switch mode := RefreshMode(s); mode {
	case RefreshScheduled, RefreshManual, RefreshDemo:
		return mode, nil
	case "":
		return RefreshManual, nil
	default:
		return "", &InvalidArgumentsError{Msg: fmt.Sprintf("unknown refresh mode %q", s)}
	}
}

type RefreshRequest struct {
	Mode RefreshMode
	// DemoDuration overrides the demo period. Only used in demo mode.
	DemoDuration time.Duration
}

// NextMidnight returns the first 00:00:00 in loc strictly after now.
func NextMidnight(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	y, m, d := local.Date()

	return time.Date(y, m, d+1, 0, 0, 0, 0, loc)
}

// CatalogSelector picks what the shop offers for the window starting at
// window. It must not modify its arguments.
type CatalogSelector func(pool CatalogPool, current CatalogSelection, window time.Time) CatalogSelection

// KeepCurrentSelector leaves the offered catalog unchanged.
func KeepCurrentSelector(_ CatalogPool, current CatalogSelection, _ time.Time) CatalogSelection {
	return current
}

type SelectionSizes struct {
	Items       int `envconfig:"ITEMS" default:"6"`
	Wallpapers  int `envconfig:"WALLPAPERS" default:"3"`
	ShelfColors int `envconfig:"SHELF_COLORS" default:"3"`
}

// NewRandomSubsetSelector draws a random subset of the pool. The random source
// is seeded from the window, so the same window always yields the same selection.
func NewRandomSubsetSelector(sizes SelectionSizes) CatalogSelector {
	return func(pool CatalogPool, _ CatalogSelection, window time.Time) CatalogSelection {
		seed := uint64(window.Unix())
		rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

		return CatalogSelection{
			Items:       pickSubset(rng, pool.ItemIDs(), sizes.Items),
			Wallpapers:  pickSubset(rng, pool.Wallpapers, sizes.Wallpapers),
			ShelfColors: pickSubset(rng, pool.ShelfColors, sizes.ShelfColors),
		}
	}
}

// pickSubset keeps the pool order of the chosen elements.
func pickSubset(rng *rand.Rand, pool []string, n int) []string {
	if n <= 0 || len(pool) == 0 {
		return []string{}
	}
	if n >= len(pool) {
		return append([]string{}, pool...)
	}

	chosen := make([]bool, len(pool))
	for _, idx := range rng.Perm(len(pool))[:n] {
		chosen[idx] = true
	}

	out := make([]string, 0, n)
	for i, v := range pool {
		if chosen[i] {
			out = append(out, v)
		}
	}

	return out
}
