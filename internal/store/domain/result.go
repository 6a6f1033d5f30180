package domain

import (
	"errors"
	"fmt"
)

// Result is what the client adapter shows the user.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func PurchaseResult(item CatalogItem, err error) Result {
	if err == nil {
		return Result{Success: true, Message: fmt.Sprintf("Successfully purchased %s!", item.DisplayName())}
	}

	switch {
	case errors.Is(err, &InsufficientBalanceError{}):
		return Result{Message: fmt.Sprintf("Not enough coins to buy %s.", item.DisplayName())}
	case errors.Is(err, &UserNotFoundError{}):
		return Result{Message: "User account not found. Please sign in again."}
	case errors.Is(err, &InvalidArgumentsError{}):
		return Result{Message: err.Error()}
	default:
		return Result{Message: "Purchase failed. Please try again."}
	}
}

func RefreshResult(metadata ShopMetadata, err error) Result {
	if err == nil {
		return Result{
			Success: true,
			Message: fmt.Sprintf("Shop refreshed, next refresh at %s.", metadata.NextRefresh.Format("2006-01-02T15:04:05Z07:00")),
		}
	}

	if errors.Is(err, &InvalidArgumentsError{}) {
		return Result{Message: err.Error()}
	}

	return Result{Message: "Shop refresh failed."}
}
