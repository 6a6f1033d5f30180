package domain

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion

//region InsufficientBalanceError

type InsufficientBalanceError struct {
	Msg string
}

func (e *InsufficientBalanceError) Error() string {
	return e.Msg
}

func (e *InsufficientBalanceError) Is(target error) bool {
	_, ok := target.(*InsufficientBalanceError)
	return ok
}

//endregion

//region UserNotFoundError

type UserNotFoundError struct {
	Msg string
}

func (e *UserNotFoundError) Error() string {
	return e.Msg
}

func (e *UserNotFoundError) Is(target error) bool {
	_, ok := target.(*UserNotFoundError)
	return ok
}

//endregion

//region CatalogNotFoundError

type CatalogNotFoundError struct {
	Msg string
}

func (e *CatalogNotFoundError) Error() string {
	return e.Msg
}

func (e *CatalogNotFoundError) Is(target error) bool {
	_, ok := target.(*CatalogNotFoundError)
	return ok
}

//endregion

//region TransactionConflictError

type TransactionConflictError struct {
	Msg string
	Err error
}

func (e *TransactionConflictError) Error() string {
	return e.Msg
}

func (e *TransactionConflictError) Unwrap() error {
	return e.Err
}

func (e *TransactionConflictError) Is(target error) bool {
	_, ok := target.(*TransactionConflictError)
	return ok
}

//endregion

//region StoreUnavailableError

type StoreUnavailableError struct {
	Msg string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return e.Msg
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

func (e *StoreUnavailableError) Is(target error) bool {
	_, ok := target.(*StoreUnavailableError)
	return ok
}

//endregion

//region RefreshFailedError

type RefreshFailedError struct {
	Msg string
	Err error
}

func (e *RefreshFailedError) Error() string {
	return e.Msg
}

func (e *RefreshFailedError) Unwrap() error {
	return e.Err
}

func (e *RefreshFailedError) Is(target error) bool {
	_, ok := target.(*RefreshFailedError)
	return ok
}

//endregion

//region CorruptedDocumentError

type CorruptedDocumentError struct {
	Msg string
}

func (e *CorruptedDocumentError) Error() string {
	return e.Msg
}

func (e *CorruptedDocumentError) Is(target error) bool {
	_, ok := target.(*CorruptedDocumentError)
	return ok
}

//endregion
