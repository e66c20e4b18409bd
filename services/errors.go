package services

import "errors"

var (
	ErrOutOfStock         = errors.New("product is out of stock")
	ErrInvalidQuantity    = errors.New("quantity must not be negative")
	ErrItemNotFound       = errors.New("item not in cart")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrDealerIncomplete   = errors.New("dealer name and INN are required")
	ErrInvalidDealer      = errors.New("invalid dealer info")
	ErrNoFileSelected     = errors.New("no file selected")
	ErrSubmissionInFlight = errors.New("file is already being processed")
	ErrOrderInFlight      = errors.New("order is already being placed")
	ErrNoMappingSession   = errors.New("no column mapping in progress")
	ErrHeaderUnavailable  = errors.New("could not read the header row of the selected file")
	ErrNameNotMapped      = errors.New("name column is not mapped")
	ErrUnknownLanguage    = errors.New("unsupported language")
)
