package domain

import "errors"

var (
	// ErrNotAuthenticated is returned by actions that need a token.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrEmptySelection is returned when accept/delete runs with nothing selected.
	ErrEmptySelection = errors.New("no shopkeepers selected")
	// ErrDeclined is returned when the operator declines a confirmation.
	ErrDeclined = errors.New("action declined")
	// ErrActionInProgress is returned when a mutating action is already running.
	ErrActionInProgress = errors.New("another action is in progress")
	// ErrUnknownShopkeeper is returned when selecting an id that is not listed.
	ErrUnknownShopkeeper = errors.New("unknown shopkeeper")
)
