package service

import "errors"

var (
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrTableNotFound       = errors.New("table not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrOrderNotFound       = errors.New("order not found")

	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrInvalidStatus     = errors.New("unknown status")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidForm       = errors.New("invalid form submission")

	ErrStepIncomplete   = errors.New("current step is incomplete")
	ErrNoNextStep       = errors.New("already at the last step")
	ErrNoPreviousStep   = errors.New("already at the first step")
	ErrNotAtConfirmStep = errors.New("reservation can only be confirmed from the last step")
	ErrInvalidField     = errors.New("invalid reservation field")
)
