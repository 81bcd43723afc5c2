package dto

import "errors"

var (
	ErrMissingStay = errors.New("check_in and check_out are required for accommodations")
	ErrInvalidStay = errors.New("check_out must be after check_in")
)
