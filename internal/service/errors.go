package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrValidationNoUserID   = errors.New("no user ID was given")
	ErrValidationNoPhotoID  = errors.New("no photo ID was given")
	ErrValidationNoPhotoURI = errors.New("no photo URI was given")
)
