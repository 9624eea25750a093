package service

import "errors"

var (
	ErrValidationBlankFields = errors.New("all fields are required")
	ErrPasswordsDoNotMatch   = errors.New("passwords do not match")

	ErrValidationNotCSV = errors.New("only CSV files are allowed")

	ErrEmptyTokenIssued = errors.New("portal issued an empty token")
)
