package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrValidation       = errors.New("invalid input")
	ErrConflict         = errors.New("conflict with an existing resource")
)

var ErrCategoryNameNotUnique = fmt.Errorf("%w: the category name must be unique", ErrConflict)
