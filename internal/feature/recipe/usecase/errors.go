// Package usecase implements the business logic for the recipe feature.
package usecase

import "errors"

var (
	// ErrNotFound is returned when a record does not exist or belongs to a
	// different user. The two cases are indistinguishable on purpose.
	ErrNotFound = errors.New("not found")

	// ErrNameRequired is returned when a tag or ingredient is created with a blank name.
	ErrNameRequired = errors.New("name must not be blank")

	// ErrTitleRequired is returned when a recipe is created or updated with a blank title.
	ErrTitleRequired = errors.New("title must not be blank")

	// ErrInvalidDuration is returned when time_minutes is not a positive integer.
	ErrInvalidDuration = errors.New("time_minutes must be a positive integer")

	// ErrTagNotFound is returned when a referenced tag id does not exist for the caller.
	ErrTagNotFound = errors.New("tag not found")

	// ErrIngredientNotFound is returned when a referenced ingredient id does not exist for the caller.
	ErrIngredientNotFound = errors.New("ingredient not found")

	// ErrImageRequired is returned when the upload request carries no usable file.
	ErrImageRequired = errors.New("no image file submitted")
)
