package services

import "github.com/dmitrijs2005/blogql/internal/common"

// Client-facing failures. They carry no cause and can be compared with errors.Is.
var (
	ErrMissingFields      = common.NewError(common.KindValidation, "Please provide all required fields.")
	ErrMissingCredentials = common.NewError(common.KindValidation, "Please provide email and password.")
	ErrUserNotFound       = common.NewError(common.KindNotFound, "User not found.")
	ErrInvalidPassword    = common.NewError(common.KindCredential, "Invalid password.")
	ErrAuthRequired       = common.NewError(common.KindUnauthorized, "Authentication required.")
	ErrPostNotFound       = common.NewError(common.KindNotFound, "Blog post not found.")
	ErrPostNotOwned       = common.NewError(common.KindUnauthorized, "Blog post not found or unauthorized.")
	ErrUploadsDisabled    = common.NewError(common.KindValidation, "Image uploads are not configured.")
)
