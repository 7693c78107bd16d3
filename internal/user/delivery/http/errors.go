package http

import (
	"homework-planner/internal/user"
	pkgErrors "homework-planner/pkg/errors"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case user.ErrUsernameTaken:
		return pkgErrors.NewHTTPError(409, "username already exists")
	case user.ErrInvalidCredentials:
		return pkgErrors.NewHTTPError(401, "invalid username or password")
	case user.ErrEmptyCredentials:
		return pkgErrors.NewHTTPError(400, "username and password are required")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
