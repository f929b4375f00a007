package service

import (
	"errors"
	"fmt"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrInvalidCredentials is returned by Login for an unknown username and
	// for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidSession is returned when a token is absent, expired or
	// belongs to a deleted user.
	ErrInvalidSession = errors.New("invalid or expired session")

	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateName     = errors.New("name already exists")

	// ErrForbidden is returned when the caller does not own the resource.
	ErrForbidden = errors.New("access denied")

	ErrCategoryForbidden = fmt.Errorf("%w: category does not belong to user", ErrForbidden)
	ErrTagForbidden      = fmt.Errorf("%w: tag does not belong to user", ErrForbidden)
	ErrActivityForbidden = fmt.Errorf("%w: activity does not belong to user", ErrForbidden)

	ErrDuplicateCategoryName = fmt.Errorf("%w: category", ErrDuplicateName)
	ErrDuplicateTagName      = fmt.Errorf("%w: tag", ErrDuplicateName)
)

// Client-side errors.
var (
	ErrLoginOnServer     = errors.New("error logging in on server")
	ErrLoadingDashboard  = errors.New("error loading dashboard")
	ErrNotLoggedIn       = errors.New("client is not logged in")
	ErrServerUnavailable = errors.New("server is unavailable")
)
