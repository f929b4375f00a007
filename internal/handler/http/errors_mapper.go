package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/activity-tracker/internal/app"
	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/internal/service"
	"github.com/MKhiriev/activity-tracker/internal/store"
	"github.com/MKhiriev/activity-tracker/internal/utils"
	"github.com/MKhiriev/activity-tracker/internal/validators"
)

// errorResponse is the public face of an internal error.
type errorResponse struct {
	status  int
	code    string
	message string
}

// errorResponseMap is matched top to bottom with errors.Is, so wrapped
// specific errors come before the generic ones they wrap.
var errorResponseMap = []struct {
	target   error
	response errorResponse
}{
	{ErrInvalidJSON, errorResponse{http.StatusBadRequest, app.CodeInvalidJSON, app.MsgInvalidJSON}},
	{ErrInvalidPathID, errorResponse{http.StatusBadRequest, app.CodeValidationError, app.MsgInvalidID}},
	{ErrInvalidDays, errorResponse{http.StatusBadRequest, app.CodeValidationError, app.MsgInvalidDays}},
	{utils.ErrInvalidIDList, errorResponse{http.StatusBadRequest, app.CodeValidationError, app.MsgInvalidIDList}},

	{ErrNoSessionToken, errorResponse{http.StatusUnauthorized, app.CodeUnauthorized, app.MsgUnauthorized}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusUnauthorized, app.CodeInvalidCredentials, app.MsgInvalidCredentials}},
	{service.ErrInvalidSession, errorResponse{http.StatusUnauthorized, app.CodeInvalidSession, app.MsgInvalidSession}},

	{store.ErrUserNotFound, errorResponse{http.StatusNotFound, app.CodeNotFound, app.MsgUserNotFound}},
	{store.ErrCategoryNotFound, errorResponse{http.StatusNotFound, app.CodeNotFound, app.MsgCategoryNotFound}},
	{store.ErrTagNotFound, errorResponse{http.StatusNotFound, app.CodeNotFound, app.MsgTagNotFound}},
	{store.ErrActivityNotFound, errorResponse{http.StatusNotFound, app.CodeNotFound, app.MsgActivityNotFound}},

	{service.ErrCategoryForbidden, errorResponse{http.StatusForbidden, app.CodeForbidden, app.MsgCategoryForbidden}},
	{service.ErrTagForbidden, errorResponse{http.StatusForbidden, app.CodeForbidden, app.MsgTagForbidden}},
	{service.ErrActivityForbidden, errorResponse{http.StatusForbidden, app.CodeForbidden, app.MsgActivityForbidden}},
	{service.ErrForbidden, errorResponse{http.StatusForbidden, app.CodeForbidden, app.MsgForbidden}},

	{service.ErrDuplicateUsername, errorResponse{http.StatusConflict, app.CodeDuplicateUsername, app.MsgDuplicateUsername}},
	{service.ErrDuplicateEmail, errorResponse{http.StatusConflict, app.CodeDuplicateEmail, app.MsgDuplicateEmail}},
	{service.ErrDuplicateCategoryName, errorResponse{http.StatusConflict, app.CodeDuplicateName, app.MsgDuplicateCategory}},
	{service.ErrDuplicateTagName, errorResponse{http.StatusConflict, app.CodeDuplicateName, app.MsgDuplicateTag}},
	{store.ErrUsernameTaken, errorResponse{http.StatusConflict, app.CodeDuplicateUsername, app.MsgDuplicateUsername}},
	{store.ErrEmailTaken, errorResponse{http.StatusConflict, app.CodeDuplicateEmail, app.MsgDuplicateEmail}},

	{store.ErrBuildingSQLQuery, errorResponse{http.StatusInternalServerError, app.CodeDatabaseError, app.MsgDatabaseError}},
	{store.ErrExecutingQuery, errorResponse{http.StatusInternalServerError, app.CodeDatabaseError, app.MsgDatabaseError}},
	{store.ErrBeginningTransaction, errorResponse{http.StatusInternalServerError, app.CodeDatabaseError, app.MsgDatabaseError}},
	{store.ErrCommitingTransaction, errorResponse{http.StatusInternalServerError, app.CodeDatabaseError, app.MsgDatabaseError}},
	{store.ErrExecutingStatement, errorResponse{http.StatusInternalServerError, app.CodeDatabaseError, app.MsgDatabaseError}},
	{store.ErrScanningRow, errorResponse{http.StatusInternalServerError, app.CodeDatabaseError, app.MsgDatabaseError}},
	{store.ErrScanningRows, errorResponse{http.StatusInternalServerError, app.CodeDatabaseError, app.MsgDatabaseError}},
}

var serverErrorResponse = errorResponse{http.StatusInternalServerError, app.CodeServerError, app.MsgServerError}

// responseFromError resolves the envelope fields for err. Validation errors
// carry their own message and field details.
func responseFromError(err error) (errorResponse, map[string]any) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return errorResponse{http.StatusBadRequest, app.CodeValidationError, validationErr.Error()}, validationErr.Details()
	}

	for _, entry := range errorResponseMap {
		if errors.Is(err, entry.target) {
			return entry.response, nil
		}
	}
	return serverErrorResponse, nil
}

// writeServiceError logs err with the request logger and writes the failure
// envelope. Raw error text never reaches the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	resp, details := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Str("code", resp.code).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("code", resp.code).Msg("request rejected")
	}

	utils.WriteError(w, resp.status, resp.code, resp.message, details)
}
