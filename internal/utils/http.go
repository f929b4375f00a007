package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/activity-tracker/models"
)

// ErrInvalidIDList is returned by ParseIDList when one of the comma separated
// parts is not an integer.
var ErrInvalidIDList = errors.New("invalid id list")

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteSuccess wraps data in a {"success":true,"data":...} envelope.
func WriteSuccess(w http.ResponseWriter, data any, statusCode int) (int, error) {
	return WriteJSON(w, models.Response{Success: true, Data: data}, statusCode)
}

// WriteError writes a {"success":false,"error":{...}} envelope. A nil details
// map is rendered as an empty object.
func WriteError(w http.ResponseWriter, statusCode int, code, message string, details map[string]any) (int, error) {
	if details == nil {
		details = map[string]any{}
	}
	return WriteJSON(w, models.Response{
		Success: false,
		Error: &models.ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	}, statusCode)
}

// ParseIDList parses a comma separated list of positive integer identifiers
// such as "1,2, 3". Blank parts are skipped, so "" and "1,,2" are accepted.
func ParseIDList(raw string) ([]int64, error) {
	var ids []int64
	for part := range strings.SplitSeq(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidIDList, part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
