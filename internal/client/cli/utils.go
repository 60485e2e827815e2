package cli

import (
	"errors"
	"strconv"

	"github.com/dmitrijs2005/socli/internal/client/api"
	"github.com/dmitrijs2005/socli/internal/common"
)

// userMessage turns a command error into the string shown to the user.
func userMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, common.ErrorUnavailable) {
		return "server unavailable"
	}
	return err.Error()
}

// parseID parses a numeric command argument. A malformed value is reported
// as a validation error so handlers never hit the network with it.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, common.ErrorValidation
	}
	return id, nil
}
