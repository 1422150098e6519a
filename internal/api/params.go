package api

import (
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avdeevko/taskhub/internal/service"
)

// intPathParam parses a numeric path parameter, rejecting missing or
// unparsable values with a client input error.
func intPathParam(e echo.Context, name string) (int, *service.Error) {
	return parseIntParam(name, e.Param(name))
}

// intQueryParam parses a numeric query parameter the same way.
func intQueryParam(e echo.Context, name string) (int, *service.Error) {
	return parseIntParam(name, e.QueryParam(name))
}

func parseIntParam(name, raw string) (int, *service.Error) {
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, service.NewError(service.ErrorCodeInvalidInput, fmt.Sprintf("Valid %s is required", name))
	}
	return value, nil
}

var timestampLayouts = []string{time.RFC3339, "2006-01-02"}

// parseTimestamp converts an optional ISO date string from a request body.
// An absent value yields nil; an unparsable one is a client input error.
func parseTimestamp(name, raw string) (*time.Time, *service.Error) {
	if raw == "" {
		return nil, nil
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}

	return nil, service.NewError(service.ErrorCodeInvalidInput, fmt.Sprintf("%s must be an ISO date", name))
}
