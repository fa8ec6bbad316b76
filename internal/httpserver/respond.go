package httpserver

import (
	"github.com/labstack/echo/v4"
)

// The three handlers historically shipped different header sets. The sets
// are kept as named values so each endpoint keeps its observed defaults.
type headerSet map[string]string

var (
	corsHeaders = headerSet{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET,POST,OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type,Authorization",
		"Content-Type":                 "application/json",
		"Cache-Control":                "no-store",
	}

	// The configuration-error path returns Content-Type only.
	minimalHeaders = headerSet{
		"Content-Type": "application/json",
	}

	greetingHeaders = headerSet{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}

	// Registration sets no headers of its own.
	noHeaders = headerSet{}
)

func respondJSON(c echo.Context, code int, headers headerSet, body interface{}) error {
	h := c.Response().Header()
	for k, v := range headers {
		h.Set(k, v)
	}
	return c.JSON(code, body)
}
