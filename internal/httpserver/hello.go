package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const greetingMessage = "Hello, this is the ai_translator api endpoint!"

func Hello(c echo.Context) error {
	return respondJSON(c, http.StatusOK, greetingHeaders, echo.Map{
		"message": greetingMessage,
	})
}
