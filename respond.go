package hub

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// saveFailedMessage is shown to the author whenever a storage write fails.
const saveFailedMessage = "Could not save your changes. Please try again."

type messageResponse struct {
	Message string `json:"message"`
}

type validationResponse struct {
	Errors ValidationErrors `json:"errors"`
}

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

func respondError(c echo.Context, code int, msg string) error {
	return c.JSON(code, messageResponse{Message: msg})
}

func respondInvalid(c echo.Context, errs ValidationErrors) error {
	return c.JSON(http.StatusUnprocessableEntity, validationResponse{Errors: errs})
}

func respondSaveFailed(c echo.Context) error {
	return respondError(c, http.StatusServiceUnavailable, saveFailedMessage)
}
