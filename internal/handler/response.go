package handler

import (
    "errors"
    "net/http"
    "net/url"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/booking-directory/internal/form"
)

// FlashCookie carries the outcome message of the last mutation to the next
// page the client renders.
const FlashCookie = "flash"

// Flash categories.
const (
    FlashSuccess = "success"
    FlashError   = "error"
)

// Flash is a one-shot message shown after a mutation.
type Flash struct {
    Category string
    Message  string
}

func setFlash(c echo.Context, success bool, message string) {
    category := FlashError
    if success {
        category = FlashSuccess
    }
    v := url.Values{"category": {category}, "message": {message}}
    c.SetCookie(&http.Cookie{
        Name:     FlashCookie,
        Value:    v.Encode(),
        Path:     "/",
        HttpOnly: true,
        SameSite: http.SameSiteLaxMode,
    })
}

// ParseFlash decodes a flash cookie value.
func ParseFlash(raw string) (Flash, error) {
    v, err := url.ParseQuery(raw)
    if err != nil {
        return Flash{}, err
    }
    if !v.Has("message") {
        return Flash{}, errors.New("flash without message")
    }
    return Flash{Category: v.Get("category"), Message: v.Get("message")}, nil
}

// paramID parses the :id path parameter.
func paramID(c echo.Context) (int64, error) {
    return strconv.ParseInt(c.Param("id"), 10, 64)
}

// formValues returns the submitted form, empty when the body is not a form.
func formValues(c echo.Context) form.Values {
    vals, err := c.FormParams()
    if err != nil {
        vals = url.Values{}
    }
    return form.NewValues(vals)
}

func notFound(c echo.Context, what string) error {
    return c.JSON(http.StatusNotFound, echo.Map{"error": what + " not found"})
}

func databaseError(c echo.Context) error {
    return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
}
