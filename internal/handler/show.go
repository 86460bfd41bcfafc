package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/booking-directory/internal/form"
)

// ListShows returns every show, latest first.
func (h *DirectoryHandler) ListShows(c echo.Context) error {
    shows, err := h.Svc.ShowDirectory(c.Request().Context())
    if err != nil {
        h.Log.WithError(err).Error("list shows")
        return databaseError(c)
    }
    return c.JSON(http.StatusOK, echo.Map{"shows": shows})
}

func (h *DirectoryHandler) CreateShow(c echo.Context) error {
    out := h.Svc.CreateShow(c.Request().Context(), form.DecodeShow(formValues(c)))
    return respondOutcome(c, out)
}
