package handler

import (
    "errors"
    "fmt"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/booking-directory/internal/form"
    "github.com/iliyamo/booking-directory/internal/repository"
)

// ListVenues returns {"areas": [...]} with venues grouped by city and state.
func (h *DirectoryHandler) ListVenues(c echo.Context) error {
    areas, err := h.Svc.VenueDirectory(c.Request().Context())
    if err != nil {
        h.Log.WithError(err).Error("list venues")
        return databaseError(c)
    }
    return c.JSON(http.StatusOK, echo.Map{"areas": areas})
}

// SearchVenues matches search_term against venue names.
func (h *DirectoryHandler) SearchVenues(c echo.Context) error {
    term := formValues(c).Get("search_term")
    page, err := h.Svc.SearchVenues(c.Request().Context(), term)
    if err != nil {
        h.Log.WithError(err).Error("search venues")
        return databaseError(c)
    }
    return c.JSON(http.StatusOK, page)
}

func (h *DirectoryHandler) GetVenue(c echo.Context) error {
    id, err := paramID(c)
    if err != nil {
        return notFound(c, "venue")
    }
    d, err := h.Svc.VenueDetail(c.Request().Context(), id)
    switch {
    case errors.Is(err, repository.ErrVenueNotFound):
        return notFound(c, "venue")
    case err != nil:
        h.Log.WithError(err).WithField("venue_id", id).Error("venue detail")
        return databaseError(c)
    }
    return c.JSON(http.StatusOK, d)
}

// CreateVenue always redirects to the venue list; the flash cookie tells
// the client whether the venue was listed.
func (h *DirectoryHandler) CreateVenue(c echo.Context) error {
    out := h.Svc.CreateVenue(c.Request().Context(), form.DecodeVenue(formValues(c)))
    setFlash(c, out.Success, out.Message)
    return c.Redirect(http.StatusSeeOther, "/venues")
}

func (h *DirectoryHandler) EditVenueForm(c echo.Context) error {
    id, err := paramID(c)
    if err != nil {
        return notFound(c, "venue")
    }
    f, err := h.Svc.VenueEditForm(c.Request().Context(), id)
    switch {
    case errors.Is(err, repository.ErrVenueNotFound):
        return notFound(c, "venue")
    case err != nil:
        h.Log.WithError(err).WithField("venue_id", id).Error("venue edit form")
        return databaseError(c)
    }
    return c.JSON(http.StatusOK, echo.Map{"venue": f})
}

// UpdateVenue redirects back to the venue page whatever the outcome.
func (h *DirectoryHandler) UpdateVenue(c echo.Context) error {
    id, err := paramID(c)
    if err != nil {
        return notFound(c, "venue")
    }
    out := h.Svc.UpdateVenue(c.Request().Context(), id, form.DecodeVenue(formValues(c)))
    setFlash(c, out.Success, out.Message)
    return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/venues/%d", id))
}

// DeleteVenue answers {"success": bool} with status 200 in both cases.
func (h *DirectoryHandler) DeleteVenue(c echo.Context) error {
    id, err := paramID(c)
    if err != nil {
        return c.JSON(http.StatusOK, echo.Map{"success": false})
    }
    out := h.Svc.DeleteVenue(c.Request().Context(), id)
    setFlash(c, out.Success, out.Message)
    return c.JSON(http.StatusOK, echo.Map{"success": out.Success})
}
