package handler

import (
    "errors"
    "fmt"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/booking-directory/internal/form"
    "github.com/iliyamo/booking-directory/internal/repository"
    "github.com/iliyamo/booking-directory/internal/service"
)

func (h *DirectoryHandler) ListArtists(c echo.Context) error {
    artists, err := h.Svc.ArtistDirectory(c.Request().Context())
    if err != nil {
        h.Log.WithError(err).Error("list artists")
        return databaseError(c)
    }
    return c.JSON(http.StatusOK, echo.Map{"artists": artists})
}

func (h *DirectoryHandler) SearchArtists(c echo.Context) error {
    term := formValues(c).Get("search_term")
    page, err := h.Svc.SearchArtists(c.Request().Context(), term)
    if err != nil {
        h.Log.WithError(err).Error("search artists")
        return databaseError(c)
    }
    return c.JSON(http.StatusOK, page)
}

func (h *DirectoryHandler) GetArtist(c echo.Context) error {
    id, err := paramID(c)
    if err != nil {
        return notFound(c, "artist")
    }
    d, err := h.Svc.ArtistDetail(c.Request().Context(), id)
    switch {
    case errors.Is(err, repository.ErrArtistNotFound):
        return notFound(c, "artist")
    case err != nil:
        h.Log.WithError(err).WithField("artist_id", id).Error("artist detail")
        return databaseError(c)
    }
    return c.JSON(http.StatusOK, d)
}

// CreateArtist answers 200 with the message, or 500 when the artist could
// not be listed.
func (h *DirectoryHandler) CreateArtist(c echo.Context) error {
    out := h.Svc.CreateArtist(c.Request().Context(), form.DecodeArtist(formValues(c)))
    return respondOutcome(c, out)
}

func (h *DirectoryHandler) EditArtistForm(c echo.Context) error {
    id, err := paramID(c)
    if err != nil {
        return notFound(c, "artist")
    }
    f, err := h.Svc.ArtistEditForm(c.Request().Context(), id)
    switch {
    case errors.Is(err, repository.ErrArtistNotFound):
        return notFound(c, "artist")
    case err != nil:
        h.Log.WithError(err).WithField("artist_id", id).Error("artist edit form")
        return databaseError(c)
    }
    return c.JSON(http.StatusOK, echo.Map{"artist": f})
}

func (h *DirectoryHandler) UpdateArtist(c echo.Context) error {
    id, err := paramID(c)
    if err != nil {
        return notFound(c, "artist")
    }
    out := h.Svc.UpdateArtist(c.Request().Context(), id, form.DecodeArtist(formValues(c)))
    setFlash(c, out.Success, out.Message)
    return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/artists/%d", id))
}

// respondOutcome is shared by the create endpoints that answer in place
// instead of redirecting.
func respondOutcome(c echo.Context, out service.Outcome) error {
    setFlash(c, out.Success, out.Message)
    if !out.Success {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": out.Message})
    }
    return c.JSON(http.StatusOK, echo.Map{"message": out.Message})
}
