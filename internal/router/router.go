// Package router defines how HTTP routes are registered on echo.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iliyamo/booking-directory/internal/handler"
)

// RegisterRoutes registers the operational endpoints: a health check for
// load balancers and the prometheus scrape target.
func RegisterRoutes(e *echo.Echo, db handler.Pinger) {
	e.GET("/healthz", handler.Health(db))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterDirectory registers the venue, artist and show endpoints.  Every
// route that writes goes through limit.
func RegisterDirectory(e *echo.Echo, h *handler.DirectoryHandler, limit echo.MiddlewareFunc) {
	venues := e.Group("/venues")
	venues.GET("", h.ListVenues)
	venues.POST("/search", h.SearchVenues)
	venues.POST("/create", h.CreateVenue, limit)
	venues.GET("/:id", h.GetVenue)
	venues.DELETE("/:id", h.DeleteVenue, limit)
	venues.GET("/:id/edit", h.EditVenueForm)
	venues.POST("/:id/edit", h.UpdateVenue, limit)

	artists := e.Group("/artists")
	artists.GET("", h.ListArtists)
	artists.POST("/search", h.SearchArtists)
	artists.POST("/create", h.CreateArtist, limit)
	artists.GET("/:id", h.GetArtist)
	artists.GET("/:id/edit", h.EditArtistForm)
	artists.POST("/:id/edit", h.UpdateArtist, limit)

	shows := e.Group("/shows")
	shows.GET("", h.ListShows)
	shows.POST("/create", h.CreateShow, limit)
}
