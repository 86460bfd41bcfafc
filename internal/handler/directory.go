// Package handler exposes the directory's HTTP endpoints.  Handlers decode
// the request, call the directory service and shape the JSON response.
package handler

import (
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/booking-directory/internal/service"
)

// DirectoryHandler serves venue, artist and show endpoints.
type DirectoryHandler struct {
    Svc *service.DirectoryService
    Log logrus.FieldLogger
}

// NewDirectoryHandler panics when svc is nil.
func NewDirectoryHandler(svc *service.DirectoryService, log logrus.FieldLogger) *DirectoryHandler {
    if svc == nil {
        panic("nil service passed to NewDirectoryHandler")
    }
    if log == nil {
        log = logrus.StandardLogger()
    }
    return &DirectoryHandler{Svc: svc, Log: log}
}
