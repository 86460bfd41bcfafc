package middleware

import (
    "time"

    "github.com/labstack/echo/v4"
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/booking-directory/internal/metrics"
)

// RequestLogger logs one line per request and records its latency.  5xx
// responses log at error level, 4xx at warn, everything else at info.
func RequestLogger(log logrus.FieldLogger) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            start := time.Now()
            err := next(c)
            if err != nil {
                // let echo write the error response so the status is final
                c.Error(err)
            }
            duration := time.Since(start)

            req := c.Request()
            status := c.Response().Status
            route := c.Path()
            if route == "" {
                route = "unmatched"
            }
            metrics.ObserveRequest(req.Method, route, status, duration)

            entry := log.WithFields(logrus.Fields{
                "method":     req.Method,
                "path":       req.URL.Path,
                "route":      route,
                "status":     status,
                "duration":   duration.String(),
                "client_ip":  c.RealIP(),
                "user_agent": req.UserAgent(),
            })
            switch {
            case status >= 500:
                entry.WithError(err).Error("request failed")
            case status >= 400:
                entry.Warn("request rejected")
            default:
                entry.Info("request processed")
            }
            return nil
        }
    }
}
