// Package service implements the directory's mutations and the read-side
// queries that back each page.  Every call acquires its own repository
// session and releases it before returning.
package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/booking-directory/internal/queue"
	"github.com/iliyamo/booking-directory/internal/repository"
)

// EventPublisher delivers domain events after a successful commit.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.DirectoryEvent) error
}

// DirectoryService coordinates repositories, projections and events.
type DirectoryService struct {
	store  *repository.Store
	events EventPublisher
	log    logrus.FieldLogger
	now    func() time.Time
}

// Option customises a DirectoryService.
type Option func(*DirectoryService)

// WithClock replaces the reference clock used to split upcoming from past
// shows.
func WithClock(now func() time.Time) Option {
	return func(s *DirectoryService) { s.now = now }
}

// WithEvents enables event publishing.
func WithEvents(p EventPublisher) Option {
	return func(s *DirectoryService) { s.events = p }
}

// WithLogger sets the logger for failed attempts and publish errors.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *DirectoryService) { s.log = l }
}

// NewDirectoryService builds a service over store.  Without options it
// uses the wall clock in UTC, publishes nothing and logs to the logrus
// standard logger.
func NewDirectoryService(store *repository.Store, opts ...Option) *DirectoryService {
	s := &DirectoryService{
		store: store,
		log:   logrus.StandardLogger(),
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ping checks database connectivity.
func (s *DirectoryService) Ping(ctx context.Context) error {
	return s.store.DB().PingContext(ctx)
}

// withSession runs fn with a fresh session and releases it afterwards.
func (s *DirectoryService) withSession(ctx context.Context, fn func(*repository.Session) error) error {
	sess, err := s.store.Session(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()
	return fn(sess)
}

func (s *DirectoryService) publish(ctx context.Context, ev queue.DirectoryEvent) {
	if s.events == nil || ev.Type == "" {
		return
	}
	ev.OccurredAt = s.now()
	if err := s.events.Publish(ctx, ev); err != nil {
		s.log.WithError(err).WithField("event", ev.Type).Warn("event publish failed")
	}
}
