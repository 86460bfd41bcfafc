package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/iliyamo/booking-directory/internal/form"
	"github.com/iliyamo/booking-directory/internal/metrics"
	"github.com/iliyamo/booking-directory/internal/queue"
	"github.com/iliyamo/booking-directory/internal/repository"
)

// Outcome reports a mutation attempt.  Err is a *repository.CommitError
// whenever Success is false.
type Outcome struct {
	Success bool
	Message string
	Err     error
}

// mutation describes one attempt and the messages reported for it.
type mutation struct {
	entity  string
	op      string
	success string
	failure string
	event   queue.DirectoryEvent
}

// attempt runs fn in one unit of work and turns the result into an
// Outcome.  Failing to acquire a session is reported like a failed commit.
// fn may fill m.event once generated ids are known.
func (s *DirectoryService) attempt(ctx context.Context, m *mutation, fn func(*repository.UnitOfWork) error) Outcome {
	label := m.op + " " + m.entity
	err := s.withSession(ctx, func(sess *repository.Session) error {
		return sess.Transact(ctx, label, fn)
	})
	var ce *repository.CommitError
	if err != nil && !errors.As(err, &ce) {
		err = &repository.CommitError{Op: label, Err: err}
	}
	metrics.RecordMutation(m.entity, m.op, err == nil)
	if err != nil {
		s.log.WithError(err).WithField("op", label).Error("mutation failed")
		return Outcome{Success: false, Message: m.failure, Err: err}
	}
	s.publish(ctx, m.event)
	return Outcome{Success: true, Message: m.success}
}

// CreateVenue lists a new venue.
func (s *DirectoryService) CreateVenue(ctx context.Context, in form.VenueInput) Outcome {
	v := in.Venue
	v.ID = 0
	m := mutation{
		entity:  "venue",
		op:      "create",
		success: fmt.Sprintf("Venue %s was successfully listed!", v.Name),
		failure: fmt.Sprintf("An error occurred. Venue %s could not be listed.", v.Name),
	}
	return s.attempt(ctx, &m, func(uow *repository.UnitOfWork) error {
		if err := uow.Venues.Create(ctx, &v); err != nil {
			return err
		}
		m.event = queue.DirectoryEvent{Type: queue.VenueListed, EntityID: v.ID, Name: v.Name}
		return nil
	})
}

// UpdateVenue overwrites every field of venue id.
func (s *DirectoryService) UpdateVenue(ctx context.Context, id int64, in form.VenueInput) Outcome {
	v := in.Venue
	v.ID = id
	m := mutation{
		entity:  "venue",
		op:      "update",
		success: fmt.Sprintf("Venue %s was successfully updated!", v.Name),
		failure: fmt.Sprintf("An error occurred. Venue %s could not be updated.", v.Name),
		event:   queue.DirectoryEvent{Type: queue.VenueUpdated, EntityID: id, Name: v.Name},
	}
	return s.attempt(ctx, &m, func(uow *repository.UnitOfWork) error {
		return uow.Venues.Update(ctx, &v)
	})
}

// DeleteVenue removes venue id.  A missing venue, or one still referenced
// by shows, is a failed attempt.
func (s *DirectoryService) DeleteVenue(ctx context.Context, id int64) Outcome {
	m := mutation{
		entity:  "venue",
		op:      "delete",
		success: "Venue successfully deleted!",
		failure: "Error deleting venue",
		event:   queue.DirectoryEvent{Type: queue.VenueDeleted, EntityID: id},
	}
	return s.attempt(ctx, &m, func(uow *repository.UnitOfWork) error {
		return uow.Venues.Delete(ctx, id)
	})
}

// CreateArtist lists a new artist.
func (s *DirectoryService) CreateArtist(ctx context.Context, in form.ArtistInput) Outcome {
	a := in.Artist
	a.ID = 0
	m := mutation{
		entity:  "artist",
		op:      "create",
		success: fmt.Sprintf("Artist %s was successfully listed!", a.Name),
		failure: fmt.Sprintf("An error occurred. Artist %s could not be listed.", a.Name),
	}
	return s.attempt(ctx, &m, func(uow *repository.UnitOfWork) error {
		if err := uow.Artists.Create(ctx, &a); err != nil {
			return err
		}
		m.event = queue.DirectoryEvent{Type: queue.ArtistListed, EntityID: a.ID, Name: a.Name}
		return nil
	})
}

// UpdateArtist overwrites every field of artist id.
func (s *DirectoryService) UpdateArtist(ctx context.Context, id int64, in form.ArtistInput) Outcome {
	a := in.Artist
	a.ID = id
	m := mutation{
		entity:  "artist",
		op:      "update",
		success: fmt.Sprintf("Artist %s was successfully updated!", a.Name),
		failure: fmt.Sprintf("An error occurred. Artist %s could not be updated.", a.Name),
		event:   queue.DirectoryEvent{Type: queue.ArtistUpdated, EntityID: id, Name: a.Name},
	}
	return s.attempt(ctx, &m, func(uow *repository.UnitOfWork) error {
		return uow.Artists.Update(ctx, &a)
	})
}

// CreateShow schedules an artist at a venue.  The raw ids and start time
// are parsed inside the attempt, so malformed input fails like any other
// rejected write.
func (s *DirectoryService) CreateShow(ctx context.Context, in form.ShowInput) Outcome {
	m := mutation{
		entity:  "show",
		op:      "create",
		success: "Show was successfully listed!",
		failure: "An error occurred. Show could not be listed.",
	}
	return s.attempt(ctx, &m, func(uow *repository.UnitOfWork) error {
		show, err := in.Show()
		if err != nil {
			return err
		}
		if err := uow.Shows.Create(ctx, &show); err != nil {
			return err
		}
		m.event = queue.DirectoryEvent{Type: queue.ShowListed, EntityID: show.ID}
		return nil
	})
}
