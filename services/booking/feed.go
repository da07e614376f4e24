package booking

import (
	"context"
	"sort"

	"dateplanner/models"
)

// snapshot sources feeding the merged view. A user sees bookings they
// initiated and bookings made against them; in the degenerate case where a
// booking matches both filters the keyed union keeps exactly one copy.
const (
	sourceInitiated = iota
	sourceTargeted
	sourceCount
)

// mergedView holds the latest full snapshot from each subscription source.
// A new snapshot from a source replaces that source's prior contribution
// entirely; it is never appended, so re-fired identical snapshots cannot
// grow the view.
type mergedView struct {
	snapshots [sourceCount][]models.Booking
}

// apply records the latest snapshot for a source and returns the resulting
// ordered view.
func (v *mergedView) apply(source int, snap []models.Booking) []models.Booking {
	v.snapshots[source] = snap
	return v.ordered()
}

// ordered returns the keyed union of both sources sorted by ascending
// scheduled date-time. A missing date-time is the zero time and sorts first.
// Ties keep source order, initiated before targeted, for a stable result.
func (v *mergedView) ordered() []models.Booking {
	seen := make(map[string]bool)
	merged := make([]models.Booking, 0, len(v.snapshots[sourceInitiated])+len(v.snapshots[sourceTargeted]))
	for _, snap := range v.snapshots {
		for _, b := range snap {
			if b.ID == "" || seen[b.ID] {
				continue
			}
			seen[b.ID] = true
			merged = append(merged, b)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].DateTime.Before(merged[j].DateTime)
	})
	return merged
}

// ListBookings returns a one-shot merged view of both sides of the viewer's
// bookings.
func (s *DefaultBookingService) ListBookings(viewerID string) ([]models.Booking, error) {
	if viewerID == "" {
		return nil, AuthorizationError{Message: "no authenticated user"}
	}

	initiated, err := s.Repo.ListByInitiator(viewerID)
	if err != nil {
		return nil, WriteFailedError{Err: err}
	}
	targeted, err := s.Repo.ListByCounterpart(viewerID)
	if err != nil {
		return nil, WriteFailedError{Err: err}
	}

	view := &mergedView{}
	view.apply(sourceInitiated, initiated)
	return view.apply(sourceTargeted, targeted), nil
}

// StreamBookings subscribes to both participant filters and emits the merged
// view on every snapshot from either side. A partial view before the second
// source delivers its first snapshot is expected. The channel closes when
// ctx is cancelled; snapshots racing the cancellation are dropped, not
// applied.
func (s *DefaultBookingService) StreamBookings(ctx context.Context, viewerID string) (<-chan []models.Booking, error) {
	if viewerID == "" {
		return nil, AuthorizationError{Message: "no authenticated user"}
	}

	initiatedCh, err := s.Repo.SubscribeByInitiator(ctx, viewerID)
	if err != nil {
		return nil, WriteFailedError{Err: err}
	}
	targetedCh, err := s.Repo.SubscribeByCounterpart(ctx, viewerID)
	if err != nil {
		return nil, WriteFailedError{Err: err}
	}

	out := make(chan []models.Booking, 1)
	go func() {
		defer close(out)
		view := &mergedView{}
		for initiatedCh != nil || targetedCh != nil {
			var merged []models.Booking
			select {
			case <-ctx.Done():
				return
			case snap, ok := <-initiatedCh:
				if !ok {
					initiatedCh = nil
					continue
				}
				merged = view.apply(sourceInitiated, snap)
			case snap, ok := <-targetedCh:
				if !ok {
					targetedCh = nil
					continue
				}
				merged = view.apply(sourceTargeted, snap)
			}
			if ctx.Err() != nil {
				return
			}
			emit(out, merged)
		}
	}()
	return out, nil
}

// emit delivers a view with latest-wins semantics so a slow consumer only
// ever observes the freshest merge.
func emit(out chan []models.Booking, view []models.Booking) {
	for {
		select {
		case out <- view:
			return
		default:
		}
		select {
		case <-out:
		default:
		}
	}
}
