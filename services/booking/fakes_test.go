package booking

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"dateplanner/models"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users map[string]models.User
}

func newFakeUserRepo(users ...models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindFirstByRole(role string) (*models.User, error) {
	for _, u := range r.users {
		if u.Role == role {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) UpdateSetDocument(id string, doc bson.M) error {
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

// fakeBookingRepo is an in-memory BookingRepository whose subscriptions
// re-deliver full snapshots on every write, like a live query.
type fakeBookingRepo struct {
	mu        sync.Mutex
	bookings  map[string]models.Booking
	subs      []*fakeSubscriber
	createErr error
	updateErr error
}

type fakeSubscriber struct {
	field  string
	userID string
	ch     chan []models.Booking
	closed bool
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	r.bookings[b.ID] = *b
	r.mu.Unlock()
	r.notify()
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bookings[id]; ok {
		return &b, nil
	}
	return nil, nil
}

func (r *fakeBookingRepo) ListByInitiator(userID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listLocked("fromUserId", userID), nil
}

func (r *fakeBookingRepo) ListByCounterpart(userID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listLocked("targetUserId", userID), nil
}

func (r *fakeBookingRepo) listLocked(field, userID string) []models.Booking {
	var out []models.Booking
	for _, b := range r.bookings {
		if (field == "fromUserId" && b.FromUserID == userID) ||
			(field == "targetUserId" && b.TargetUserID == userID) {
			out = append(out, b)
		}
	}
	return out
}

func (r *fakeBookingRepo) UpdateIfStatus(id, expectedStatus string, doc bson.M) (bool, error) {
	if r.updateErr != nil {
		return false, r.updateErr
	}
	r.mu.Lock()
	b, ok := r.bookings[id]
	if !ok || b.Status != expectedStatus {
		r.mu.Unlock()
		return false, nil
	}
	if status, ok := doc["status"].(string); ok {
		b.Status = status
	}
	if pt, ok := doc["paymentType"].(string); ok {
		b.PaymentType = pt
	}
	r.bookings[id] = b
	r.mu.Unlock()
	r.notify()
	return true, nil
}

func (r *fakeBookingRepo) SubscribeByInitiator(ctx context.Context, userID string) (<-chan []models.Booking, error) {
	return r.subscribe(ctx, "fromUserId", userID), nil
}

func (r *fakeBookingRepo) SubscribeByCounterpart(ctx context.Context, userID string) (<-chan []models.Booking, error) {
	return r.subscribe(ctx, "targetUserId", userID), nil
}

func (r *fakeBookingRepo) subscribe(ctx context.Context, field, userID string) chan []models.Booking {
	sub := &fakeSubscriber{
		field:  field,
		userID: userID,
		ch:     make(chan []models.Booking, 16),
	}
	r.mu.Lock()
	sub.ch <- r.listLocked(field, userID)
	r.subs = append(r.subs, sub)
	r.mu.Unlock()

	go func() {
		<-ctx.Done()
		r.mu.Lock()
		if !sub.closed {
			sub.closed = true
			close(sub.ch)
		}
		r.mu.Unlock()
	}()
	return sub.ch
}

func (r *fakeBookingRepo) notify() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, sub := range r.subs {
		if sub.closed {
			continue
		}
		select {
		case sub.ch <- r.listLocked(sub.field, sub.userID):
		default:
		}
	}
}
