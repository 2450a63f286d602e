package router

import (
	"context"
	"sync"
	"time"

	"service_marketplace/internal/model"
	"service_marketplace/internal/repository"
)

// memStore backs all repositories with maps, enforcing the same constraints as the schema
type memStore struct {
	mu       sync.Mutex
	users    map[int64]*model.User
	workers  map[int64]*model.Worker
	bookings map[int64]*model.Booking
	sessions map[string]*model.Session
	nextID   int64
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[int64]*model.User{},
		workers:  map[int64]*model.Worker{},
		bookings: map[int64]*model.Booking{},
		sessions: map[string]*model.Session{},
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

type memUsers struct{ *memStore }

func (r memUsers) Create(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return repository.ErrDuplicate
		}
	}
	u.ID = r.id()
	u.CreatedAt = time.Now()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r memUsers) FindByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memUsers) FindByID(_ context.Context, id int64) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

type memWorkers struct{ *memStore }

func (r memWorkers) Create(_ context.Context, w *model.Worker) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.workers {
		if existing.UserID == w.UserID {
			return repository.ErrDuplicate
		}
	}
	w.ID = r.id()
	cp := *w
	r.workers[w.ID] = &cp
	return nil
}

func (r memWorkers) FindByID(_ context.Context, id int64) (*model.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w, ok := r.workers[id]; ok {
		cp := *w
		return &cp, nil
	}
	return nil, nil
}

func (r memWorkers) FindByUserID(_ context.Context, userID int64) (*model.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.workers {
		if w.UserID == userID {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memWorkers) List(_ context.Context) ([]model.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Worker{}
	for id := int64(1); id <= r.nextID; id++ {
		if w, ok := r.workers[id]; ok {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r memWorkers) Update(_ context.Context, id int64, p model.WorkerPatch) (*model.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.workers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if p.WorkingStatus != nil {
		w.WorkingStatus = *p.WorkingStatus
	}
	if p.Location != nil {
		w.Location = *p.Location
	}
	if p.Services != nil {
		w.Services = *p.Services
	}
	if p.Experience != nil {
		w.Experience = *p.Experience
	}
	if p.Availability != nil {
		w.Availability = *p.Availability
	}
	if p.About != nil {
		w.About = p.About
	}
	if p.Certifications != nil {
		w.Certifications = *p.Certifications
	}
	cp := *w
	return &cp, nil
}

type memBookings struct{ *memStore }

func (r memBookings) Create(_ context.Context, b *model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.workers[b.WorkerID]; !ok {
		return repository.ErrForeignKey
	}
	b.ID = r.id()
	b.CreatedAt = time.Now()
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r memBookings) FindByID(_ context.Context, id int64) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bookings[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

func (r memBookings) filter(keep func(*model.Booking) bool) []model.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Booking{}
	for id := int64(1); id <= r.nextID; id++ {
		if b, ok := r.bookings[id]; ok && keep(b) {
			out = append(out, *b)
		}
	}
	return out
}

func (r memBookings) FindByCustomerID(_ context.Context, customerID int64) ([]model.Booking, error) {
	return r.filter(func(b *model.Booking) bool { return b.CustomerID == customerID }), nil
}

func (r memBookings) FindByWorkerID(_ context.Context, workerID int64) ([]model.Booking, error) {
	return r.filter(func(b *model.Booking) bool { return b.WorkerID == workerID }), nil
}

func (r memBookings) UpdateStatus(_ context.Context, id int64, status model.BookingStatus) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	b.Status = status
	cp := *b
	return &cp, nil
}

type memSessions struct{ *memStore }

func (r memSessions) Create(_ context.Context, s *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.sessions[s.ID] = &cp
	return nil
}

func (r memSessions) FindByID(_ context.Context, id string) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok && s.ExpiresAt.After(time.Now()) {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r memSessions) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r memSessions) DeleteExpired(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, s := range r.sessions {
		if !s.ExpiresAt.After(time.Now()) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}
