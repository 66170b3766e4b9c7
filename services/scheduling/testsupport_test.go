package scheduling

import (
	"context"
	"sort"
	"sync"
	"time"

	availabilityRepo "slotify/database/repository/availability"
	bookingRepo "slotify/database/repository/booking"
	personRepo "slotify/database/repository/person"
	"slotify/models"
)

// In-memory stand-ins for the Mongo repositories. The booking store's
// conflict-checked insert is guarded by a single mutex, mirroring the
// atomicity the real store gets from a transaction.

type memAvailabilityRepo struct {
	mu   sync.RWMutex
	data map[string]models.WeeklyAvailability
}

func newMemAvailabilityRepo() *memAvailabilityRepo {
	return &memAvailabilityRepo{data: make(map[string]models.WeeklyAvailability)}
}

func (r *memAvailabilityRepo) Get(personID string) (models.WeeklyAvailability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	wa, ok := r.data[personID]
	if !ok {
		return models.WeeklyAvailability{}, availabilityRepo.ErrNotFound
	}
	return wa, nil
}

func (r *memAvailabilityRepo) Replace(personID string, wa models.WeeklyAvailability) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[personID]; !ok {
		return availabilityRepo.ErrNotFound
	}
	r.data[personID] = wa
	return nil
}

type memPersonRepo struct {
	mu   sync.RWMutex
	data map[string]models.Person
}

func newMemPersonRepo() *memPersonRepo {
	return &memPersonRepo{data: make(map[string]models.Person)}
}

func (r *memPersonRepo) Exists(personID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.data[personID]
	return ok, nil
}

func (r *memPersonRepo) GetByID(personID string) (*models.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.data[personID]
	if !ok {
		return nil, personRepo.ErrNotFound
	}
	return &p, nil
}

func (r *memPersonRepo) GetAll() ([]models.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Person, 0, len(r.data))
	for _, p := range r.data {
		out = append(out, p)
	}
	return out, nil
}

func (r *memPersonRepo) Create(p *models.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[p.ID] = *p
	return nil
}

func (r *memPersonRepo) Update(p *models.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[p.ID]; !ok {
		return personRepo.ErrNotFound
	}
	r.data[p.ID] = *p
	return nil
}

func (r *memPersonRepo) Delete(personID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[personID]; !ok {
		return personRepo.ErrNotFound
	}
	delete(r.data, personID)
	return nil
}

type memBookingRepo struct {
	mu   sync.Mutex
	data map[string]models.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{data: make(map[string]models.Booking)}
}

func (r *memBookingRepo) GetByID(bookingID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.data[bookingID]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	return &b, nil
}

func (r *memBookingRepo) ListForPeople(personIDs []string, date time.Time) ([]models.Booking, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.data {
		if b.Involves(personIDs) && b.OverlapsWindow(dayStart, dayEnd) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (r *memBookingRepo) ListByPeople(personIDs []string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.data {
		if len(personIDs) == 0 || b.Involves(personIDs) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (r *memBookingRepo) InsertIfNoConflict(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.data {
		if existing.Involves(booking.PersonIDs) && existing.OverlapsWindow(booking.Start, booking.End) {
			return bookingRepo.ErrConflict
		}
	}
	r.data[booking.ID] = *booking
	return nil
}

func (r *memBookingRepo) Delete(bookingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[bookingID]; !ok {
		return bookingRepo.ErrNotFound
	}
	delete(r.data, bookingID)
	return nil
}

type memLocker struct {
	mu    sync.Mutex
	locks map[string]string
}

func newMemLocker() *memLocker {
	return &memLocker{locks: make(map[string]string)}
}

func (l *memLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, held := l.locks[key]; held {
		return false, "", nil
	}
	value := key + "-holder"
	l.locks[key] = value
	return true, value, nil
}

func (l *memLocker) Unlock(ctx context.Context, key, value string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.locks[key] == value {
		delete(l.locks, key)
	}
	return nil
}

// mustWeekly builds availability for tests, panicking on invalid input.
func mustWeekly(days [7][]models.TimeRange) models.WeeklyAvailability {
	wa, err := models.NewWeeklyAvailability(days)
	if err != nil {
		panic(err)
	}
	return wa
}
