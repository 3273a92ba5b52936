package shift

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/shift"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/civil"
	"github.com/google/uuid"
)

// memoryShifts is an in-memory shift.ShiftRepository. Together with
// memoryTx it gives the service the rollback behavior of a real transaction.
type memoryShifts struct {
	mu     sync.Mutex
	rows   map[string]shift.Shift
	seq    int
	now    func() time.Time
	photos map[string]string
}

func newMemoryShifts(now func() time.Time) *memoryShifts {
	return &memoryShifts{rows: map[string]shift.Shift{}, photos: map[string]string{}, now: now}
}

func (m *memoryShifts) seed(s shift.Shift) shift.Shift {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	m.seq++
	s.CreatedAt = m.now().Add(time.Duration(m.seq) * time.Microsecond)
	s.UpdatedAt = s.CreatedAt
	m.rows[s.ID] = s
	return s
}

func (m *memoryShifts) get(id string) shift.Shift {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[id]
}

func (m *memoryShifts) all() []shift.Shift {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]shift.Shift, 0, len(m.rows))
	for _, s := range m.rows {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (m *memoryShifts) LockEmployee(ctx context.Context, k shift.Key) error { return nil }

func (m *memoryShifts) ListActive(ctx context.Context, k shift.Key) ([]shift.Shift, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []shift.Shift
	for _, s := range m.rows {
		if s.Key() == k && s.IsActive() {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memoryShifts) FindLatestBySchedule(ctx context.Context, k shift.Key, date civil.Date, start civil.TimeOfDay) (shift.Shift, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var (
		latest shift.Shift
		found  bool
	)
	for _, s := range m.rows {
		if s.Key() != k || s.ShiftDate != date || s.ScheduledStart != start {
			continue
		}
		if !found || s.CreatedAt.After(latest.CreatedAt) {
			latest, found = s, true
		}
	}
	if !found {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return latest, nil
}

func (m *memoryShifts) Create(ctx context.Context, s *shift.Shift) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.rows {
		if existing.Key() == s.Key() && existing.IsActive() && s.IsActive() {
			return shift.ErrActiveShiftConflict
		}
	}
	s.ID = uuid.NewString()
	m.seq++
	s.CreatedAt = m.now().Add(time.Duration(m.seq) * time.Microsecond)
	s.UpdatedAt = s.CreatedAt
	m.rows[s.ID] = *s
	return nil
}

func (m *memoryShifts) Update(ctx context.Context, s *shift.Shift) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[s.ID]; !ok {
		return shift.ErrShiftNotFound
	}
	s.UpdatedAt = m.now()
	m.rows[s.ID] = *s
	return nil
}

func (m *memoryShifts) GetForUpdate(ctx context.Context, id, businessID, outletID string) (shift.Shift, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[id]
	if !ok || s.BusinessID != businessID || s.OutletID != outletID {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

func (m *memoryShifts) AttachPhoto(ctx context.Context, id string, kind shift.PhotoKind, ref string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[id]
	if !ok {
		return shift.ErrShiftNotFound
	}
	switch kind {
	case shift.PhotoClockIn:
		s.ClockInPhotoRef = &ref
	case shift.PhotoClockOut:
		s.ClockOutPhotoRef = &ref
	}
	m.rows[id] = s
	m.photos[id+":"+string(kind)] = ref
	return nil
}

func (m *memoryShifts) FindForUserOnDate(ctx context.Context, userID, businessID string, outletID *string, date civil.Date) ([]shift.Shift, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []shift.Shift
	for _, s := range m.rows {
		if s.UserID != userID || s.BusinessID != businessID || s.ShiftDate != date {
			continue
		}
		if outletID != nil && s.OutletID != *outletID {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ScheduledStart != out[j].ScheduledStart {
			return out[j].ScheduledStart.Before(out[i].ScheduledStart)
		}
		return out[j].CreatedAt.Before(out[i].CreatedAt)
	})
	return out, nil
}

func (m *memoryShifts) List(ctx context.Context, f shift.ListFilter) ([]shift.Shift, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []shift.Shift
	for _, s := range m.rows {
		if s.BusinessID != f.BusinessID || s.ShiftDate.Before(f.StartDate) || s.ShiftDate.After(f.EndDate) {
			continue
		}
		if f.OutletID != nil && s.OutletID != *f.OutletID {
			continue
		}
		if f.UserID != nil && s.UserID != *f.UserID {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ShiftDate != out[j].ShiftDate {
			return out[j].ShiftDate.Before(out[i].ShiftDate)
		}
		return out[j].ScheduledStart.Before(out[i].ScheduledStart)
	})
	return out, nil
}

// memoryTx restores the repository snapshot when fn fails.
type memoryTx struct {
	repo *memoryShifts
}

func (t memoryTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.repo.mu.Lock()
	snapshot := maps.Clone(t.repo.rows)
	t.repo.mu.Unlock()

	if err := fn(ctx); err != nil {
		t.repo.mu.Lock()
		t.repo.rows = snapshot
		t.repo.mu.Unlock()
		return err
	}
	return nil
}
