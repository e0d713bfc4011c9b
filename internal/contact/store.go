package contact

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// Saver persists the complete contact list. Implementations rewrite the whole
// backing storage on every call.
type Saver interface {
	Save(ctx context.Context, contacts []Contact) error
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for mutation and save diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Store is the ordered in-memory contact list plus its id counter.
type Store struct {
	contacts []Contact
	nextID   int
	saver    Saver
	log      *zap.Logger
}

// NewStore builds a store from previously loaded contacts.
// The next id is one past the largest id in initial, or 1 if there is none.
func NewStore(initial []Contact, saver Saver, opts ...Option) *Store {
	maxID := 0
	for _, c := range initial {
		if c.ID > maxID {
			maxID = c.ID
		}
	}

	s := &Store{
		contacts: slices.Clone(initial),
		nextID:   maxID + 1,
		saver:    saver,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len returns the number of contacts.
func (s *Store) Len() int {
	return len(s.contacts)
}

// NextID returns the id the next Add will assign.
func (s *Store) NextID() int {
	return s.nextID
}

// All returns a copy of every contact in store order.
func (s *Store) All() []Contact {
	return slices.Clone(s.contacts)
}

// Add appends a new contact with the next id and saves.
// On a save failure the contact is still added and returned alongside an
// error wrapping ErrSave.
func (s *Store) Add(ctx context.Context, name, phone, email, address string) (Contact, error) {
	c := Contact{
		ID:      s.nextID,
		Name:    strings.TrimSpace(name),
		Phone:   strings.TrimSpace(phone),
		Email:   strings.TrimSpace(email),
		Address: strings.TrimSpace(address),
	}
	s.nextID++
	s.contacts = append(s.contacts, c)
	s.log.Debug("contact added", zap.Int("id", c.ID))

	return c, s.Save(ctx)
}

// FindByID returns the contact with the given id.
func (s *Store) FindByID(id int) (Contact, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Contact{}, false
	}
	return s.contacts[i], true
}

// Find returns every contact accepted by m, in store order.
func (s *Store) Find(m Matcher) []Contact {
	var out []Contact
	for _, c := range s.contacts {
		if m(c) {
			out = append(out, c)
		}
	}
	return out
}

// Update applies the non-blank fields of p to the contact and saves.
// Returns ErrNotFound without saving when id is unknown.
func (s *Store) Update(ctx context.Context, id int, p Patch) (Contact, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Contact{}, fmt.Errorf("update %d: %w", id, ErrNotFound)
	}
	p.apply(&s.contacts[i])
	s.log.Debug("contact updated", zap.Int("id", id), zap.Bool("changed", !p.IsEmpty()))

	return s.contacts[i], s.Save(ctx)
}

// Delete removes the contact and saves.
// Returns ErrNotFound without saving when id is unknown.
func (s *Store) Delete(ctx context.Context, id int) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("delete %d: %w", id, ErrNotFound)
	}
	s.contacts = slices.Delete(s.contacts, i, i+1)
	s.log.Debug("contact deleted", zap.Int("id", id))

	return s.Save(ctx)
}

// SortByName orders contacts by case-folded name and saves.
// Equal names keep their relative order.
func (s *Store) SortByName(ctx context.Context) error {
	SortByName(s.contacts)
	s.log.Debug("contacts sorted", zap.Int("count", len(s.contacts)))

	return s.Save(ctx)
}

// Save writes the full contact list through the saver.
func (s *Store) Save(ctx context.Context) error {
	if s.saver == nil {
		return nil
	}
	if err := s.saver.Save(ctx, s.All()); err != nil {
		s.log.Warn("save failed", zap.Int("count", len(s.contacts)), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	return nil
}

func (s *Store) indexOf(id int) int {
	return slices.IndexFunc(s.contacts, func(c Contact) bool { return c.ID == id })
}

// SortByName stably sorts contacts in place by case-folded name.
func SortByName(contacts []Contact) {
	slices.SortStableFunc(contacts, func(a, b Contact) int {
		return strings.Compare(fold(a.Name), fold(b.Name))
	})
}
