package repository

import (
	"sort"

	"github.com/iliyamo/booking-a-show/internal/model"
)

// ShowRepo is the show registry.  It is owned by a single session and
// is not safe for concurrent use.
type ShowRepo struct {
	shows map[int]*model.Show
}

// NewShowRepo constructs an empty registry.
func NewShowRepo() *ShowRepo {
	return &ShowRepo{shows: make(map[int]*model.Show)}
}

// Create registers a new show.  It returns ErrShowExists when the show
// number is already in use.
func (r *ShowRepo) Create(s *model.Show) error {
	if _, ok := r.shows[s.Number]; ok {
		return ErrShowExists
	}
	r.shows[s.Number] = s
	return nil
}

// GetByNumber looks up a show by its number.
func (r *ShowRepo) GetByNumber(number int) (*model.Show, error) {
	s, ok := r.shows[number]
	if !ok {
		return nil, ErrShowNotFound
	}
	return s, nil
}

// Exists reports whether a show number is registered.
func (r *ShowRepo) Exists(number int) bool {
	_, ok := r.shows[number]
	return ok
}

// List returns all shows ordered by show number.
func (r *ShowRepo) List() []*model.Show {
	out := make([]*model.Show, 0, len(r.shows))
	for _, s := range r.shows {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}
