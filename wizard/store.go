package wizard

import (
	"errors"
	"sync"
	"time"

	"venue-webapp/model"

	"github.com/google/uuid"
)

var ErrNoDraft = errors.New("no such draft")

// Draft is one in-progress wizard run.
type Draft struct {
	Id        string    `json:"draftId"`
	Step      Step      `json:"step"`
	Form      Form      `json:"form"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store keeps drafts in memory for the lifetime of the process, matching the
// transient state of the original page.
type Store struct {
	mu     sync.RWMutex
	drafts map[string]*Draft
}

func NewStore() *Store {
	return &Store{drafts: make(map[string]*Draft)}
}

// clone detaches a draft from the store's copy, including the form's slices,
// so callers can mutate it freely between Get and Save.
func (d *Draft) clone() *Draft {
	cp := *d
	cp.Form.Dates = append([]string(nil), d.Form.Dates...)
	cp.Form.Guests = append([]model.Guest(nil), d.Form.Guests...)
	return &cp
}

func (st *Store) Create() *Draft {
	draft := &Draft{
		Id:        uuid.NewString(),
		Step:      StepBasicInfo,
		Form:      Form{Dates: []string{""}},
		CreatedAt: time.Now(),
	}

	st.mu.Lock()
	st.drafts[draft.Id] = draft
	st.mu.Unlock()

	return draft.clone()
}

// Get returns a private copy of the draft. Changes to it become visible to
// other requests only through Save.
func (st *Store) Get(id string) (*Draft, error) {
	st.mu.RLock()
	draft, ok := st.drafts[id]
	st.mu.RUnlock()

	if !ok {
		return nil, ErrNoDraft
	}
	return draft.clone(), nil
}

// Save commits a mutated copy back under the lock. A draft deleted in the
// meantime stays deleted.
func (st *Store) Save(draft *Draft) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.drafts[draft.Id]; !ok {
		return ErrNoDraft
	}
	st.drafts[draft.Id] = draft.clone()
	return nil
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.drafts, id)
	st.mu.Unlock()
}
