package store

import (
	"context"
	"errors"
	"sync"

	"github.com/ribgsilva/memo-api/business/v1/notebook"
	"github.com/ribgsilva/memo-api/platform/errs"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
)

var ErrUnknownNotebook = errors.New("notebook is not loaded")

// NotebookStore caches every notebook and which one is current
type NotebookStore struct {
	gateway  NotebookGateway
	notifier Notifier
	log      *zap.SugaredLogger
	events   *pubsub.Topic

	mu        sync.Mutex
	state     State
	notebooks []notebook.Notebook
	current   *notebook.Notebook
	seq       uint64
}

// NewNotebookStore builds an empty store. events may be nil when nothing listens to selection changes.
func NewNotebookStore(gateway NotebookGateway, notifier Notifier, log *zap.SugaredLogger, events *pubsub.Topic) *NotebookStore {
	return &NotebookStore{
		gateway:   gateway,
		notifier:  notifier,
		log:       log,
		events:    events,
		notebooks: make([]notebook.Notebook, 0),
	}
}

// PrepareNotebooks loads every notebook and selects the first one when nothing valid is selected
func (s *NotebookStore) PrepareNotebooks(ctx context.Context) error {
	s.mu.Lock()
	previous := s.state
	s.state = Loading
	s.mu.Unlock()

	all, err := s.gateway.SelectAllNotebook(ctx)
	if err != nil {
		s.mu.Lock()
		s.state = previous
		s.mu.Unlock()
		return s.fail(FailedFetchNotebook, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.notebooks = all
	s.state = Ready
	if s.current != nil && s.indexOf(s.current.Id) >= 0 {
		return nil
	}
	if len(all) == 0 {
		s.choose(ctx, nil)
	} else {
		s.choose(ctx, &all[0])
	}
	return nil
}

// AddNotebook inserts a notebook, appends it to the cache and makes it current
func (s *NotebookStore) AddNotebook(ctx context.Context, name string) (notebook.Notebook, error) {
	added, err := s.gateway.InsertNotebook(ctx, name)
	if err != nil {
		return notebook.Notebook{}, s.fail(FailedAddNotebook, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.notebooks = append(s.notebooks, added)
	s.choose(ctx, &added)
	return added, nil
}

// SetCurrentNotebook selects a notebook already in the cache
func (s *NotebookStore) SetCurrentNotebook(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return &errs.InputError{Field: "notebook_id", Err: ErrUnknownNotebook}
	}
	if s.current != nil && s.current.Id == id {
		return nil
	}
	selected := s.notebooks[i]
	s.choose(ctx, &selected)
	return nil
}

// DeleteNotebook deletes a notebook and drops it from the cache. When it was current the first
// remaining notebook, or none, becomes current. Memos of the notebook are left alone.
func (s *NotebookStore) DeleteNotebook(ctx context.Context, id int64) error {
	if err := s.gateway.DeleteNotebook(ctx, id); err != nil {
		return s.fail(FailedDeleteNotebook, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]notebook.Notebook, 0, len(s.notebooks))
	for _, n := range s.notebooks {
		if n.Id != id {
			kept = append(kept, n)
		}
	}
	s.notebooks = kept

	if s.current != nil && s.current.Id == id {
		if len(kept) == 0 {
			s.choose(ctx, nil)
		} else {
			s.choose(ctx, &kept[0])
		}
	}
	return nil
}

// Notebooks returns a copy of the cache
func (s *NotebookStore) Notebooks() []notebook.Notebook {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]notebook.Notebook, len(s.notebooks))
	copy(out, s.notebooks)
	return out
}

// Current returns the selected notebook, false when none is selected
func (s *NotebookStore) Current() (notebook.Notebook, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return notebook.Notebook{}, false
	}
	return *s.current, true
}

func (s *NotebookStore) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// choose must be called with mu held
func (s *NotebookStore) choose(ctx context.Context, n *notebook.Notebook) {
	var before, after int64
	if s.current != nil {
		before = s.current.Id
	}
	if n != nil {
		after = n.Id
		selected := *n
		s.current = &selected
	} else {
		s.current = nil
	}
	if before == after || s.events == nil {
		return
	}
	s.seq++
	if err := publishNotebookChanged(ctx, s.events, NotebookChanged{NotebookId: after, Seq: s.seq}); err != nil {
		s.log.Errorw("notebook store", "ERROR", err, "notebook_id", after)
	}
}

func (s *NotebookStore) indexOf(id int64) int {
	for i, n := range s.notebooks {
		if n.Id == id {
			return i
		}
	}
	return -1
}

func (s *NotebookStore) fail(message string, err error) error {
	s.log.Errorw(message, "ERROR", err)
	s.notifier.Notify(message, err)
	return err
}
