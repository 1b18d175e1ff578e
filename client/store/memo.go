package store

import (
	"context"
	"errors"
	"sync"

	"github.com/ribgsilva/memo-api/business/v1/memo"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
)

// MemoStore caches the memos of one notebook
type MemoStore struct {
	gateway  MemoGateway
	notifier Notifier
	log      *zap.SugaredLogger

	mu         sync.Mutex
	state      State
	memos      []memo.Memo
	notebookId int64
	// pending is the notebook of the load in flight while state is Loading
	pending    int64
	generation uint64
	// applied is the Seq of the last NotebookChanged acted on
	applied uint64
	changed chan struct{}
}

func NewMemoStore(gateway MemoGateway, notifier Notifier, log *zap.SugaredLogger) *MemoStore {
	return &MemoStore{
		gateway:  gateway,
		notifier: notifier,
		log:      log,
		memos:    make([]memo.Memo, 0),
		changed:  make(chan struct{}),
	}
}

// PrepareMemos replaces the cache with the memos of notebookId. A load that was
// overtaken by a later one is dropped without touching the cache.
func (s *MemoStore) PrepareMemos(ctx context.Context, notebookId int64) error {
	return s.load(ctx, s.begin(notebookId), notebookId)
}

// AddMemo inserts a memo. It is appended to the cache only when the cache holds its notebook.
// When a load of that notebook is in flight the load is restarted so its result includes the memo.
func (s *MemoStore) AddMemo(ctx context.Context, content string, notebookId int64) (memo.Memo, error) {
	added, err := s.gateway.InsertMemo(ctx, content, notebookId)
	if err != nil {
		return memo.Memo{}, s.fail(FailedAddMemo, err)
	}

	s.mu.Lock()
	if s.state == Loading && s.pending == added.NotebookId {
		gen := s.restart()
		s.mu.Unlock()
		// failures are notified by load, the memo itself is stored
		_ = s.load(ctx, gen, added.NotebookId)
		return added, nil
	}
	if s.state == Ready && added.NotebookId == s.notebookId {
		s.memos = append(s.memos, added)
		s.broadcast()
	}
	s.mu.Unlock()
	return added, nil
}

// DeleteMemo deletes a memo, then drops it from the cache. A load in flight is restarted
// so it cannot bring the memo back.
func (s *MemoStore) DeleteMemo(ctx context.Context, id int64) error {
	if err := s.gateway.DeleteMemo(ctx, id); err != nil {
		return s.fail(FailedDeleteMemo, err)
	}

	s.mu.Lock()
	kept := make([]memo.Memo, 0, len(s.memos))
	for _, m := range s.memos {
		if m.Id != id {
			kept = append(kept, m)
		}
	}
	s.memos = kept
	s.broadcast()

	if s.state != Loading {
		s.mu.Unlock()
		return nil
	}
	gen, pending := s.restart(), s.pending
	s.mu.Unlock()
	_ = s.load(ctx, gen, pending)
	return nil
}

// Clear empties the cache and drops any load in flight
func (s *MemoStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.memos = make([]memo.Memo, 0)
	s.notebookId = 0
	s.state = Uninitialized
	s.broadcast()
}

// Listen follows NotebookChanged events until ctx is done: a notebook id loads its memos, zero clears the cache.
// Events older than the last one acted on are skipped.
func (s *MemoStore) Listen(ctx context.Context, sub *pubsub.Subscription) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		m, err := sub.Receive(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return nil
			}
			return err
		}
		m.Ack()

		e, err := decodeNotebookChanged(m.Body)
		if err != nil {
			s.log.Errorw("memo store", "ERROR", err)
			continue
		}

		if !s.accept(e.Seq) {
			s.log.Debugw("memo store", "status", "outdated event skipped", "notebook_id", e.NotebookId, "seq", e.Seq)
			continue
		}

		if e.NotebookId == 0 {
			s.Clear()
			continue
		}

		gen := s.begin(e.NotebookId)
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_ = s.load(ctx, gen, id)
		}(e.NotebookId)
	}
}

// WaitFor blocks until the cache is ready and scoped to notebookId
func (s *MemoStore) WaitFor(ctx context.Context, notebookId int64) error {
	for {
		s.mu.Lock()
		if s.state == Ready && s.notebookId == notebookId {
			s.mu.Unlock()
			return nil
		}
		changed := s.changed
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-changed:
		}
	}
}

// Memos returns a copy of the cache
func (s *MemoStore) Memos() []memo.Memo {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]memo.Memo, len(s.memos))
	copy(out, s.memos)
	return out
}

// NotebookID is the notebook the cache holds, zero before the first load
func (s *MemoStore) NotebookID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notebookId
}

func (s *MemoStore) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *MemoStore) begin(notebookId int64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.pending = notebookId
	s.state = Loading
	s.broadcast()
	return s.generation
}

// restart makes the load in flight stale and returns the generation of its replacement, must be called with mu held
func (s *MemoStore) restart() uint64 {
	s.generation++
	return s.generation
}

// accept records seq as applied unless a later event was already applied. Events without seq are always accepted.
func (s *MemoStore) accept(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq == 0 {
		return true
	}
	if seq <= s.applied {
		return false
	}
	s.applied = seq
	return true
}

func (s *MemoStore) load(ctx context.Context, gen uint64, notebookId int64) error {
	memos, err := s.gateway.SelectMemo(ctx, notebookId)

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		s.log.Debugw("memo store", "status", "stale load dropped", "notebook_id", notebookId)
		return err
	}
	if err != nil {
		if s.notebookId != 0 {
			s.state = Ready
		} else {
			s.state = Uninitialized
		}
		s.broadcast()
		s.mu.Unlock()
		return s.fail(FailedFetchMemo, err)
	}
	if memos == nil {
		memos = make([]memo.Memo, 0)
	}
	s.memos = memos
	s.notebookId = notebookId
	s.state = Ready
	s.broadcast()
	s.mu.Unlock()
	return nil
}

// broadcast wakes every WaitFor, must be called with mu held
func (s *MemoStore) broadcast() {
	close(s.changed)
	s.changed = make(chan struct{})
}

func (s *MemoStore) fail(message string, err error) error {
	s.log.Errorw(message, "ERROR", err)
	s.notifier.Notify(message, err)
	return err
}
