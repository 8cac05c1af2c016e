package storage

import (
	"context"
	"log/slog"
	"sync"

	"github.com/nmtri/soquy/internal/model"
)

// notifier fans full result-set snapshots out to subscribers whenever
// the underlying rows change. Each snapshot is a complete replacement,
// never a delta. Channels hold at most one pending snapshot; a newer
// one displaces an unconsumed older one so slow consumers only ever
// skip intermediate states.
type notifier struct {
	txSubs  map[int]chan []model.Transaction
	catSubs map[int]chan []model.Category
	done    chan struct{}
	mu      sync.Mutex
	nextID  int
	closed  bool
}

func newNotifier() *notifier {
	return &notifier{
		txSubs:  make(map[int]chan []model.Transaction),
		catSubs: make(map[int]chan []model.Category),
		done:    make(chan struct{}),
	}
}

func (n *notifier) close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.closed = true
	close(n.done)
	for id, ch := range n.txSubs {
		close(ch)
		delete(n.txSubs, id)
	}
	for id, ch := range n.catSubs {
		close(ch)
		delete(n.catSubs, id)
	}
}

// push replaces any unconsumed snapshot with the latest one.
func push[T any](ch chan []T, snapshot []T) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snapshot:
	default:
	}
}

// WatchTransactions returns a channel that receives the current
// transaction list immediately and a fresh full snapshot after every
// committed write. The subscription ends when ctx is canceled or the
// store closes; the channel is closed either way.
func (s *Store) WatchTransactions(ctx context.Context) (<-chan []model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	initial, err := s.GetAllTransactions(ctx)
	if err != nil {
		return nil, err
	}

	ch := make(chan []model.Transaction, 1)
	ch <- initial

	s.notifier.mu.Lock()
	id := s.notifier.nextID
	s.notifier.nextID++
	s.notifier.txSubs[id] = ch
	s.notifier.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
		case <-s.notifier.done:
			// Store close already closed every subscription channel.
			return
		}
		s.notifier.mu.Lock()
		defer s.notifier.mu.Unlock()
		if sub, ok := s.notifier.txSubs[id]; ok {
			delete(s.notifier.txSubs, id)
			close(sub)
		}
	}()

	return ch, nil
}

// WatchCategories is the category counterpart of WatchTransactions.
func (s *Store) WatchCategories(ctx context.Context) (<-chan []model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	initial, err := s.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}

	ch := make(chan []model.Category, 1)
	ch <- initial

	s.notifier.mu.Lock()
	id := s.notifier.nextID
	s.notifier.nextID++
	s.notifier.catSubs[id] = ch
	s.notifier.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
		case <-s.notifier.done:
			return
		}
		s.notifier.mu.Lock()
		defer s.notifier.mu.Unlock()
		if sub, ok := s.notifier.catSubs[id]; ok {
			delete(s.notifier.catSubs, id)
			close(sub)
		}
	}()

	return ch, nil
}

func (s *Store) notifyTransactions(ctx context.Context) {
	s.notifier.mu.Lock()
	count := len(s.notifier.txSubs)
	s.notifier.mu.Unlock()
	if count == 0 {
		return
	}

	snapshot, err := s.GetAllTransactions(ctx)
	if err != nil {
		slog.Warn("failed to build transaction snapshot for subscribers", "error", err)
		return
	}

	s.notifier.mu.Lock()
	defer s.notifier.mu.Unlock()
	for _, ch := range s.notifier.txSubs {
		push(ch, snapshot)
	}
}

func (s *Store) notifyCategories(ctx context.Context) {
	s.notifier.mu.Lock()
	count := len(s.notifier.catSubs)
	s.notifier.mu.Unlock()
	if count == 0 {
		return
	}

	snapshot, err := s.GetAllCategories(ctx)
	if err != nil {
		slog.Warn("failed to build category snapshot for subscribers", "error", err)
		return
	}

	s.notifier.mu.Lock()
	defer s.notifier.mu.Unlock()
	for _, ch := range s.notifier.catSubs {
		push(ch, snapshot)
	}
}
