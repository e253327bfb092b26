package application

import (
	"context"
	"errors"
	"slices"

	"github.com/ericfisherdev/grocerylist/internal/adapter/driven/memory"
	"github.com/ericfisherdev/grocerylist/internal/domain/model"
)

var errDiskFull = errors.New("disk full")

// countingStore wraps an in-memory record store, counting writes and
// optionally failing them.
type countingStore struct {
	inner     *memory.RecordStore
	puts      int
	deletes   int
	getErr    error
	putErr    error
	deleteErr error
}

func newCountingStore() *countingStore {
	return &countingStore{inner: memory.NewRecordStore()}
}

func (s *countingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.inner.Get(ctx, key)
}

func (s *countingStore) Put(ctx context.Context, key string, value []byte) error {
	s.puts++
	if s.putErr != nil {
		return s.putErr
	}
	return s.inner.Put(ctx, key, value)
}

func (s *countingStore) Delete(ctx context.Context, key string) error {
	s.deletes++
	if s.deleteErr != nil {
		return s.deleteErr
	}
	return s.inner.Delete(ctx, key)
}

func (s *countingStore) writes() int {
	return s.puts + s.deletes
}

// mockPresenter keeps the rows the core asked it to show.
type mockPresenter struct {
	rows    []model.Entry
	visible bool
	resets  int
}

func (p *mockPresenter) RenderEntry(entry model.Entry) {
	if i := slices.IndexFunc(p.rows, func(e model.Entry) bool { return e.ID == entry.ID }); i >= 0 {
		p.rows[i] = entry
		return
	}
	p.rows = append(p.rows, entry)
}

func (p *mockPresenter) RemoveEntry(id string) {
	p.rows = slices.DeleteFunc(p.rows, func(e model.Entry) bool { return e.ID == id })
}

func (p *mockPresenter) SetContainerVisible(visible bool) { p.visible = visible }

func (p *mockPresenter) Reset() {
	p.rows = nil
	p.resets++
}

type notice struct {
	message string
	kind    model.NoticeKind
}

type mockNotifier struct {
	notices []notice
}

func (n *mockNotifier) Notify(message string, kind model.NoticeKind) {
	n.notices = append(n.notices, notice{message: message, kind: kind})
}

func (n *mockNotifier) last() notice {
	if len(n.notices) == 0 {
		return notice{}
	}
	return n.notices[len(n.notices)-1]
}

type mockRecorder struct {
	counts map[string]int
}

func (r *mockRecorder) RecordCommand(command string, outcome model.Outcome) {
	if r.counts == nil {
		r.counts = make(map[string]int)
	}
	r.counts[command+"/"+string(outcome)]++
}

// sequenceIDs returns an id generator yielding ids in order, then repeating the last.
func sequenceIDs(ids ...string) func() string {
	i := 0
	return func() string {
		id := ids[min(i, len(ids)-1)]
		i++
		return id
	}
}
