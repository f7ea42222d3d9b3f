package session

import (
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/endovision/depth-rater/internal/apperr"
	"github.com/endovision/depth-rater/internal/domain"
)

// Session owns one rater's run: the shuffled trial pool, the cursor, the
// pinned slot layout of the current trial and the append-only judgment log.
// It lives in memory for the lifetime of the rater's visit and is discarded
// with the process; nothing is persisted beyond the exported artifact.
//
// The Store guards the registry that hands sessions out; the Session guards
// its own cursor, pinned layout and log with a mutex, since a browser can
// overlap a trial re-render with a judgment submission.
type Session struct {
	id        uuid.UUID
	raterName string
	models    [2]string

	mu        sync.Mutex
	pool      []domain.Item
	cursor    int
	judgments []domain.Judgment
	current   *domain.Presentation

	rng *rand.Rand
}

type Option func(*Session)

// WithRand injects the random source used for the pool shuffle and the slot
// coin-flip. Tests use it for determinism.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		s.rng = r
	}
}

// New starts a session for the given rater over the discovered items. The
// pool is a uniform random permutation of the items, fixed for the session's
// lifetime. models carries the two result-set identities, index-aligned with
// domain.Item.Results.
func New(raterName string, items []domain.Item, models [2]string, opts ...Option) (*Session, error) {
	name := strings.TrimSpace(raterName)
	if name == "" {
		return nil, apperr.NewInvalidInput("rater name is required")
	}

	s := &Session{
		id:        uuid.New(),
		raterName: name,
		models:    models,
		pool:      make([]domain.Item, len(items)),
	}
	copy(s.pool, items)

	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	s.rng.Shuffle(len(s.pool), func(i, j int) {
		s.pool[i], s.pool[j] = s.pool[j], s.pool[i]
	})

	return s, nil
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) RaterName() string {
	return s.raterName
}

// Len is the trial pool size.
func (s *Session) Len() int {
	return len(s.pool)
}

// Cursor is the number of completed trials.
func (s *Session) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

func (s *Session) IsComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isComplete()
}

func (s *Session) isComplete() bool {
	return s.cursor >= len(s.pool)
}

// CurrentTrial returns the item under the cursor and its slot layout. The
// layout is flipped once when the cursor lands on the item and stays pinned
// until RecordAndAdvance, so re-rendering the same trial never reshuffles
// the slots. Returns ok=false once the session is complete.
func (s *Session) CurrentTrial() (domain.Item, domain.Presentation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentTrial()
}

func (s *Session) currentTrial() (domain.Item, domain.Presentation, bool) {
	if s.isComplete() {
		return domain.Item{}, domain.Presentation{}, false
	}
	if s.current == nil {
		s.current = &domain.Presentation{AResult: s.rng.IntN(2)}
	}
	return s.pool[s.cursor], *s.current, true
}

// RecordAndAdvance resolves the chosen slot through the pinned layout to the
// result set's original identity, appends the judgment and moves the cursor
// forward one trial.
func (s *Session) RecordAndAdvance(slot domain.Slot) (domain.Judgment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isComplete() {
		return domain.Judgment{}, apperr.NewInvalidState("session already complete")
	}
	if !slot.Valid() {
		return domain.Judgment{}, apperr.NewInvalidInput("slot must be \"A\" or \"B\"")
	}

	item, presentation, _ := s.currentTrial()
	judgment := domain.Judgment{
		RaterName:   s.raterName,
		Filename:    item.Filename,
		Category:    item.Category,
		ChosenModel: s.models[presentation.ResultIndex(slot)],
	}

	s.judgments = append(s.judgments, judgment)
	s.cursor++
	s.current = nil

	return judgment, nil
}

// Judgments returns a copy of the log in record order.
func (s *Session) Judgments() []domain.Judgment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Judgment, len(s.judgments))
	copy(out, s.judgments)
	return out
}
