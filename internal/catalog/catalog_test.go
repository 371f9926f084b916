package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"jobscout/internal/domain/skill"

	"github.com/google/uuid"
)

type countingSource struct {
	mu    sync.Mutex
	calls int
	out   []skill.Skill
	err   error
}

func (s *countingSource) Skills(context.Context) ([]skill.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.out, nil
}

func TestMemo_LoadsOnce(t *testing.T) {
	src := &countingSource{out: []skill.Skill{{ID: uuid.New(), Name: "Go"}}}
	m := NewMemo(src)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			skills, err := m.Skills(context.Background())
			if err != nil {
				t.Errorf("unexpected err: %v", err)
				return
			}
			if len(skills) != 1 {
				t.Errorf("expected 1 skill, got %d", len(skills))
			}
		}()
	}
	wg.Wait()

	if src.calls != 1 {
		t.Fatalf("expected a single source load, got %d", src.calls)
	}
}

func TestMemo_ErrorIsNotCached(t *testing.T) {
	src := &countingSource{err: errors.New("db down")}
	m := NewMemo(src)

	if _, err := m.Skills(context.Background()); err == nil {
		t.Fatalf("expected error")
	}

	src.mu.Lock()
	src.err = nil
	src.out = []skill.Skill{{ID: uuid.New(), Name: "Go"}}
	src.mu.Unlock()

	skills, err := m.Skills(context.Background())
	if err != nil {
		t.Fatalf("unexpected err after recovery: %v", err)
	}
	if len(skills) != 1 {
		t.Fatalf("expected 1 skill, got %d", len(skills))
	}
}
