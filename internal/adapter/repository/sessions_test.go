package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Ayush99392003/resume-maker/internal/domain"
)

func variants(prefix string) []domain.DraftVariant {
	return []domain.DraftVariant{
		{ID: prefix + "-v1", LatexCode: prefix + " standard", Summary: "safe", Intent: "Standard"},
		{ID: prefix + "-v2", LatexCode: prefix + " creative", Summary: "bold", Intent: "Creative"},
	}
}

func TestSessionStore_CreateAndGet(t *testing.T) {
	store := NewSessionStore(0)
	id := store.CreateSession("original doc", "Skills", variants("a"))
	if id == "" {
		t.Fatal("empty session id")
	}

	v, err := store.GetVariant(id, "a-v2")
	if err != nil {
		t.Fatalf("GetVariant: %v", err)
	}
	if v.LatexCode != "a creative" {
		t.Errorf("variant = %+v", v)
	}

	sess, err := store.GetSession(id)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if sess.OriginalLatex != "original doc" || sess.SectionName != "Skills" {
		t.Errorf("session = %+v", sess)
	}
}

func TestSessionStore_Isolation(t *testing.T) {
	store := NewSessionStore(0)
	id1 := store.CreateSession("doc one", "", variants("one"))
	id2 := store.CreateSession("doc two", "", variants("two"))
	if id1 == id2 {
		t.Fatal("session ids must be unique")
	}

	if _, err := store.GetVariant(id1, "two-v1"); !errors.Is(err, domain.ErrVariantNotFound) {
		t.Errorf("cross-session lookup err = %v, want ErrVariantNotFound", err)
	}
	if _, err := store.GetVariant(id2, "one-v1"); !errors.Is(err, domain.ErrVariantNotFound) {
		t.Errorf("cross-session lookup err = %v, want ErrVariantNotFound", err)
	}
}

func TestSessionStore_NotFound(t *testing.T) {
	store := NewSessionStore(0)
	if _, err := store.GetVariant("nope", "v1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}

	id := store.CreateSession("doc", "", variants("x"))
	if _, err := store.GetVariant(id, "missing"); !errors.Is(err, domain.ErrVariantNotFound) {
		t.Errorf("err = %v, want ErrVariantNotFound", err)
	}
}

func TestSessionStore_CallerCannotMutate(t *testing.T) {
	store := NewSessionStore(0)
	id := store.CreateSession("doc", "", variants("x"))

	sess, _ := store.GetSession(id)
	sess.Variants[0].LatexCode = "tampered"
	sess.OriginalLatex = "tampered"

	v, err := store.GetVariant(id, "x-v1")
	if err != nil {
		t.Fatalf("GetVariant: %v", err)
	}
	if v.LatexCode != "x standard" {
		t.Errorf("store content was mutated through a returned copy")
	}
}

func TestSessionStore_TTLExpiry(t *testing.T) {
	store := NewSessionStore(time.Minute)
	current := time.Unix(1000, 0)
	store.now = func() time.Time { return current }

	id := store.CreateSession("doc", "", variants("x"))
	if _, err := store.GetSession(id); err != nil {
		t.Fatalf("fresh session should be readable: %v", err)
	}

	current = current.Add(2 * time.Minute)
	if _, err := store.GetSession(id); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expired session err = %v, want ErrSessionNotFound", err)
	}

	// creation prunes expired entries
	old := store.CreateSession("old", "", variants("o"))
	current = current.Add(2 * time.Minute)
	_ = store.CreateSession("new", "", variants("n"))
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1 after prune", store.Len())
	}
	if _, err := store.GetSession(old); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("pruned session err = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionStore_ConcurrentAccess(t *testing.T) {
	store := NewSessionStore(0)
	var wg sync.WaitGroup
	ids := make([]string, 50)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			prefix := fmt.Sprintf("s%d", i)
			id := store.CreateSession("doc "+prefix, "", variants(prefix))
			ids[i] = id
			if _, err := store.GetVariant(id, prefix+"-v1"); err != nil {
				t.Errorf("GetVariant(%s): %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate session id %s", id)
		}
		seen[id] = true
	}
	if store.Len() != 50 {
		t.Errorf("Len = %d, want 50", store.Len())
	}
}
