package store

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
)

type item struct {
	ID    string   `json:"id"`
	Tags  []string `json:"tags"`
	Price float64  `json:"price"`
}

func TestCollection_LoadSeedsAbsentSlot(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()
	calls := 0
	c := NewCollection(kv, "items", func() []item {
		calls++
		return []item{{ID: "1", Tags: []string{"a"}, Price: 10}}
	})

	got, err := c.Load(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("Expected seed value, got %+v", got)
	}

	if _, ok, _ := kv.Get(ctx, "items"); !ok {
		t.Error("Expected seed to be persisted")
	}

	// Second load reads the persisted snapshot and does not reseed.
	if _, err := c.Load(ctx); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected seed to run once, ran %d times", calls)
	}
}

func TestCollection_NilSeedLeavesSlotAbsent(t *testing.T) {
	kv := NewMemoryKV()
	c := NewCollection[*item](kv, "session", nil)

	got, err := c.Load(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil, got %+v", got)
	}
	if _, ok, _ := kv.Get(context.Background(), "session"); ok {
		t.Error("Expected slot to stay absent")
	}
}

func TestCollection_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewCollection(NewMemoryKV(), "items", func() []item { return nil })

	want := []item{
		{ID: "1", Tags: []string{"x", "y"}, Price: 12.5},
		{ID: "2", Tags: []string{}, Price: 0},
	}
	if err := c.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := c.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestCollection_CorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	kv.Put(ctx, "items", []byte(`{"not":"a list"}`))
	c := NewCollection(kv, "items", func() []item { return []item{{ID: "seed"}} })

	_, err := c.Load(ctx)
	if !errors.Is(err, ErrCorruptSnapshot) {
		t.Fatalf("Expected ErrCorruptSnapshot, got %v", err)
	}

	raw, _, _ := kv.Get(ctx, "items")
	if string(raw) != `{"not":"a list"}` {
		t.Errorf("Expected corrupt slot to be left untouched, got %s", raw)
	}
}

func TestCollection_UpdateAbortsOnError(t *testing.T) {
	ctx := context.Background()
	c := NewCollection(NewMemoryKV(), "items", func() []item { return []item{{ID: "1"}} })

	boom := errors.New("boom")
	_, err := c.Update(ctx, func(items []item) ([]item, error) {
		return append(items, item{ID: "2"}), boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Expected boom, got %v", err)
	}

	got, _ := c.Load(ctx)
	if len(got) != 1 {
		t.Errorf("Expected no write after failed update, got %d items", len(got))
	}
}

func TestCollection_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	c := NewCollection(NewMemoryKV(), "items", func() []item { return nil })

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Update(ctx, func(items []item) ([]item, error) {
				return append(items, item{ID: "x"}), nil
			})
		}()
	}
	wg.Wait()

	got, _ := c.Load(ctx)
	if len(got) != 50 {
		t.Errorf("Expected 50 items, got %d", len(got))
	}
}

func TestCollection_LookupAndClear(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[*item](NewMemoryKV(), "session", nil)

	if _, ok, err := c.Lookup(ctx); ok || err != nil {
		t.Fatalf("Expected absent slot, ok=%v err=%v", ok, err)
	}
	c.Save(ctx, &item{ID: "u1"})
	v, ok, err := c.Lookup(ctx)
	if err != nil || !ok || v.ID != "u1" {
		t.Fatalf("Expected stored value, got %+v ok=%v err=%v", v, ok, err)
	}
	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, ok, _ := c.Lookup(ctx); ok {
		t.Error("Expected slot cleared")
	}
}

type failingKV struct {
	KV
	err error
}

func (f failingKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, f.err
}

func TestCollection_ReadPathsWrapBackendErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")
	c := NewCollection[*item](failingKV{KV: NewMemoryKV(), err: boom}, "session", nil)

	_, loadErr := c.Load(ctx)
	_, ok, lookupErr := c.Lookup(ctx)
	if ok {
		t.Error("Expected lookup to report absent on error")
	}
	for _, err := range []error{loadErr, lookupErr} {
		if !errors.Is(err, boom) {
			t.Errorf("Expected backend error to be wrapped, got %v", err)
		}
		if err == nil || err.Error() != "failed to load session: connection refused" {
			t.Errorf("Unexpected error text %v", err)
		}
	}
}
