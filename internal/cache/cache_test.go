package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestMemory_GetSet(t *testing.T) {
	m := NewMemory()

	if _, ok := m.Get("missing"); ok {
		t.Fatal("expected miss on empty cache")
	}

	if err := m.Set("k", "v"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	v, ok := m.Get("k")
	if !ok || v != "v" {
		t.Fatalf("Get = %q, %v; want \"v\", true", v, ok)
	}
}

func TestMemory_Overwrite(t *testing.T) {
	m := NewMemory()
	_ = m.Set("k", "first")
	_ = m.Set("k", "second")

	v, _ := m.Get("k")
	if v != "second" {
		t.Fatalf("expected overwrite, got %q", v)
	}
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	m := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%4)
			_ = m.Set(key, "v")
			_, _ = m.Get(key)
		}(i)
	}
	wg.Wait()
}
