package common

import (
	"errors"
	"testing"
	"time"
)

func TestCacheServiceGetOrSet(t *testing.T) {
	cs := NewCacheService(600, 1200)

	loads := 0
	loader := func() (any, error) {
		loads++
		return []string{"N12345", "N54321"}, nil
	}

	for i := 0; i < 3; i++ {
		val, err := cs.GetOrSet("fleet", time.Minute, loader)
		if err != nil {
			t.Fatalf("GetOrSet failed: %v", err)
		}
		fleet, ok := val.([]string)
		if !ok || len(fleet) != 2 {
			t.Fatalf("val = %v, want two tail numbers", val)
		}
	}
	if loads != 1 {
		t.Errorf("loader ran %d times, want 1", loads)
	}
}

func TestCacheServiceGetOrSetLoaderError(t *testing.T) {
	cs := NewCacheService(600, 1200)

	wantErr := errors.New("db down")
	if _, err := cs.GetOrSet("fleet", time.Minute, func() (any, error) {
		return nil, wantErr
	}); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want loader error", err)
	}

	// A failed load must not poison the cache.
	if _, found := cs.Get("fleet"); found {
		t.Error("failed load left a cache entry behind")
	}
}

func TestCacheServiceDelete(t *testing.T) {
	cs := NewCacheService(600, 1200)
	cs.Set("k", 1, time.Minute)
	cs.Delete("k")
	if _, found := cs.Get("k"); found {
		t.Error("entry survived delete")
	}
}
