package validate

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"quiver/internal/diag"
)

func TestDiskCache_RoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	key := DigestOf("graph TD\n")
	in := &Outcome{
		Schema:  cacheSchemaVersion,
		OK:      false,
		Code:    string(diag.ValNoHeader),
		Message: "expected a diagram type declaration",
		HasLoc:  true,
		Loc:     [4]int{1, 1, 1, 6},
	}
	if err := cache.Put(key, in); err != nil {
		t.Fatal(err)
	}

	var out Outcome
	ok, err := cache.Get(key, &out)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("miss after Put")
	}
	if out != *in {
		t.Errorf("got %+v, want %+v", out, *in)
	}
}

func TestDiskCache_MissForUnknownKey(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var out Outcome
	ok, err := cache.Get(DigestOf("never stored"), &out)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("hit for unknown key")
	}
}

func TestDiskCache_SchemaMismatchIsMiss(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := DigestOf("text")
	if err := cache.Put(key, &Outcome{Schema: cacheSchemaVersion + 1, OK: true}); err != nil {
		t.Fatal(err)
	}
	var out Outcome
	ok, err := cache.Get(key, &out)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("hit despite schema mismatch")
	}
}

func TestCached_SkipsValidatorOnHit(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	calls := atomic.Int32{}
	inner := Func(func(ctx context.Context, text string) error {
		calls.Add(1)
		return &Error{
			Code:    diag.ValNoHeader,
			Message: "no header",
			Loc:     &Loc{FirstLine: 1, LastLine: 1, FirstCol: 1, LastCol: 6},
		}
	})
	v := Cached(inner, cache)

	ctx := context.Background()
	err1 := v.Validate(ctx, "A-->B\n")
	err2 := v.Validate(ctx, "A-->B\n")
	if calls.Load() != 1 {
		t.Errorf("validator calls = %d, want 1", calls.Load())
	}

	var verr1, verr2 *Error
	if !errors.As(err1, &verr1) || !errors.As(err2, &verr2) {
		t.Fatalf("error types %T / %T", err1, err2)
	}
	if verr1.Code != verr2.Code || verr1.Message != verr2.Message {
		t.Errorf("cached error differs: %+v vs %+v", verr1, verr2)
	}
	if verr2.Loc == nil || *verr2.Loc != *verr1.Loc {
		t.Errorf("cached loc differs: %+v vs %+v", verr1.Loc, verr2.Loc)
	}
}

func TestCached_CachesSuccess(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	calls := atomic.Int32{}
	inner := Func(func(ctx context.Context, text string) error {
		calls.Add(1)
		return nil
	})
	v := Cached(inner, cache)

	ctx := context.Background()
	if err := v.Validate(ctx, "graph TD\n"); err != nil {
		t.Fatal(err)
	}
	if err := v.Validate(ctx, "graph TD\n"); err != nil {
		t.Fatal(err)
	}
	if calls.Load() != 1 {
		t.Errorf("validator calls = %d, want 1", calls.Load())
	}
}

func TestDiskCache_DropAll(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := DigestOf("text")
	if err := cache.Put(key, &Outcome{Schema: cacheSchemaVersion, OK: true}); err != nil {
		t.Fatal(err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	var out Outcome
	ok, err := cache.Get(key, &out)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("hit after DropAll")
	}
}
