package service

import (
	"context"
	"errors"

	"zerodefect-backend/cache"
	"zerodefect-backend/store"
)

var errFlaky = errors.New("connection reset")

// remoteFake acts as the remote backend in tests. It stores records in its
// own private cache and can be flipped into failure modes per direction.
type remoteFake struct {
	inner      *store.Local
	failWrites bool
	failReads  bool
}

func (f *remoteFake) Remote() bool { return true }

func (f *remoteFake) Insert(ctx context.Context, kind string, record any) error {
	if f.failWrites {
		return errFlaky
	}
	return f.inner.Insert(ctx, kind, record)
}

func (f *remoteFake) Update(ctx context.Context, kind string, id, patch any) error {
	if f.failWrites {
		return errFlaky
	}
	return f.inner.Update(ctx, kind, id, patch)
}

func (f *remoteFake) Delete(ctx context.Context, kind string, id any) error {
	if f.failWrites {
		return errFlaky
	}
	return f.inner.Delete(ctx, kind, id)
}

func (f *remoteFake) FetchAll(ctx context.Context, kind string, out any) error {
	if f.failReads {
		return errFlaky
	}
	return f.inner.FetchAll(ctx, kind, out)
}

func (f *remoteFake) FetchWhere(ctx context.Context, kind, field string, value any, out any) error {
	if f.failReads {
		return errFlaky
	}
	return f.inner.FetchWhere(ctx, kind, field, value, out)
}

// newRemoteEnv builds services over a fake remote backend plus a separate
// local cache, mirroring the production remote-mode wiring.
func newRemoteEnv() (*Services, *remoteFake, *cache.Cache) {
	fake := &remoteFake{inner: store.NewLocal(cache.New(cache.NewMemory()))}
	local := cache.New(cache.NewMemory())
	return New(fake, local), fake, local
}

// newLocalEnv builds services over the local-only backend, mirroring the
// degraded startup path.
func newLocalEnv() (*Services, *cache.Cache) {
	c := cache.New(cache.NewMemory())
	return New(store.NewLocal(c), c), c
}
