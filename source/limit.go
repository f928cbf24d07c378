package source

import (
	"context"
	"errors"

	"github.com/hupe1980/rawtext/internal/resource"
)

type limited struct {
	src  Source
	ctrl *resource.Controller
}

// Limit wraps src so that every open takes a load slot, charges the region
// size against the memory budget and waits for the IO rate limit. The memory
// is returned when the region is closed.
func Limit(src Source, ctrl *resource.Controller) Source {
	return &limited{src: src, ctrl: ctrl}
}

func (l *limited) Open(ctx context.Context, name string) (*Region, error) {
	if err := l.ctrl.AcquireLoad(ctx); err != nil {
		return nil, err
	}
	defer l.ctrl.ReleaseLoad()

	r, err := l.src.Open(ctx, name)
	if err != nil {
		return nil, err
	}

	size := int64(r.Size())
	if err := l.ctrl.AcquireMemory(size); err != nil {
		return nil, errors.Join(&OpenError{Name: name, Err: err}, r.Close())
	}

	if err := l.ctrl.AcquireIO(ctx, r.Size()); err != nil {
		l.ctrl.ReleaseMemory(size)
		return nil, errors.Join(err, r.Close())
	}

	return NewRegion(r.Bytes(), func() error {
		defer l.ctrl.ReleaseMemory(size)
		return r.Close()
	}), nil
}
