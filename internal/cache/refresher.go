// Package cache keeps the local mute list in step with the admin API.
package cache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/akyairhashvil/mutedesk/internal/models"
	"github.com/akyairhashvil/mutedesk/internal/mute"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Lister fetches the authoritative mute list.
type Lister interface {
	ListMutes(ctx context.Context) ([]models.Mute, error)
}

// Store holds the cached copy.
type Store interface {
	ReplaceMutes(ctx context.Context, mutes []models.Mute, refreshedAt time.Time) error
}

const refreshKey = "mutes"

// Refresher re-fetches the mute list and replaces the cache. Concurrent
// calls share a single fetch. Each fetch is numbered when it starts and a
// fetch never overwrites the result of one that started after it.
type Refresher struct {
	lister Lister
	store  Store
	log    *logrus.Entry
	now    func() time.Time
	group  singleflight.Group

	seq    atomic.Uint64
	mu     sync.Mutex
	stored uint64
}

var _ mute.Refresher = (*Refresher)(nil)

func NewRefresher(lister Lister, store Store, log *logrus.Entry) *Refresher {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Refresher{
		lister: lister,
		store:  store,
		log:    log,
		now:    time.Now,
	}
}

// Refresh joins a fetch already in flight or starts one.
func (r *Refresher) Refresh(ctx context.Context) error {
	return r.refresh(ctx, false)
}

// RefreshAfterChange always starts a new fetch, so the stored list
// includes every write that completed before the call.
func (r *Refresher) RefreshAfterChange(ctx context.Context) error {
	return r.refresh(ctx, true)
}

// AfterChange returns a mute.Refresher backed by RefreshAfterChange, for
// callers that have just modified the server list.
func (r *Refresher) AfterChange() mute.Refresher {
	return afterChange{r: r}
}

type afterChange struct {
	r *Refresher
}

func (a afterChange) Refresh(ctx context.Context) error {
	return a.r.RefreshAfterChange(ctx)
}

func (r *Refresher) refresh(ctx context.Context, fresh bool) error {
	if fresh {
		r.group.Forget(refreshKey)
	}
	_, err, shared := r.group.Do(refreshKey, func() (interface{}, error) {
		return r.fetch(ctx)
	})
	if shared {
		r.log.Debug("singleflight: shared mute list refresh")
	}
	return err
}

func (r *Refresher) fetch(ctx context.Context) (int, error) {
	seq := r.seq.Add(1)
	mutes, err := r.lister.ListMutes(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch mutes: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if seq < r.stored {
		r.log.WithField("fetch", seq).Debug("Discarding superseded mute list")
		return len(mutes), nil
	}
	if err := r.store.ReplaceMutes(ctx, mutes, r.now()); err != nil {
		return 0, fmt.Errorf("store mutes: %w", err)
	}
	r.stored = seq
	r.log.WithField("count", len(mutes)).Debug("Mute cache refreshed")
	return len(mutes), nil
}
