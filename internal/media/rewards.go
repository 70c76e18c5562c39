// internal/media/rewards.go
//
// Rewards fetches one random image per win in the background.
//   - Prefetch is fire-and-forget: it returns immediately and the outcome is
//     read later with Get.
//   - A failed or empty fetch resolves to StatusNone with a placeholder.
//   - Only the most recent maxRewards keys are kept.

package media

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const maxRewards = 1024

type RewardStatus string

const (
	StatusPending RewardStatus = "pending"
	StatusReady   RewardStatus = "ready"
	StatusNone    RewardStatus = "none"
)

// Reward is the state of one per-win fetch.
type Reward struct {
	Status      RewardStatus `json:"status"`
	Item        *Item        `json:"item,omitempty"`
	Placeholder *Item        `json:"placeholder,omitempty"`
}

type Rewards struct {
	fetch       func(context.Context) []Item
	timeout     time.Duration
	placeholder *Item

	mu    sync.Mutex
	rng   *rand.Rand
	m     map[string]Reward
	order []string
	wg    sync.WaitGroup
}

// NewRewards fetches through c.SourceImages, each attempt bounded by timeout.
func NewRewards(c *Collector, timeout time.Duration) *Rewards {
	r := newRewards(c.SourceImages, timeout)
	if len(c.fallback) > 0 {
		p := c.fallback[0]
		r.placeholder = &p
	}
	return r
}

func newRewards(fetch func(context.Context) []Item, timeout time.Duration) *Rewards {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Rewards{
		fetch:   fetch,
		timeout: timeout,
		rng:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5ac4)),
		m:       make(map[string]Reward),
	}
}

// Prefetch starts fetching a reward for key unless one is known already.
func (r *Rewards) Prefetch(key string) {
	r.mu.Lock()
	if _, ok := r.m[key]; ok {
		r.mu.Unlock()
		return
	}
	r.putLocked(key, Reward{Status: StatusPending})
	r.mu.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		items := r.fetch(ctx)

		r.mu.Lock()
		defer r.mu.Unlock()
		if _, ok := r.m[key]; !ok {
			return
		}
		if len(items) == 0 {
			log.Warn().Str("key", key).Msg("media: reward fetch returned nothing")
			r.m[key] = Reward{Status: StatusNone, Placeholder: r.placeholder}
			return
		}
		pick := Sample(r.rng, items, 1)[0]
		r.m[key] = Reward{Status: StatusReady, Item: &pick}
	}()
}

// Get returns the reward for key; ok is false when none was requested.
func (r *Rewards) Get(key string) (Reward, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rw, ok := r.m[key]
	return rw, ok
}

// Wait blocks until every in-flight fetch has settled.
func (r *Rewards) Wait() { r.wg.Wait() }

func (r *Rewards) putLocked(key string, rw Reward) {
	r.m[key] = rw
	r.order = append(r.order, key)
	for len(r.order) > maxRewards {
		delete(r.m, r.order[0])
		r.order = r.order[1:]
	}
}
