package reaction

import (
	"context"
	"log"
	"sync"

	"pensees/internal/ledger"
)

// Mutator issues the server-side counter change. The pre-toggle count is
// passed as the base so the backend applies its own +1/-1 instead of
// receiving an absolute value that could race with other clients.
type Mutator interface {
	Increment(ctx context.Context, entityID string, base int) error
	Decrement(ctx context.Context, entityID string, base int) error
}

// Controller wraps one reaction counter kind (aphorism likes, reflection
// likes, reflection dislikes). Toggle applies the local delta and updates
// the ledger before the mutation is dispatched, so rapid repeated clicks
// always see the latest toggle state. The mutation itself is fire-and-
// forget: failures are logged and the optimistic state is kept, accepting
// visible drift against server truth.
type Controller struct {
	mu      sync.Mutex
	ledger  *ledger.Ledger
	key     string
	mutator Mutator

	// inflight lets tests wait for dispatched mutations; callers never do.
	inflight sync.WaitGroup
}

func NewController(l *ledger.Ledger, key string, m Mutator) *Controller {
	return &Controller{ledger: l, key: key, mutator: m}
}

// Active reports whether this client has the reaction set for the entity.
func (c *Controller) Active(entityID string) (bool, error) {
	return c.ledger.Has(c.key, entityID)
}

// Toggle flips the reaction for entityID. current is the last known server
// count (a missing count is passed as 0). It returns the new locally
// displayed count and the new toggle state. Exactly one mutation is
// dispatched per call; overlapping calls are not coalesced.
func (c *Controller) Toggle(ctx context.Context, entityID string, current int) (int, bool, error) {
	c.mu.Lock()

	active, err := c.ledger.Has(c.key, entityID)
	if err != nil {
		c.mu.Unlock()
		return current, false, err
	}

	var count int
	if active {
		count = current - 1
		if count < 0 {
			count = 0
		}
		err = c.ledger.Remove(c.key, entityID)
	} else {
		count = current + 1
		err = c.ledger.Add(c.key, entityID)
	}
	if err != nil {
		c.mu.Unlock()
		return current, active, err
	}

	activating := !active
	c.mu.Unlock()

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()

		var err error
		if activating {
			err = c.mutator.Increment(ctx, entityID, current)
		} else {
			err = c.mutator.Decrement(ctx, entityID, current)
		}
		if err != nil {
			// The optimistic state is kept; the server counter is the
			// source of truth and will win on the next full load.
			log.Printf("reaction %s sync failed for %s: %v", c.key, entityID, err)
		}
	}()

	return count, activating, nil
}

// Wait blocks until all dispatched mutations have settled. Test hook only.
func (c *Controller) Wait() {
	c.inflight.Wait()
}
