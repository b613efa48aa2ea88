package service

import (
	"sync"
	"time"
)

// PlanCache holds analyzed plans between the analyze and organize requests
// of the web flow, keyed by upload id. Entries expire after the configured
// TTL, which should match the session expiration.
type PlanCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	plans map[string]cachedPlan
}

type cachedPlan struct {
	plan    *Plan
	expires time.Time
}

// NewPlanCache creates an empty cache whose entries live for ttl.
// A non-positive ttl keeps entries until they are taken.
func NewPlanCache(ttl time.Duration) *PlanCache {
	return &PlanCache{ttl: ttl, now: time.Now, plans: make(map[string]cachedPlan)}
}

// Put stores p under id, replacing any previous plan, and evicts expired entries.
func (c *PlanCache) Put(id string, p *Plan) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	c.sweep(now)
	e := cachedPlan{plan: p}
	if c.ttl > 0 {
		e.expires = now.Add(c.ttl)
	}
	c.plans[id] = e
}

// Get returns the live plan for id.
func (c *PlanCache) Get(id string) (*Plan, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.plans[id]
	if !ok {
		return nil, false
	}
	if c.expired(e, c.now()) {
		delete(c.plans, id)
		return nil, false
	}
	return e.plan, true
}

// Take returns the plan for id and removes it, so a plan is executed once.
func (c *PlanCache) Take(id string) (*Plan, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.plans[id]
	delete(c.plans, id)
	if !ok || c.expired(e, c.now()) {
		return nil, false
	}
	return e.plan, true
}

// Len returns the number of stored entries, expired ones included.
func (c *PlanCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.plans)
}

func (c *PlanCache) expired(e cachedPlan, now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

func (c *PlanCache) sweep(now time.Time) {
	for id, e := range c.plans {
		if c.expired(e, now) {
			delete(c.plans, id)
		}
	}
}
