package adjustment

import "sync"

// periodLock serializes recomputation per (organization, record
// payroll). The group rollup is a read-aggregate-write over sibling
// rows, so two concurrent writers against the same record payroll would
// each rewrite totals reflecting only their own row.
type periodLock struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newPeriodLock() *periodLock {
	return &periodLock{locks: make(map[string]*lockEntry)}
}

func (p *periodLock) Lock(key string) {
	p.mu.Lock()
	e, ok := p.locks[key]
	if !ok {
		e = &lockEntry{}
		p.locks[key] = e
	}
	e.refs++
	p.mu.Unlock()

	e.mu.Lock()
}

func (p *periodLock) Unlock(key string) {
	p.mu.Lock()
	e := p.locks[key]
	e.refs--
	if e.refs == 0 {
		delete(p.locks, key)
	}
	p.mu.Unlock()

	e.mu.Unlock()
}
