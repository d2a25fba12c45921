package observability

import "sync"

// Inmem keeps a bounded ring of recent observations plus running totals.
type Inmem struct {
	mu     sync.Mutex
	last   []any
	max    int
	totals struct {
		cacheHits, cacheMiss, cacheWriteFailures int
	}
}

func NewInmem(max int) *Inmem {
	return &Inmem{
		max: max,
	}
}

func (m *Inmem) push(v any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = append(m.last, v)
	if len(m.last) > m.max {
		m.last = m.last[1:]
	}
}

func (m *Inmem) ObservePlace(dbMs, cacheMs float64) {
	m.push(struct {
		Kind          string
		DbMs, CacheMs float64
	}{"place", dbMs, cacheMs})
}

func (m *Inmem) ObserveDelete(dbMs float64) {
	m.push(struct {
		Kind string
		DbMs float64
	}{"delete", dbMs})
}

func (m *Inmem) ObserveSync(added int, durMs float64) {
	m.push(struct {
		Kind  string
		Added int
		Dur   float64
	}{"sync", added, durMs})
}

func (m *Inmem) ObserveLookup(durMs float64, hit bool) {
	m.push(struct {
		Kind string
		Dur  float64
		Hit  bool
	}{"lookup", durMs, hit})
	m.mu.Lock()
	if hit {
		m.totals.cacheHits++
	} else {
		m.totals.cacheMiss++
	}
	m.mu.Unlock()
}

func (m *Inmem) ObserveReport(kind string, durMs float64) {
	m.push(struct {
		Kind   string
		Report string
		Dur    float64
	}{"report", kind, durMs})
}

func (m *Inmem) ObserveHTTP(method, route string, status int, durMs float64) {
	m.push(struct {
		Kind          string
		Method, Route string
		Status        int
		Dur           float64
	}{"http", method, route, status, durMs})
}

func (m *Inmem) ObserveConsume(processMs float64, ok bool) {
	m.push(struct {
		Kind string
		Dur  float64
		OK   bool
	}{"consume", processMs, ok})
}

func (m *Inmem) IncCacheWriteFailure() {
	m.mu.Lock()
	m.totals.cacheWriteFailures++
	m.mu.Unlock()
}

// CacheWriteFailures reports how many best-effort projection writes were
// dropped since startup.
func (m *Inmem) CacheWriteFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totals.cacheWriteFailures
}

// Recent returns a copy of the retained observations, oldest first.
func (m *Inmem) Recent() []any {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]any, len(m.last))
	copy(out, m.last)
	return out
}
