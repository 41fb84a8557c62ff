package engine

// probeCache memoizes raw leaf scores keyed by the position's FEN. Scores
// are exact, so entries are written once and never invalidated; the whole
// table lives for one game and is rebuilt on Clear. The engine is
// single-threaded, hence no locking.
type probeCache struct {
	entries map[string]int
}

func newProbeCache() *probeCache {
	return &probeCache{entries: make(map[string]int)}
}

func (cache *probeCache) Get(fen string) (raw int, found bool) {
	raw, found = cache.entries[fen]
	return
}

func (cache *probeCache) Put(fen string, raw int) {
	cache.entries[fen] = raw
}

func (cache *probeCache) Clear() {
	cache.entries = make(map[string]int)
}

func (cache *probeCache) Len() int {
	return len(cache.entries)
}
