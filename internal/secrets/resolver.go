// Package secrets resolves credentials and endpoints through an ordered
// cascade of untrusted sources. The first source holding a non-blank value
// for a key wins; sources never merge.
package secrets

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/phenrril/modashop/internal/domain"
)

// resolution is the terminal state of one cascade run. Once published it is
// immutable, so lookups after that are plain atomic loads.
type resolution struct {
	maps      []map[string]string
	sources   []string
	exhausted bool
}

// Resolver runs the cascade once and caches the outcome. ForceReinit discards
// the cache and re-runs from scratch.
type Resolver struct {
	mu      sync.Mutex
	sources []domain.ConfigSource
	state   atomic.Pointer[resolution]
}

func New(sources ...domain.ConfigSource) *Resolver {
	return &Resolver{sources: sources}
}

func (res *resolution) lookup(key string) *domain.ConfigValue {
	for i, m := range res.maps {
		if v, ok := m[key]; ok && strings.TrimSpace(v) != "" {
			return &domain.ConfigValue{Key: key, Value: v, Source: res.sources[i]}
		}
	}
	return nil
}

// snapshot returns the current resolution, running the cascade if none is
// cached. Callers must keep using the snapshot they got: a concurrent
// ForceReinit may clear the cache at any time.
func (r *Resolver) snapshot() *resolution {
	res := r.state.Load()
	if res == nil {
		res = r.init()
	}
	return res
}

// Resolve returns the first match for key across the sources, or nil when no
// source has it. The cascade runs at most once until ForceReinit.
func (r *Resolver) Resolve(key string) *domain.ConfigValue {
	return r.snapshot().lookup(key)
}

// Require resolves a mandatory key. Absence is a typed error naming the key
// and every source tried; callers must not paper over it with a default.
func (r *Resolver) Require(key string) (string, error) {
	res := r.snapshot()
	if cv := res.lookup(key); cv != nil {
		return cv.Value, nil
	}
	return "", &domain.ConfigMissingError{Key: key, Sources: res.sources}
}

// ForceReinit discards the cached resolution so the next lookup re-reads all
// sources. It serializes against any in-flight cascade run.
func (r *Resolver) ForceReinit() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.Store(nil)
}

func (r *Resolver) init() *resolution {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.state.Load(); res != nil {
		return res
	}

	res := &resolution{
		maps:    make([]map[string]string, 0, len(r.sources)),
		sources: make([]string, 0, len(r.sources)),
	}
	total := 0
	for _, src := range r.sources {
		m, err := src.ReadAll()
		if err != nil {
			// A broken source yields nothing; the cascade continues.
			log.Warn().Err(err).Str("source", src.Name()).Msg("fuente de config ilegible")
			m = map[string]string{}
		}
		res.maps = append(res.maps, m)
		res.sources = append(res.sources, src.Name())
		total += len(m)
	}
	if total == 0 {
		res.exhausted = true
		log.Warn().Strs("sources", res.sources).Msg("config agotada: ninguna fuente aportó valores")
	}
	r.state.Store(res)
	return res
}

// Exhausted reports whether the last cascade run found no values at all.
func (r *Resolver) Exhausted() bool {
	return r.snapshot().exhausted
}
