package genai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// DefaultCacheCapacity bounds each response cache.
	DefaultCacheCapacity = 100

	// DefaultCacheTTL is how long a cached response stays servable.
	DefaultCacheTTL = time.Hour
)

// CacheStats reports cache effectiveness.
type CacheStats struct {
	Size     int     `json:"size"`
	Capacity int     `json:"capacity"`
	Hits     uint64  `json:"hits"`
	Misses   uint64  `json:"misses"`
	HitRate  float64 `json:"hit_rate"`
}

// CachedGateway wraps a Gateway with LRU response caches so identical
// interviews do not pay for repeated model calls. Keys cover the symptom and
// every answer given so far, so two patients share an entry only when their
// interviews are indistinguishable. Errors are never cached.
type CachedGateway struct {
	next       Gateway
	questions  *expirable.LRU[string, []Question]
	narratives *expirable.LRU[string, *Narrative]
	capacity   int

	mu     sync.Mutex
	hits   uint64
	misses uint64
}

// NewCachedGateway wraps next with caches of the given capacity and TTL.
// Non-positive values fall back to the defaults.
func NewCachedGateway(next Gateway, capacity int, ttl time.Duration) *CachedGateway {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedGateway{
		next:       next,
		questions:  expirable.NewLRU[string, []Question](capacity, nil, ttl),
		narratives: expirable.NewLRU[string, *Narrative](capacity, nil, ttl),
		capacity:   capacity,
	}
}

// FollowUpQuestions serves from cache when possible.
func (g *CachedGateway) FollowUpQuestions(ctx context.Context, symptom string, answers AnswerSet) ([]Question, error) {
	key := cacheKey(symptom, answers)
	if qs, ok := g.questions.Get(key); ok {
		g.record(true)
		return copyQuestions(qs), nil
	}
	g.record(false)

	qs, err := g.next.FollowUpQuestions(ctx, symptom, answers)
	if err != nil {
		return nil, err
	}
	g.questions.Add(key, copyQuestions(qs))
	return qs, nil
}

// ResultNarrative serves from cache when possible.
func (g *CachedGateway) ResultNarrative(ctx context.Context, symptom string, answers AnswerSet) (*Narrative, error) {
	key := cacheKey(symptom, answers)
	if n, ok := g.narratives.Get(key); ok {
		g.record(true)
		return copyNarrative(n), nil
	}
	g.record(false)

	n, err := g.next.ResultNarrative(ctx, symptom, answers)
	if err != nil {
		return nil, err
	}
	g.narratives.Add(key, copyNarrative(n))
	return n, nil
}

// Stats returns a snapshot of cache effectiveness.
func (g *CachedGateway) Stats() CacheStats {
	g.mu.Lock()
	hits, misses := g.hits, g.misses
	g.mu.Unlock()

	s := CacheStats{
		Size:     g.questions.Len() + g.narratives.Len(),
		Capacity: g.capacity,
		Hits:     hits,
		Misses:   misses,
	}
	if total := hits + misses; total > 0 {
		s.HitRate = float64(hits) / float64(total) * 100
	}
	return s
}

// Purge drops every cached response and resets the counters.
func (g *CachedGateway) Purge() {
	g.questions.Purge()
	g.narratives.Purge()
	g.mu.Lock()
	g.hits, g.misses = 0, 0
	g.mu.Unlock()
}

func (g *CachedGateway) record(hit bool) {
	g.mu.Lock()
	if hit {
		g.hits++
	} else {
		g.misses++
	}
	g.mu.Unlock()
}

// cacheKey hashes the normalized symptom plus every answer in asked order.
func cacheKey(symptom string, answers AnswerSet) string {
	h := sha256.New()
	io.WriteString(h, strings.ToLower(strings.TrimSpace(symptom)))
	for _, a := range answers.Universal {
		io.WriteString(h, "|u:")
		io.WriteString(h, a.ID)
		io.WriteString(h, "=")
		io.WriteString(h, a.Value)
	}
	for _, a := range answers.Specific {
		io.WriteString(h, "|s:")
		io.WriteString(h, a.ID)
		io.WriteString(h, "=")
		io.WriteString(h, a.Value)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// copyQuestions clones cached questions so callers cannot mutate the cache.
func copyQuestions(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

func copyNarrative(n *Narrative) *Narrative {
	if n == nil {
		return nil
	}
	out := *n
	out.PossibleCauses = append([]string(nil), n.PossibleCauses...)
	out.ImmediateReliefSteps = append([]string(nil), n.ImmediateReliefSteps...)
	out.HomeRemedies = append([]string(nil), n.HomeRemedies...)
	out.RecommendedMedicines = append([]string(nil), n.RecommendedMedicines...)
	out.RedFlags = append([]string(nil), n.RedFlags...)
	return &out
}
