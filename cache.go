package nurbs

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
)

// DefaultSampleExpiry is how long a [SampleCache] keeps an unused polyline.
const DefaultSampleExpiry = time.Minute

// SampleCache remembers sampled polylines by curve fingerprint and step
// count. A front end that redraws an unchanged curve every frame samples it
// once; any edit to the degree, knots or control points changes the
// fingerprint and misses the cache. Entries expire, so the cache does not
// grow without bound while a curve is being edited.
//
// SampleCache is safe for concurrent use.
type SampleCache struct {
	logger  l.Wrapper
	entries *cache.Cache
}

// NewSampleCache returns a cache whose entries expire after expiry.
// Non-positive expiries select [DefaultSampleExpiry].
func NewSampleCache(expiry time.Duration, logger l.Wrapper) *SampleCache {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if expiry <= 0 {
		expiry = DefaultSampleExpiry
	}

	return &SampleCache{
		logger:  logger.WithFields(l.StringField(l.ClsKey, "sampleCache")),
		entries: cache.New(expiry, expiry),
	}
}

// Sample returns c.Sample(steps), reusing an earlier result for an identical
// curve and step count. Failed samplings are not remembered. The returned
// polyline belongs to the caller.
func (sc *SampleCache) Sample(c Curve, steps int) (Polyline, error) {
	fp := c.Fingerprint()
	key := fmt.Sprintf("%x:%d", fp, steps)

	if v, ok := sc.entries.Get(key); ok {
		if pl, ok := v.(Polyline); ok {
			return append(Polyline(nil), pl...), nil
		}
	}

	pl, err := c.Sample(steps)
	if err != nil {
		sc.logger.WithFields(l.ErrorField(err), l.UInt64Field("fingerprint", fp),
			l.IntField("steps", steps)).Error("sample curve failed")

		return nil, err
	}

	sc.logger.WithFields(l.UInt64Field("fingerprint", fp), l.IntField("steps", steps)).Debug("sampled curve")

	sc.entries.SetDefault(key, pl)

	return append(Polyline(nil), pl...), nil
}

// Len returns the number of cached polylines, including expired ones that
// have not been swept yet.
func (sc *SampleCache) Len() int {
	return sc.entries.ItemCount()
}

// Flush removes all cached polylines.
func (sc *SampleCache) Flush() {
	sc.entries.Flush()
}
