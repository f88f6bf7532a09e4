// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"github.com/BOXFoundation/boxscript/crypto"
	"github.com/BOXFoundation/boxscript/metrics"
	lru "github.com/hashicorp/golang-lru"
)

var (
	sigCacheHitCounter  = metrics.NewCounter("script/sigcache/hit")
	sigCacheMissCounter = metrics.NewCounter("script/sigcache/miss")
	sigCacheSizeGauge   = metrics.NewGauge("script/sigcache/size")
)

type sigCacheKey struct {
	sigHash crypto.HashType
	sig     string
	pubKey  string
}

// SigCache remembers signatures that have already been verified, so that
// a transaction seen twice only pays for ECDSA once. Only valid signatures
// are added. It is safe for concurrent use.
type SigCache struct {
	cache *lru.Cache
}

// NewSigCache creates a cache holding at most size entries.
func NewSigCache(size int) (*SigCache, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &SigCache{cache: cache}, nil
}

// Exists reports whether sig by pubKey over sigHash is known to be valid.
func (s *SigCache) Exists(sigHash crypto.HashType, sig, pubKey []byte) bool {
	ok := s.cache.Contains(sigCacheKey{sigHash, string(sig), string(pubKey)})
	if ok {
		sigCacheHitCounter.Inc(1)
	} else {
		sigCacheMissCounter.Inc(1)
	}
	return ok
}

// Add records a verified signature.
func (s *SigCache) Add(sigHash crypto.HashType, sig, pubKey []byte) {
	s.cache.Add(sigCacheKey{sigHash, string(sig), string(pubKey)}, struct{}{})
	sigCacheSizeGauge.Update(int64(s.cache.Len()))
}

// Len returns the number of cached signatures.
func (s *SigCache) Len() int {
	return s.cache.Len()
}
