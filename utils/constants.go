package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// SlotStatsCacheKey stores the most recent slot statistics snapshot.
const SlotStatsCacheKey = "stats:slots"

// SlotStatsCacheTTL bounds how stale a cached stats snapshot may be.
const SlotStatsCacheTTL = 30 * time.Second

// AuthTokenTTL is the lifetime of issued login tokens.
const AuthTokenTTL = 24 * time.Hour
