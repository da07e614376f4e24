// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis session token cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for session token cache entries.
const AuthCacheTTL = time.Hour

// PartnerCachePrefix is the prefix used for cached partner lookups, keyed by role.
const PartnerCachePrefix = "partner:"

// PartnerCacheTTL keeps partner lookups fresh without hitting Mongo on every request.
const PartnerCacheTTL = 5 * time.Minute

// SessionTokenTTL is the lifetime of issued session tokens.
const SessionTokenTTL = 72 * time.Hour
