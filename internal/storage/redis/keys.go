package redis

import "fmt"

// Key prefix used when the config does not set one
const defaultKeyPrefix = "pokerledger"

// recordKey returns the Redis key for a ledger record
func (s *Storage) recordKey(key string) string {
	prefix := s.cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return fmt.Sprintf("%s:record:%s", prefix, key)
}
