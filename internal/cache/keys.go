package cache

import "strings"

const (
	GlobalKeyPrefix = "examadmin"
)

// keyPartEscaper escapes the separators so distinct parameter tuples never share a key.
var keyPartEscaper = strings.NewReplacer("%", "%25", ":", "%3A", "_", "%5F")

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are escaped, joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, keyPartEscaper.Replace(identifier)}, ":")
	if len(paramsKey) > 0 {
		parts := make([]string, len(paramsKey))
		for i, p := range paramsKey {
			parts[i] = keyPartEscaper.Replace(p)
		}
		return strings.Join([]string{baseKey, strings.Join(parts, "_")}, ":")
	}
	return baseKey
}

// ServicePrefix matches every key generated for serviceName.
func ServicePrefix(serviceName string) string {
	return GlobalKeyPrefix + ":" + serviceName + ":"
}
