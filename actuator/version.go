package actuator

import "strings"

// Actuator media type prefixes, without the +json suffix.
const (
	MediaTypeV1 = "application/vnd.spring-boot.actuator.v1"
	MediaTypeV2 = "application/vnd.spring-boot.actuator.v2"
	MediaTypeV3 = "application/vnd.spring-boot.actuator.v3"
)

// acceptHeader prefers the newest schema the server can produce.
const acceptHeader = MediaTypeV3 + "+json, " +
	MediaTypeV2 + "+json, " +
	MediaTypeV1 + "+json, application/json"

// DefaultVersion is assumed for generic JSON content types.
const DefaultVersion = 2

// DetectVersion derives the actuator schema version from a Content-Type value.
func DetectVersion(contentType string) int {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	switch {
	case strings.HasPrefix(ct, MediaTypeV1):
		return 1
	case strings.HasPrefix(ct, MediaTypeV2):
		return 2
	case strings.HasPrefix(ct, MediaTypeV3):
		return 3
	default:
		return DefaultVersion
	}
}
