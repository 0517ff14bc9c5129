package postman

import (
	"encoding/json"
	"net/http"

	"github.com/postlane-io/postman-client/internal/constants"
)

// API version labels recorded by the client after its first completed
// response. Detection is best-effort and purely informational.
const (
	// APIVersionV10 labels the v10+ API generation.
	APIVersionV10 = "v10+"
	// APIVersionLegacy labels v9 and earlier API generations.
	APIVersionLegacy = "v9-or-earlier"
	// APIVersionUnknown is recorded when the response body is not JSON.
	APIVersionUnknown = "unknown"
)

// DetectAPIVersion infers the API generation from a response. The version
// header wins when present; otherwise the body is probed for v10+ structural
// markers: a top-level "meta" field, or fork/meta fields inside a nested
// collection object. A body lacking both markers maps to the legacy label,
// and an unparsable body maps to APIVersionUnknown.
func DetectAPIVersion(headers http.Header, body []byte) string {
	if headers != nil {
		if version := headers.Get(constants.APIVersionHeader); version != "" {
			return version
		}
	}

	var data map[string]json.RawMessage
	if err := json.Unmarshal(body, &data); err != nil {
		return APIVersionUnknown
	}

	if _, ok := data["meta"]; ok {
		return APIVersionV10
	}

	if raw, ok := data["collection"]; ok {
		var collection map[string]json.RawMessage
		if err := json.Unmarshal(raw, &collection); err == nil {
			if _, ok := collection["fork"]; ok {
				return APIVersionV10
			}

			if _, ok := collection["meta"]; ok {
				return APIVersionV10
			}
		}
	}

	return APIVersionLegacy
}

// IsCurrentAPIVersion reports whether a detected label is at least the v10
// baseline this library targets. Header-sourced labels like "v10.2" count.
func IsCurrentAPIVersion(label string) bool {
	if label == APIVersionV10 {
		return true
	}

	return len(label) >= 3 && label[:3] == "v10"
}
