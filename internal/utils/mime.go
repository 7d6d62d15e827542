package utils

import (
	"net/http"
)

// DetectContentMimeType returns the MIME type inferred from already loaded bytes.
// Only the first sniffLength bytes participate in detection.
func DetectContentMimeType(data []byte) string {
	if len(data) > sniffLength {
		data = data[:sniffLength]
	}
	return http.DetectContentType(data)
}
