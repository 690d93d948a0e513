package constants

import "strings"

// Object key suffixes in the raw and normalized stores.
const (
	RawKeySuffix = ".json"
	PDFKeySuffix = ".pdf"
)

// SourceName identifies the upstream feed for records written downstream.
const SourceName = "juritcom"

// DecisionID strips the raw-store suffix from an object key.
func DecisionID(key string) string {
	return strings.TrimSuffix(key, RawKeySuffix)
}

// PDFKeyFor returns the PDF object key matching a raw decision key.
func PDFKeyFor(rawKey string) string {
	return DecisionID(rawKey) + PDFKeySuffix
}
