package nso

import "strings"

// acceptHeader builds the Accept header for a resolved content type.
// For json and xml it advertises the three YANG media types; anything
// else passes through verbatim as an escape hatch.
func acceptHeader(contentType string) string {
	format := yangFormat(contentType)
	if format == "" {
		return contentType
	}
	return "application/vnd.yang.data+" + format +
		", application/vnd.yang.collection+" + format +
		", application/vnd.yang.datastore+" + format
}

// contentTypeHeader builds the Content-Type header for a mutating
// request. YANG-defined operations (rpc / tailf:action), encoded under
// "_operations", use the operation media type; URIs under /api/
// address datastores; everything else is plain data.
func contentTypeHeader(path, contentType string) string {
	format := yangFormat(contentType)
	if format == "" {
		return contentType
	}

	switch {
	case strings.Contains(path, "/_operations"):
		return "application/vnd.yang.operation+" + format
	case strings.Contains(path, "/api/"):
		return "application/vnd.yang.datastore+" + format
	default:
		return "application/vnd.yang.data+" + format
	}
}

// yangFormat maps a content type to its YANG media-type suffix, or ""
// when the content type is not one the negotiation understands.
func yangFormat(contentType string) string {
	switch strings.ToLower(contentType) {
	case ContentTypeJSON:
		return "json"
	case ContentTypeXML:
		return "xml"
	default:
		return ""
	}
}
