/*
Package mimesniff determines the media type of web resources according to
the WHATWG MIME Sniffing standard (https://mimesniff.spec.whatwg.org/).

ParseMimeType parses a media type string, such as the value of a
Content-Type header, and MimeType.String serializes it back. Both follow
the standard's algorithms: parsing is permissive and never errors,
salvaging what it can from malformed parameters, and returns nil only
when no type/subtype pair can be extracted at all. Do not assume that
strings you store in a MimeType yourself conform to the grammar; only
parsed values are guaranteed to.

SniffMimeType computes the media type of a resource from its leading
bytes (the resource header, at most 1445 bytes) and the metadata
recorded in a Resource. Sniffing never upgrades a supplied HTML or XML
type based on content, and honors the no-sniff flag, as the standard's
security rules require. SniffIn... variants implement the
context-specific sniffing algorithms.

MimeType values returned by the sniffing functions may be shared,
statically allocated constants. Treat every *MimeType returned by this
package as read-only; use Clone before modifying one.
*/
package mimesniff
