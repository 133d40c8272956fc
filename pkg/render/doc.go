// Package render serializes virtual trees to HTML.
//
// The renderer consumes the vtree construction API read-only: the
// unified attribute view (explicit attributes plus serialized class and
// style entries), raw content, and the ordered child lists. Component
// placeholders are not expanded — that is the reconciler's job — so the
// static renderer emits their slot content between marker comments,
// which is what the export and preview surfaces want.
//
// Text and attribute values are HTML-escaped; raw content set via
// SetInnerHTML is written verbatim.
package render
