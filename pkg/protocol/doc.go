// Package protocol frames completed render passes for hand-off to a
// remote reconciler.
//
// A Snapshot flattens one pass into a node table plus the context
// bookkeeping (reference tables, component list, injected list), so the
// consumer can enumerate every node and placeholder of the pass without
// walking the tree. Frames are msgpack payloads behind a small binary
// header carrying magic, version, and frame type; decode failures
// surface as protocol-coded errors.
package protocol
