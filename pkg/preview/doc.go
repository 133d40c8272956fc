// Package preview implements the development preview server.
//
// The server renders a Source tree to HTML at "/", exposes Prometheus
// metrics at "/metrics" and a health probe at "/healthz", and pushes
// encoded snapshot frames to WebSocket clients attached at "/ws". Every
// render pass is wrapped in an OpenTelemetry span and recorded in the
// pass metrics.
//
// This server is a development tool. It performs no authentication and
// accepts WebSocket upgrades from any origin by default.
package preview
