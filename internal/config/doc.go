// Package config loads and validates loom.json project configuration.
//
// A loom.json file marks the project root. Missing fields fall back to
// defaults, so an empty object is a valid configuration. FindProjectRoot
// walks up from the working directory the way build tools locate go.mod.
package config
