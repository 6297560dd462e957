// Package logging is a compile-time togglable tracing facade. The
// teacher's own logging is always-on; this facade instead mirrors the
// original C++ implementation's `#define ENABLE_LOGGING (0)` idiom using
// Go build tags: building with the "logging" tag links logging_enabled.go,
// which writes indented trace lines to a configurable file; building
// without it (the default) links logging_disabled.go, whose calls compile
// down to no-ops the inliner removes entirely.
package logging
