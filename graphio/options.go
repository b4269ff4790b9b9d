// SPDX-License-Identifier: MIT

// Package graphio: functional write options with documented defaults.

package graphio

// DefaultCompression controls whether the edge section is LZ4-framed
// when no option says otherwise. Plain output stays byte-inspectable.
const DefaultCompression = false

// Option mutates the write configuration. Safe to apply repeatedly;
// last writer wins.
type Option func(*options)

type options struct {
	compress bool
}

// WithCompression wraps the edge section in an LZ4 frame. The header
// stays uncompressed so readers can sniff magic and flags first.
func WithCompression() Option {
	return func(o *options) { o.compress = true }
}

// WithoutCompression forces a plain edge section (the default).
func WithoutCompression() Option {
	return func(o *options) { o.compress = false }
}

// gatherOptions resolves setters against the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{compress: DefaultCompression}
	for _, set := range opts {
		set(&o)
	}

	return o
}
