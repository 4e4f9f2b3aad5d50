// Package filter provides color filters over premultiplied RGBA8 buffers.
//
// The color matrix path is the compositor's "native" grayscale filter: it
// works in straight-alpha space and is applied to an offscreen copy of the
// reference layer, never to the layer itself.
package filter
