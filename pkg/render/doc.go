// Package render writes decoded strokes to output artifacts.
//
// Three formats are supported: SVG (one polyline per stroke, grouped by
// layer), PNG (rasterized with golang.org/x/image/vector) and JSON (the raw
// point lists). All renderers share the same plane coordinates produced by
// package wpi; the page size maps that plane onto the output.
package render
