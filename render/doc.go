// Package render turns a scene into per-frame draw submissions.
//
// Pipeline (fixed):
//
//	Scene → Frame{clear, camera, draw calls} → Surface.Submit → clear once → triangles in order.
//
// A pipeline has a single backbuffer stage that owns the clear color and an ordered
// list of passes. Surfaces own every device resource; this package never allocates
// GPU state. ImageSurface is a software surface for headless runs and tests.
package render
