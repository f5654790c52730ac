// Package scene holds the retained state rendered every frame: the cameras and the
// drawables registered at start-up.
//
// A Scene is built once and then only read. There is no removal and no per-frame
// mutation; hosts and surfaces take copies through the accessors.
//
// Geometry is a flat triangle list: every three consecutive vertices form one
// triangle. Corners shared by two triangles are duplicated rather than indexed.
package scene
