// Package render is a worked example of the "Renderer" collaborator
// named in §6, which the core's scope explicitly excludes: it rasterizes
// a clipped segment list and the original sites to a grayscale PNG, for
// spot-checking a diagram by eye. It is not part of the diagram
// computation itself and imports nothing from it beyond the plain
// clip.Segment / clip.Box / geom.Point value types.
package render
