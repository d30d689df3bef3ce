// Package rendering defines the rich value types edited by the inspector
// (Color, Gradient, Curve) together with their previews and text codec.
//
// Previews are plain images; displaying them is up to the renderer.
package rendering
