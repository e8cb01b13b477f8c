// Package generation defines the boundary between the tutor and the external
// LLM completion service: the chat message and completion response model, the
// Completer interface adapters implement, and the error taxonomy every adapter
// maps its failures into.
package generation
