// Package events provides the progress notifications the tutor publishes after
// each successful mutation of a roadmap.
//
// Services emit events without knowing which handlers will process them: the
// CLI subscribes a handler that reports progress, tests subscribe recorders.
//
// The primary components are:
// - Event: a typed notification with a JSON payload
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
