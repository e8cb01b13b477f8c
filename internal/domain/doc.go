// Package domain defines the core learning entities (thematics, topics and
// evaluated answers) and the errors raised when they are misused.
package domain
