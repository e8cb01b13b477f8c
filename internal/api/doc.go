// Package api exposes the tutor over HTTP. It handles routing, request
// validation, and response formatting, and maps the tutor's error taxonomy
// onto HTTP status codes without leaking internal details to clients.
package api
