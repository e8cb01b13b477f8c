// Package openai provides an implementation of the generation.Completer
// interface that talks to an OpenAI-compatible chat completions endpoint.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the tutor to the external completion service. It translates
// between the generation package's message model and the service's JSON wire
// format without exposing the details of the external service to the core.
//
// Key components:
//
// 1. Client:
//   - Implements generation.Completer
//   - Owns the HTTP client (and its connection pool) and the bearer credential
//   - Performs exactly one POST per Send, with no retry and no caching
//
// 2. Envelope decoding:
//   - Decodes a response body in a single pass into an envelope whose
//     "choices" and "error" members are both optional
//   - Discriminates success from provider error by which member is present
//   - Maps everything else to generation.ErrTransport
package openai
