// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, packages that
// depend on a port such as generation.Completer import the standardized mock
// from here and script it per test.
//
// Usage:
//
//	import "github.com/phrazzld/scry-tutor/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    completer := mocks.NewMockCompleterWithContents("first", "second")
//
//	    // Use the mock in your test...
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Document any helper methods or special functionality
package mocks
