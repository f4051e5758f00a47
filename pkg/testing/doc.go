// Package testing provides test doubles for the control core: a fake
// clock for deterministic animation tests, a renderer that records draw
// calls, and recording delegate and UI collaborators.
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import fadertest "github.com/go-fader/fader/pkg/testing"
package testing
