// Package testing provides helpers for testing blueprint trees.
//
// # Quick Start
//
// Create a tester from an initial state and a screen blueprint, press
// controls, and make assertions on the element tree:
//
//	func TestCounter(t *testing.T) {
//	    tester := drifttest.NewTesterWithT(t, Counter{}, counterScreen())
//
//	    tester.Tap(drifttest.ByTitle("Increment"))
//
//	    if !tester.Find(drifttest.ByText("1")).Exists() {
//	        t.Error("expected count label to show 1")
//	    }
//	}
//
// # Clocks
//
// Display links built by a tester use a ManualClock. Ticks are delivered only
// when the test asks for them:
//
//	tester.Tick(3)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import drifttest "github.com/go-drift/asciistats/pkg/testing"
package testing
