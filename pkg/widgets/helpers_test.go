package widgets_test

import (
	"strconv"

	"github.com/go-drift/asciistats/pkg/core"
)

type counter struct {
	Count     int
	Limit     int
	Animating bool
	Next      core.Mutator[counter]
}

func increment(c *counter) { c.Count++ }
func double(c *counter)    { c.Count *= 2 }

func nextOf(c counter) core.Mutator[counter] { return c.Next }

func countText(c counter) string { return strconv.Itoa(c.Count) }
