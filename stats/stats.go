// Package stats implements the cache's diagnostic counter stream: one
// construction/cache-hit pair per (category, kind), printed only at Full
// verbosity.
package stats

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Category names a call-site shape the cache interns functions for.
type Category int

const (
	Normal Category = iota
	Call
	Return
	CallToRet
	Summary
	categoryCount
)

func (c Category) String() string {
	switch c {
	case Normal:
		return "Normal"
	case Call:
		return "Call"
	case Return:
		return "Return"
	case CallToRet:
		return "CallToRet"
	case Summary:
		return "Summary"
	default:
		return "Unknown"
	}
}

// Kind distinguishes flow-function from edge-function counters within a category.
type Kind int

const (
	Flow Kind = iota
	Edge
	kindCount
)

func (k Kind) String() string {
	if k == Flow {
		return "FF"
	}
	return "EF"
}

// Verbosity controls whether Fprint emits anything at all.
type Verbosity int

const (
	None Verbosity = iota
	Full
)

// Counters holds per-(category, kind) construction and cache-hit tallies.
// The zero value is ready to use.
type Counters struct {
	constructions [categoryCount][kindCount]int
	cacheHits     [categoryCount][kindCount]int
}

// RecordConstruction increments the construction counter for (cat, kind).
func (c *Counters) RecordConstruction(cat Category, kind Kind) {
	c.constructions[cat][kind]++
}

// RecordCacheHit increments the cache-hit counter for (cat, kind).
func (c *Counters) RecordCacheHit(cat Category, kind Kind) {
	c.cacheHits[cat][kind]++
}

// Construction returns the construction count for (cat, kind).
func (c *Counters) Construction(cat Category, kind Kind) int { return c.constructions[cat][kind] }

// CacheHit returns the cache-hit count for (cat, kind).
func (c *Counters) CacheHit(cat Category, kind Kind) int { return c.cacheHits[cat][kind] }

// Fprint writes the "<category>-<kind> <Construction|Cache Hit>: <n>" lines
// plus flow/edge subtotals and a grand total to w, honoring verbosity; at
// None it writes nothing. When colored is true, category labels are
// colorized with github.com/fatih/color; the raw text is unaffected so
// tests can still assert on it with color disabled.
func (c *Counters) Fprint(w io.Writer, verbosity Verbosity, colored bool) {
	if verbosity == None {
		return
	}
	label := func(s string) string { return s }
	if colored {
		label = color.New(color.FgCyan).Sprint
	}

	var flowTotal, edgeTotal int
	for cat := Category(0); cat < categoryCount; cat++ {
		for _, kind := range []Kind{Flow, Edge} {
			fmt.Fprintf(w, "%s-%s Construction: %d\n", label(cat.String()), kind, c.Construction(cat, kind))
			fmt.Fprintf(w, "%s-%s Cache Hit: %d\n", label(cat.String()), kind, c.CacheHit(cat, kind))
			if kind == Flow {
				flowTotal += c.Construction(cat, kind) + c.CacheHit(cat, kind)
			} else {
				edgeTotal += c.Construction(cat, kind) + c.CacheHit(cat, kind)
			}
		}
	}
	fmt.Fprintf(w, "FF total: %d\n", flowTotal)
	fmt.Fprintf(w, "EF total: %d\n", edgeTotal)
	fmt.Fprintf(w, "Grand total: %d\n", flowTotal+edgeTotal)
}
