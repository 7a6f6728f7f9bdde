// Package lessons is the registry of tutorial levels and their lessons.
package lessons

import (
	"maps"
	"slices"

	"github.com/nrqlkit/nrqltutor/internal/presenter"
)

// Lesson is one navigable entry of a level. Titles are not required to be
// unique; the order of a level is its navigation order.
type Lesson struct {
	Title string
	Unit  Unit
}

// Unit builds the renderable content of a lesson.
type Unit func() Content

// Content is the body of a lesson, top to bottom.
type Content struct {
	Blocks []Block
}

// Block is either Markdown prose or a sample query.
type Block struct {
	Markdown string
	Sample   *presenter.Props
}

// IsSample reports whether the block is a sample query.
func (b Block) IsSample() bool { return b.Sample != nil }

// Prose returns a Markdown block.
func Prose(md string) Block {
	return Block{Markdown: md}
}

// Sample returns a sample query block.
func Sample(p presenter.Props) Block {
	return Block{Sample: &p}
}

// Samples returns the sample query props of c in order.
func (c Content) Samples() []presenter.Props {
	var out []presenter.Props
	for _, b := range c.Blocks {
		if b.Sample != nil {
			out = append(out, *b.Sample)
		}
	}
	return out
}

var levels = map[int][]Lesson{
	4: level4,
}

// Level4 returns the lessons of level 4 in navigation order.
func Level4() []Lesson {
	return slices.Clone(level4)
}

// Levels returns every level keyed by number.
func Levels() map[int][]Lesson {
	out := make(map[int][]Lesson, len(levels))
	for n, ls := range levels {
		out[n] = slices.Clone(ls)
	}
	return out
}

// Level returns the lessons of level n.
func Level(n int) ([]Lesson, bool) {
	ls, ok := levels[n]
	if !ok {
		return nil, false
	}
	return slices.Clone(ls), true
}

// Numbers returns the available level numbers in ascending order.
func Numbers() []int {
	return slices.Sorted(maps.Keys(levels))
}
