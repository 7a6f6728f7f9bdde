package lessons

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/nrqlkit/nrqltutor/internal/presenter"
)

//go:embed content
var contentFS embed.FS

// sampleLang marks a fenced block as a sample query. Attributes follow the
// language in the info string as key=value pairs: chart, span and markdown.
const sampleLang = "nrql"

// fromFile returns a unit reading the lesson at name under content/.
// A broken embedded file is a build mistake, so it panics.
func fromFile(name string) Unit {
	return func() Content {
		b, err := contentFS.ReadFile(path.Join("content", name))
		if err != nil {
			panic(fmt.Sprintf("lesson %s: %v", name, err))
		}
		c, err := Parse(string(b))
		if err != nil {
			panic(fmt.Sprintf("lesson %s: %v", name, err))
		}
		return c
	}
}

// Parse splits lesson Markdown into prose blocks and sample query blocks.
// Only top-level fences tagged nrql become samples; everything between them
// is kept verbatim as prose.
func Parse(md string) (Content, error) {
	src := []byte(md)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var c Content
	from := 0
	prose := func(to int) {
		if t := strings.TrimSpace(md[from:to]); t != "" {
			c.Blocks = append(c.Blocks, Prose(t))
		}
	}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		fence, ok := n.(*ast.FencedCodeBlock)
		if !ok || string(fence.Language(src)) != sampleLang {
			continue
		}
		start := lineStart(src, fence.Info.Segment.Start)
		line := bytes.Count(src[:start], []byte("\n")) + 1

		end, closed := fenceEnd(src, fence)
		if !closed {
			return Content{}, fmt.Errorf("line %d: unterminated sample query", line)
		}
		info := string(fence.Info.Segment.Value(src))
		p, err := parseAttrs(strings.TrimPrefix(info, sampleLang))
		if err != nil {
			return Content{}, fmt.Errorf("line %d: %w", line, err)
		}
		var q bytes.Buffer
		for i, lines := 0, fence.Lines(); i < lines.Len(); i++ {
			seg := lines.At(i)
			q.Write(seg.Value(src))
		}
		p.NRQL = strings.TrimSpace(q.String())
		if p.NRQL == "" {
			return Content{}, fmt.Errorf("line %d: empty sample query", line)
		}

		prose(start)
		c.Blocks = append(c.Blocks, Sample(p))
		from = end
	}
	prose(len(md))
	return c, nil
}

func lineStart(src []byte, at int) int {
	return bytes.LastIndexByte(src[:at], '\n') + 1
}

func lineEnd(src []byte, at int) int {
	if i := bytes.IndexByte(src[at:], '\n'); i >= 0 {
		return at + i + 1
	}
	return len(src)
}

// fenceEnd returns the offset just past the closing fence line. goldmark
// runs an unclosed fence to the end of the document, so closed is false
// when no fence line follows the body.
func fenceEnd(src []byte, fence *ast.FencedCodeBlock) (end int, closed bool) {
	body := lineEnd(src, fence.Info.Segment.Stop)
	if lines := fence.Lines(); lines.Len() > 0 {
		body = lineEnd(src, lines.At(lines.Len()-1).Stop-1)
	}
	if body >= len(src) {
		return len(src), false
	}
	next := bytes.TrimLeft(src[body:lineEnd(src, body)], " ")
	if !bytes.HasPrefix(next, []byte("```")) && !bytes.HasPrefix(next, []byte("~~~")) {
		return len(src), false
	}
	return lineEnd(src, body), true
}

func parseAttrs(s string) (presenter.Props, error) {
	var p presenter.Props
	for _, kv := range strings.Fields(s) {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return p, fmt.Errorf("malformed attribute %q", kv)
		}
		switch k {
		case "chart":
			p.ChartType = v
		case "span":
			p.Span = v
		case "markdown":
			p.Markdown = v
		default:
			return p, fmt.Errorf("unknown attribute %q", k)
		}
	}
	return p, nil
}
