package llm

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiled caches schemas by format name.
var compiled sync.Map

// conform checks that text is a JSON document valid for f and returns it.
// Models sometimes wrap JSON in a Markdown fence; the fence is stripped.
func conform(f *Format, text string) (json.RawMessage, error) {
	text = unfence(text)
	body := json.RawMessage(text)

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &ErrOutput{Body: body, Err: fmt.Errorf("not JSON: %w", err)}
	}
	schema, err := compile(f)
	if err != nil {
		return nil, &ErrOutput{Body: body, Err: err}
	}
	if err := schema.Validate(doc); err != nil {
		return nil, &ErrOutput{Body: body, Err: fmt.Errorf("does not match %s: %w", f.Name, err)}
	}
	return body, nil
}

func compile(f *Format) (*jsonschema.Schema, error) {
	if s, ok := compiled.Load(f.Name); ok {
		return s.(*jsonschema.Schema), nil
	}

	// The compiler wants decoded JSON values, not Go maps of typed slices.
	raw, err := json.Marshal(f.Schema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %s: %w", f.Name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("decode schema %s: %w", f.Name, err)
	}

	url := "mem://" + f.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema %s: %w", f.Name, err)
	}
	s, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", f.Name, err)
	}
	compiled.Store(f.Name, s)
	return s, nil
}

func unfence(text string) string {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	if nl := strings.IndexByte(t, '\n'); nl >= 0 {
		t = t[nl+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(t), "```"))
}

func quote(text string) json.RawMessage {
	b, _ := json.Marshal(text)
	return b
}
