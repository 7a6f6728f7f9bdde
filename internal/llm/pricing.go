package llm

import (
	"regexp"
	"strings"
)

// Price is a model's list price in USD per million tokens.
type Price struct {
	In  float64
	Out float64
}

// Of returns the USD cost of t at price p.
func (p Price) Of(t Tokens) float64 {
	return (float64(t.In)*p.In + float64(t.Out)*p.Out) / 1e6
}

var dateStamp = regexp.MustCompile(`-(\d{8}|\d{4}-\d{2}-\d{2})$`)

// PriceOf looks up the list price of a model as recorded in request events.
// OpenRouter "vendor/model" names, dated snapshots and ":free" variants
// resolve to the base model.
func PriceOf(model string) (Price, bool) {
	name := strings.ToLower(strings.TrimSpace(model))
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if base, tier, ok := strings.Cut(name, ":"); ok {
		if tier == "free" {
			return Price{}, true
		}
		name = base
	}
	if p, ok := prices[name]; ok {
		return p, true
	}
	p, ok := prices[dateStamp.ReplaceAllString(name, "")]
	return p, ok
}

// Snapshot of published list prices, October 2026. Only models the tutor's
// aliases and defaults resolve to, plus their common siblings.
var prices = map[string]Price{
	"claude-haiku-4-5":  {In: 1, Out: 5},
	"claude-sonnet-4-5": {In: 3, Out: 15},
	"claude-sonnet-4":   {In: 3, Out: 15},
	"claude-opus-4-1":   {In: 15, Out: 75},
	"claude-3-5-haiku":  {In: 0.8, Out: 4},

	"gpt-4o":       {In: 2.5, Out: 10},
	"gpt-4o-mini":  {In: 0.15, Out: 0.6},
	"gpt-4.1":      {In: 2, Out: 8},
	"gpt-4.1-mini": {In: 0.4, Out: 1.6},
	"gpt-4.1-nano": {In: 0.1, Out: 0.4},
	"gpt-5":        {In: 1.25, Out: 10},
	"gpt-5-mini":   {In: 0.25, Out: 2},
	"gpt-5-nano":   {In: 0.05, Out: 0.4},
	"o4-mini":      {In: 1.1, Out: 4.4},

	"gemini-2.0-flash":      {In: 0.1, Out: 0.4},
	"gemini-2.0-flash-exp":  {In: 0.1, Out: 0.4},
	"gemini-2.5-flash":      {In: 0.3, Out: 2.5},
	"gemini-2.5-flash-lite": {In: 0.1, Out: 0.4},
	"gemini-2.5-pro":        {In: 1.25, Out: 10},
}
