package nrql

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Query is the clause structure of an NRQL statement, enough to label charts
// and to synthesize offline results. It is not a validating parser.
type Query struct {
	Select []Item
	From   string
	// Subquery is set for nested aggregation: SELECT ... FROM (SELECT ...).
	Subquery *Query
	Where    string
	Facets   []string
	// Timeseries is set when the query has a TIMESERIES clause; Bucket is its
	// width, zero for AUTO or when omitted.
	Timeseries bool
	Bucket     time.Duration
	Limit      int
	// Show holds the target of a SHOW statement, e.g. "EVENT TYPES".
	Show string
}

// Item is one SELECT expression.
type Item struct {
	Func  string   // aggregator name, empty for bare attributes and math
	Args  []string // raw argument text
	Alias string
	Text  string // the expression as written, without alias
}

// Key is the result field name NerdGraph uses for the item: the alias when
// given, "count" for count(*), "func.arg" for other aggregators, and the
// expression text otherwise.
func (it Item) Key() string {
	switch {
	case it.Alias != "":
		return it.Alias
	case it.Func == "":
		return it.Text
	case len(it.Args) == 0 || it.Args[0] == "*" || it.Args[0] == "":
		return it.Func
	default:
		return it.Func + "." + it.Args[0]
	}
}

var clauseWords = []string{"select", "from", "where", "facet", "timeseries", "since", "until", "limit", "compare", "with", "order", "show"}

// Parse splits q into clauses. Keywords inside parentheses or quotes belong
// to the enclosing clause, so nested queries parse as a Subquery.
func Parse(q string) Query {
	var out Query
	for _, c := range splitClauses(q) {
		switch c.word {
		case "select":
			for _, expr := range splitTop(c.body, ',') {
				out.Select = append(out.Select, parseItem(expr))
			}
		case "from":
			body := strings.TrimSpace(c.body)
			if strings.HasPrefix(body, "(") && strings.HasSuffix(body, ")") {
				sub := Parse(body[1 : len(body)-1])
				out.Subquery = &sub
				out.From = sub.From
			} else {
				out.From = body
			}
		case "where":
			out.Where = strings.TrimSpace(c.body)
		case "facet":
			for _, f := range splitTop(c.body, ',') {
				out.Facets = append(out.Facets, unquote(strings.TrimSpace(f)))
			}
		case "timeseries":
			out.Timeseries = true
			out.Bucket = parseBucket(c.body)
		case "limit":
			if n, err := strconv.Atoi(strings.TrimSpace(c.body)); err == nil {
				out.Limit = n
			} else if strings.EqualFold(strings.TrimSpace(c.body), "max") {
				out.Limit = -1
			}
		case "show":
			out.Show = strings.ToUpper(strings.Join(strings.Fields(c.body), " "))
		}
	}
	return out
}

type clause struct {
	word string
	body string
}

func splitClauses(q string) []clause {
	var out []clause
	depth := 0
	var quote rune
	start, word := -1, ""
	runes := []rune(q)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
			continue
		case r == '\'' || r == '"' || r == '`':
			quote = r
			continue
		case r == '(':
			depth++
			continue
		case r == ')':
			depth--
			continue
		}
		if depth != 0 || !isWordStart(runes, i) {
			continue
		}
		for _, w := range clauseWords {
			if !hasWordAt(runes, i, w) {
				continue
			}
			// "COMPARE WITH" and "WITH TIMEZONE" must not open a new clause
			// for the second word.
			if w == "with" && word == "compare" {
				break
			}
			if start >= 0 {
				out = append(out, clause{word: word, body: string(runes[start:i])})
			}
			word = w
			start = i + len(w)
			i += len(w) - 1
			break
		}
	}
	if start >= 0 {
		out = append(out, clause{word: word, body: string(runes[start:])})
	}
	return out
}

func isWordStart(runes []rune, i int) bool {
	return i == 0 || !isIdent(runes[i-1])
}

func hasWordAt(runes []rune, i int, w string) bool {
	if i+len(w) > len(runes) {
		return false
	}
	if !strings.EqualFold(string(runes[i:i+len(w)]), w) {
		return false
	}
	return i+len(w) == len(runes) || !isIdent(runes[i+len(w)])
}

func isIdent(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.'
}

// splitTop splits s on sep outside parentheses and quotes.
func splitTop(s string, sep rune) []string {
	var parts []string
	depth := 0
	var quote rune
	last := 0
	for i, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"' || r == '`':
			quote = r
		case r == '(':
			depth++
		case r == ')':
			depth--
		case r == sep && depth == 0:
			parts = append(parts, strings.TrimSpace(s[last:i]))
			last = i + 1
		}
	}
	if tail := strings.TrimSpace(s[last:]); tail != "" {
		parts = append(parts, tail)
	}
	return parts
}

func parseItem(expr string) Item {
	expr = strings.TrimSpace(expr)
	it := Item{Text: expr}

	if i := lastTopAs(expr); i >= 0 {
		it.Alias = unquote(strings.TrimSpace(expr[i+4:]))
		expr = strings.TrimSpace(expr[:i])
		it.Text = expr
	}

	open := strings.IndexByte(expr, '(')
	if open <= 0 || !strings.HasSuffix(expr, ")") {
		return it
	}
	name := expr[:open]
	for _, r := range name {
		if !isIdent(r) {
			return it
		}
	}
	// count(*) / uniqueCount(x) is math, not a single call.
	if matchParen(expr, open) != len(expr)-1 {
		return it
	}
	it.Func = name
	it.Args = splitTop(expr[open+1:len(expr)-1], ',')
	return it
}

// lastTopAs finds " AS " outside parentheses and quotes.
func lastTopAs(expr string) int {
	depth := 0
	var quote rune
	found := -1
	for i, r := range expr {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"' || r == '`':
			quote = r
		case r == '(':
			depth++
		case r == ')':
			depth--
		case depth == 0 && (r == ' ' || r == '\t' || r == '\n') && i+4 <= len(expr):
			if strings.EqualFold(expr[i+1:i+3], "as") && i+3 < len(expr) && unicode.IsSpace(rune(expr[i+3])) {
				found = i
			}
		}
	}
	return found
}

func matchParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func unquote(s string) string {
	if len(s) >= 2 {
		f, l := s[0], s[len(s)-1]
		if (f == '\'' || f == '"' || f == '`') && f == l {
			return s[1 : len(s)-1]
		}
	}
	return s
}

var units = map[string]time.Duration{
	"second": time.Second,
	"minute": time.Minute,
	"hour":   time.Hour,
	"day":    24 * time.Hour,
	"week":   7 * 24 * time.Hour,
}

// maxBucket bounds TIMESERIES buckets. Anything longer, including counts
// that would overflow a Duration, parses as AUTO.
const maxBucket = 366 * 24 * time.Hour

func parseBucket(body string) time.Duration {
	f := strings.Fields(strings.ToLower(body))
	if len(f) < 2 {
		return 0
	}
	n, err := strconv.Atoi(f[0])
	if err != nil || n <= 0 {
		return 0
	}
	u, ok := units[strings.TrimSuffix(f[1], "s")]
	if !ok || int64(n) > int64(maxBucket/u) {
		return 0
	}
	return time.Duration(n) * u
}
