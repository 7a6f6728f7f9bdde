package store

import (
	entsql "entgo.io/ent/dialect/sql"

	"github.com/nrqlkit/nrqltutor/ent"
)

type eventRepo struct {
	client *ent.Client
	seq    *sequence
}

// window converts opts to predicates on the columns every event table gets
// from EventMixin.
func window[P ~func(*entsql.Selector)](opts QueryOpts) []P {
	var ps []P
	if opts.After > 0 {
		ps = append(ps, P(entsql.FieldGT("sequence", opts.After)))
	}
	if opts.Before > 0 {
		ps = append(ps, P(entsql.FieldLT("sequence", opts.Before)))
	}
	if !opts.From.IsZero() {
		ps = append(ps, P(entsql.FieldGTE("timestamp", opts.From)))
	}
	if !opts.To.IsZero() {
		ps = append(ps, P(entsql.FieldLTE("timestamp", opts.To)))
	}
	return ps
}

// newestFirst orders by the shared sequence column.
func newestFirst(s *entsql.Selector) {
	s.OrderBy(entsql.Desc(s.C("sequence")))
}
