package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QueryRunEvent records every NRQL execution against NerdGraph (or the
// offline engine) for the history screen and debugging.
type QueryRunEvent struct {
	ent.Schema
}

func (QueryRunEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QueryRunEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("UUID of the run"),
		field.Int("account_id").
			Comment("Account the query ran against"),
		field.Text("nrql").
			Comment("Normalized NRQL text"),
		field.String("engine").
			Comment("Executor name: nerdgraph, offline, mock"),
		field.Int("series").
			Default(0).
			Comment("Number of result series"),
		field.Int("rows").
			Default(0).
			Comment("Number of result rows across series"),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success"),
		field.String("error_message").
			Default(""),
	}
}

func (QueryRunEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id"),
		index.Fields("success"),
	}
}
