package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Bookmark is a lesson the learner opened. Only the most recent few are
// kept; the newest one backs "Resume" on the home screen.
type Bookmark struct {
	ent.Schema
}

func (Bookmark) Fields() []ent.Field {
	return []ent.Field{
		field.Int("level").Positive(),
		field.Int("lesson").NonNegative(),
		field.String("title").Default(""),
		field.Time("saved_at").
			Default(func() time.Time { return time.Now().UTC() }),
	}
}
