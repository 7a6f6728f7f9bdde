package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonActionEvent records what the learner did inside a lesson:
// opening it, trying, copying or explaining one of its sample queries.
type LessonActionEvent struct {
	ent.Schema
}

func (LessonActionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LessonActionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("level"),
		field.String("lesson_title").NotEmpty(),
		field.Enum("action").
			Values("viewed", "tried", "copied", "explained"),
		field.Text("nrql").
			Default("").
			Comment("Normalized NRQL for query actions"),
	}
}

func (LessonActionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("level", "lesson_title"),
		index.Fields("action"),
	}
}
