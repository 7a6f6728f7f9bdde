package store

import (
	"context"
	"fmt"

	"github.com/nrqlkit/nrqltutor/ent/lessonactionevent"
)

func (r *eventRepo) AppendLessonAction(ctx context.Context, d LessonActionEventData) error {
	seq, err := r.seq.next(ctx)
	if err != nil {
		return err
	}
	err = r.client.LessonActionEvent.Create().
		SetSequence(seq).
		SetLevel(d.Level).
		SetLessonTitle(d.LessonTitle).
		SetAction(lessonactionevent.Action(d.Action)).
		SetNrql(d.Query).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("append %s action on %q: %w", d.Action, d.LessonTitle, err)
	}
	return nil
}

func (r *eventRepo) VisitedLessons(ctx context.Context, level int) (map[string]bool, error) {
	titles, err := r.client.LessonActionEvent.Query().
		Where(lessonactionevent.Level(level)).
		Unique(true).
		Select(lessonactionevent.FieldLessonTitle).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("visited lessons of level %d: %w", level, err)
	}
	visited := make(map[string]bool, len(titles))
	for _, t := range titles {
		visited[t] = true
	}
	return visited, nil
}
