package store

import (
	"context"
	"fmt"

	"github.com/nrqlkit/nrqltutor/ent"
	"github.com/nrqlkit/nrqltutor/ent/bookmark"
)

const bookmarksKept = 5

type bookmarkRepo struct {
	client *ent.Client
	keep   int
}

// Save records b and drops all but the newest bookmarks in one transaction.
func (r *bookmarkRepo) Save(ctx context.Context, b Bookmark) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	create := tx.Bookmark.Create().
		SetLevel(b.Level).
		SetLesson(b.Lesson).
		SetTitle(b.Title)
	if !b.SavedAt.IsZero() {
		create.SetSavedAt(b.SavedAt)
	}
	if _, err := create.Save(ctx); err != nil {
		return rollback(tx, fmt.Errorf("save bookmark: %w", err))
	}

	newest, err := tx.Bookmark.Query().
		Order(ent.Desc(bookmark.FieldID)).
		Limit(r.keep).
		IDs(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("list bookmarks: %w", err))
	}
	if _, err := tx.Bookmark.Delete().Where(bookmark.IDNotIn(newest...)).Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("prune bookmarks: %w", err))
	}
	return tx.Commit()
}

func (r *bookmarkRepo) Latest(ctx context.Context) (*Bookmark, error) {
	b, err := r.client.Bookmark.Query().Order(ent.Desc(bookmark.FieldID)).First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest bookmark: %w", err)
	}
	return &Bookmark{
		ID:      b.ID,
		Level:   b.Level,
		Lesson:  b.Lesson,
		Title:   b.Title,
		SavedAt: b.SavedAt,
	}, nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback: %v)", err, rerr)
	}
	return err
}
