package gormdb

import (
	"context"
	"errors"
	"testing"
	"time"

	"vidhost/internal/domain"
	"vidhost/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) repository.VideoRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return NewVideoRepository(db)
}

func TestVideoRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create assigns id and upload date", func(t *testing.T) {
		repo := newTestRepo(t)
		v := &domain.Video{Title: "clip", VideoKey: "videos/a.mp4"}

		id, err := repo.Create(ctx, v)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id == 0 {
			t.Error("expected a non-zero id")
		}

		saved, err := repo.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.UploadDate.IsZero() {
			t.Error("expected upload date to be set on insert")
		}
	})

	t.Run("video key is unique", func(t *testing.T) {
		repo := newTestRepo(t)
		if _, err := repo.Create(ctx, &domain.Video{Title: "a", VideoKey: "videos/dup.mp4"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.Create(ctx, &domain.Video{Title: "b", VideoKey: "videos/dup.mp4"}); err == nil {
			t.Error("expected duplicate video key to be rejected")
		}
	})

	t.Run("get unknown id returns ErrNotFound", func(t *testing.T) {
		repo := newTestRepo(t)
		if _, err := repo.GetByID(ctx, 99); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("get all orders by upload date descending", func(t *testing.T) {
		repo := newTestRepo(t)
		base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		for i, title := range []string{"oldest", "middle", "newest"} {
			v := &domain.Video{
				Title:      title,
				VideoKey:   "videos/" + title + ".mp4",
				UploadDate: base.Add(time.Duration(i) * time.Hour),
			}
			if _, err := repo.Create(ctx, v); err != nil {
				t.Fatalf("seed failed: %v", err)
			}
		}

		all, err := repo.GetAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(all))
		}
		want := []string{"newest", "middle", "oldest"}
		for i := range want {
			if all[i].Title != want[i] {
				t.Fatalf("order = [%s %s %s], want %v", all[0].Title, all[1].Title, all[2].Title, want)
			}
		}
	})

	t.Run("delete removes the row", func(t *testing.T) {
		repo := newTestRepo(t)
		id, err := repo.Create(ctx, &domain.Video{Title: "gone", VideoKey: "videos/g.mp4"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := repo.Delete(ctx, id); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.GetByID(ctx, id); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound after delete", err)
		}
	})

	t.Run("delete unknown id returns ErrNotFound", func(t *testing.T) {
		repo := newTestRepo(t)
		if err := repo.Delete(ctx, 99); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("nullable thumbnail key round-trips", func(t *testing.T) {
		repo := newTestRepo(t)
		key := "thumbnails/t.png"
		withThumb, err := repo.Create(ctx, &domain.Video{Title: "a", VideoKey: "videos/a.mp4", ThumbnailKey: &key})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		withoutThumb, err := repo.Create(ctx, &domain.Video{Title: "b", VideoKey: "videos/b.mp4"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		a, _ := repo.GetByID(ctx, withThumb)
		if a.ThumbnailKey == nil || *a.ThumbnailKey != key {
			t.Errorf("thumbnail key = %v, want %q", a.ThumbnailKey, key)
		}
		b, _ := repo.GetByID(ctx, withoutThumb)
		if b.ThumbnailKey != nil {
			t.Errorf("thumbnail key = %v, want nil", *b.ThumbnailKey)
		}
	})
}
