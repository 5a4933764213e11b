package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/privatep88/hall/internal/model"
)

func newTestFileRepo(t *testing.T) BookingRepository {
	t.Helper()
	repo, err := NewFileRepository(filepath.Join(t.TempDir(), "bookings.json"), zap.NewNop())
	if err != nil {
		t.Fatalf("创建文件存储失败: %v", err)
	}
	return repo
}

func TestFileRepository_LoadMissing(t *testing.T) {
	repo := newTestFileRepo(t)

	if _, err := repo.Load(context.Background()); !errors.Is(err, ErrBlobNotFound) {
		t.Errorf("文件不存在应返回 ErrBlobNotFound，实际: %v", err)
	}
}

func TestFileRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestFileRepo(t)

	bookings := []model.Booking{
		{
			ID:         "b-1",
			HallID:     "hall-1",
			Date:       "2025-03-10",
			Time:       "09:00",
			EndTime:    "11:00",
			Department: "行政部",
			Notes:      "月度例会",
		},
		{
			ID:      "b-2",
			HallID:  "hall-2",
			Date:    "2025-03-12",
			Time:    "14:00",
			EndTime: "15:00",
		},
	}

	if err := repo.Save(ctx, bookings); err != nil {
		t.Fatalf("保存失败: %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("读取失败: %v", err)
	}
	if len(loaded) != len(bookings) {
		t.Fatalf("应读回 %d 条，实际 %d 条", len(bookings), len(loaded))
	}
	for i := range bookings {
		if loaded[i] != bookings[i] {
			t.Errorf("第 %d 条往返不一致: %+v != %+v", i, loaded[i], bookings[i])
		}
	}
}

func TestFileRepository_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := newTestFileRepo(t)

	if err := repo.Save(ctx, []model.Booking{{ID: "b-1"}, {ID: "b-2"}}); err != nil {
		t.Fatalf("首次保存失败: %v", err)
	}
	// 整体覆盖语义：第二次保存后只剩新集合
	if err := repo.Save(ctx, []model.Booking{{ID: "b-3"}}); err != nil {
		t.Fatalf("二次保存失败: %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("读取失败: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "b-3" {
		t.Errorf("应只剩覆盖后的集合，实际: %+v", loaded)
	}
}

func TestFileRepository_LoadCorrupted(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bookings.json")
	if err := os.WriteFile(path, []byte("{not-json"), 0o644); err != nil {
		t.Fatalf("写入损坏文件失败: %v", err)
	}

	repo, err := NewFileRepository(path, zap.NewNop())
	if err != nil {
		t.Fatalf("创建文件存储失败: %v", err)
	}
	if _, err := repo.Load(context.Background()); err == nil {
		t.Error("损坏的 JSON 应返回错误")
	}
}
