package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/privatep88/hall/internal/model"
	"github.com/privatep88/hall/pkg/redis"
)

// redisRepository 单键 Redis blob 存储
// 与文件存储语义一致：一个键保存整个预订集的 JSON
type redisRepository struct {
	client *redis.Client
	key    string
}

// NewRedisRepository 创建 Redis 存储
func NewRedisRepository(client *redis.Client, key string) BookingRepository {
	return &redisRepository{client: client, key: key}
}

// Load 读取整个预订集；键不存在时返回 ErrBlobNotFound
func (r *redisRepository) Load(ctx context.Context) ([]model.Booking, error) {
	data, err := r.client.GetBlob(ctx, r.key)
	if err != nil {
		if errors.Is(err, redis.ErrKeyNotFound) {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("读取 Redis 预订数据失败: %w", err)
	}

	var bookings []model.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("解析 Redis 预订数据失败: %w", err)
	}
	return bookings, nil
}

// Save 整体覆盖写入
func (r *redisRepository) Save(ctx context.Context, bookings []model.Booking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("序列化预订数据失败: %w", err)
	}
	if err := r.client.SetBlob(ctx, r.key, data); err != nil {
		return fmt.Errorf("写入 Redis 预订数据失败: %w", err)
	}
	return nil
}
