package repository

import (
	"context"
	"errors"

	"github.com/privatep88/hall/internal/model"
)

// ErrBlobNotFound 持久化 blob 尚不存在（首次启动）
var ErrBlobNotFound = errors.New("预订数据尚未持久化")

// BookingRepository 预订集持久化接口
//
// 语义为整集 blob 读写：Load 返回完整预订列表，Save 整体覆盖写入。
// 预订量上限为 槽数×天数×厅数，整集序列化的成本可忽略，不做增量存储。
// 内存中的预订集始终是会话内的权威数据，Save 失败由调用方降级处理（仅记日志）。
type BookingRepository interface {
	Load(ctx context.Context) ([]model.Booking, error)
	Save(ctx context.Context, bookings []model.Booking) error
}
