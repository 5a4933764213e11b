package service

import "github.com/privatep88/hall/internal/model"

// SeedBookings 确定性种子数据
// 持久化数据缺失或不可读时的初始预订集，ID 固定以保证重复装载结果一致
func SeedBookings() []model.Booking {
	return []model.Booking{
		{
			ID:         "seed-7c21a0f4",
			HallID:     "hall-1",
			Date:       "2025-03-10",
			Time:       "09:00",
			EndTime:    "11:00",
			Department: "行政部",
			Notes:      "月度例会",
		},
		{
			ID:         "seed-3b9e5d12",
			HallID:     "hall-1",
			Date:       "2025-03-10",
			Time:       "14:00",
			EndTime:    "15:00",
			Department: "人事部",
			Notes:      "面试",
		},
		{
			ID:         "seed-a85f02c7",
			HallID:     "hall-2",
			Date:       "2025-03-12",
			Time:       "10:00",
			EndTime:    "12:00",
			Department: "技术部",
			Notes:      "方案评审",
		},
	}
}
