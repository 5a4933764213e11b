package dto

import (
	"github.com/privatep88/hall/internal/model"
)

// ── 预订请求 ──

// CreateBookingRequest 创建预订请求
type CreateBookingRequest struct {
	HallID     string `json:"hall_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	EndTime    string `json:"end_time" binding:"required"`
	Department string `json:"department" binding:"required,max=100"`
	Notes      string `json:"notes" binding:"omitempty,max=500"`
}

// UpdateBookingRequest 更新预订请求
// 厅与 ID 不可变更；时间段与展示字段可整体替换
type UpdateBookingRequest struct {
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	EndTime    string `json:"end_time" binding:"required"`
	Department string `json:"department" binding:"required,max=100"`
	Notes      string `json:"notes" binding:"omitempty,max=500"`
}

// ── 预订响应 ──

// BookingResponse 预订响应
type BookingResponse struct {
	ID         string `json:"id"`
	HallID     string `json:"hall_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	EndTime    string `json:"end_time"`
	Department string `json:"department"`
	Notes      string `json:"notes,omitempty"`
	Color      string `json:"color"`
}

// NewBookingResponse 由领域模型构建响应，color 为稳定的展示色
func NewBookingResponse(b model.Booking, color string) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		HallID:     b.HallID,
		Date:       b.Date,
		Time:       b.Time,
		EndTime:    b.EndTime,
		Department: b.Department,
		Notes:      b.Notes,
		Color:      color,
	}
}
