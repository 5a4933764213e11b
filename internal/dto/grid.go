package dto

// ── 月历网格 ──
//
// 网格响应同时供前端渲染与打印使用：Occupied 单元格渲染为跨 span 列的
// 合并单元格，Empty 单元格逐槽可点击。Excel 导出走同一套布局结果，
// 保证屏幕与导出文件的行列一致。

// GridCell 一个视觉单元格
// booking 为空表示空闲槽（span 恒为 1），否则表示占用 span 个连续槽
type GridCell struct {
	SlotIndex int              `json:"slot_index"`
	Span      int              `json:"span"`
	Booking   *BookingResponse `json:"booking,omitempty"`
}

// GridDay 某厅某日的一行
type GridDay struct {
	Date    string     `json:"date"` // YYYY-MM-DD
	Weekday string     `json:"weekday"`
	Cells   []GridCell `json:"cells"`
}

// MonthGridResponse 某厅某月的完整网格
type MonthGridResponse struct {
	HallID   string    `json:"hall_id"`
	HallName string    `json:"hall_name"`
	Year     int       `json:"year"`
	Month    int       `json:"month"`
	Slots    []string  `json:"slots"` // 含哨兵边界，最后一项仅作列尾刻度
	Days     []GridDay `json:"days"`
}

// HallResponse 会议厅响应
type HallResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SlotsResponse 时间槽网格响应
type SlotsResponse struct {
	Slots    []string `json:"slots"`
	Sentinel string   `json:"sentinel"`
}
