package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
)

// ── ICS 导出 ──
//
// 把某厅某月的预订输出为标准 iCalendar (RFC 5545) 订阅源：
//   - 每条预订一个 VEVENT，UID 取预订 ID
//   - DTSTART/DTEND 由 date + time/end_time 组合而来，按 UTC 输出
//     （预订本身无时区概念，槽标签即墙上时间）
//   - SUMMARY 取部门，LOCATION 取厅名，DESCRIPTION 取备注

// ExportICS 导出某厅某月预订为 iCalendar 订阅源
func (s *exportService) ExportICS(ctx context.Context, hallID string, year, month int) (*bytes.Buffer, string, error) {
	hall, ok := s.halls.Get(hallID)
	if !ok {
		return nil, "", ErrUnknownHall
	}
	if month < 1 || month > 12 {
		return nil, "", ErrInvalidMonth
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//privatep88//hall//CN")
	cal.SetName(fmt.Sprintf("%s %d-%02d", hall.Name, year, month))

	for _, day := range MonthDays(year, time.Month(month)) {
		for _, b := range s.booking.ListForDay(ctx, hallID, day.Date) {
			start, err := time.Parse("2006-01-02 15:04", b.Date+" "+b.Time)
			if err != nil {
				s.logger.Warn("预订开始时间无法解析，跳过 ICS 事件",
					zap.String("id", b.ID), zap.Error(err))
				continue
			}
			end, err := time.Parse("2006-01-02 15:04", b.Date+" "+b.EndTime)
			if err != nil || !end.After(start) {
				// 结束时间损坏时与网格布局同策略：按一个槽的最小时长降级
				end = start.Add(30 * time.Minute)
			}

			event := cal.AddEvent(b.ID)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(b.Department)
			event.SetLocation(hall.Name)
			if b.Notes != "" {
				event.SetDescription(b.Notes)
			}
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("%s_%d-%02d.ics", hall.Name, year, month)
	return buf, filename, nil
}
