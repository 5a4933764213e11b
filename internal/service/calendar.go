package service

import "time"

// ── 月份枚举 ──

// DateFormat 预订日期的统一格式
const DateFormat = "2006-01-02"

// CalendarDay 日历中的一天
type CalendarDay struct {
	Date    string // YYYY-MM-DD
	Weekday time.Weekday
}

// weekdayNames 星期显示名
var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "周日",
	time.Monday:    "周一",
	time.Tuesday:   "周二",
	time.Wednesday: "周三",
	time.Thursday:  "周四",
	time.Friday:    "周五",
	time.Saturday:  "周六",
}

// WeekdayName 星期显示名
func WeekdayName(w time.Weekday) string {
	return weekdayNames[w]
}

// MonthDays 枚举某年某月的全部日期（升序）
func MonthDays(year int, month time.Month) []CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := make([]CalendarDay, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, CalendarDay{
			Date:    d.Format(DateFormat),
			Weekday: d.Weekday(),
		})
	}
	return days
}
