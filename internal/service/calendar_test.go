package service

import (
	"testing"
	"time"
)

func TestMonthDays_Lengths(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.March, 31},
		{2025, time.April, 30},
		{2025, time.February, 28},
		{2024, time.February, 29}, // 闰年
		{2100, time.February, 28}, // 整百非闰
	}

	for _, tc := range cases {
		if got := len(MonthDays(tc.year, tc.month)); got != tc.want {
			t.Errorf("%d-%d 应有 %d 天，实际 %d 天", tc.year, tc.month, tc.want, got)
		}
	}
}

func TestMonthDays_OrderAndWeekday(t *testing.T) {
	days := MonthDays(2025, time.March)

	if days[0].Date != "2025-03-01" || days[len(days)-1].Date != "2025-03-31" {
		t.Fatalf("首尾日期错误: %s .. %s", days[0].Date, days[len(days)-1].Date)
	}
	for i := 1; i < len(days); i++ {
		if days[i].Date <= days[i-1].Date {
			t.Fatalf("日期应严格升序: %s 在 %s 之后", days[i].Date, days[i-1].Date)
		}
	}

	// 2025-03-10 是周一
	if days[9].Weekday != time.Monday {
		t.Errorf("2025-03-10 应为周一，实际 %v", days[9].Weekday)
	}
	if WeekdayName(days[9].Weekday) != "周一" {
		t.Errorf("周一显示名错误: %q", WeekdayName(days[9].Weekday))
	}
}
