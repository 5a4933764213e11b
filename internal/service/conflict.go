package service

import "github.com/privatep88/hall/internal/model"

// HasConflict 冲突检测：判断候选预订能否提交
//
// 纯谓词，不做任何修改。规则：
//   - 仅与同厅同日的已有预订比较
//   - excludeID 对应的预订跳过（编辑时排除自身；无匹配时等价于不排除）
//   - 半开区间重叠判定 cand.Time < other.EndTime && cand.EndTime > other.Time，
//     首尾相接的预订不算冲突
//
// O(n) 线性扫描。预订量上限为 槽数×天数×厅数，不值得维护索引。
// 候选区间自身的合法性（time < endTime、标签在网格内）由调用方先行校验。
func HasConflict(existing []model.Booking, candidate model.Booking, excludeID string) bool {
	for _, other := range existing {
		if excludeID != "" && other.ID == excludeID {
			continue
		}
		if other.HallID != candidate.HallID || other.Date != candidate.Date {
			continue
		}
		if candidate.Overlaps(other) {
			return true
		}
	}
	return false
}
