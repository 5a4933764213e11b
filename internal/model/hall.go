package model

import "fmt"

// Hall 会议厅（全局恰好两个，配置期确定，运行期不变）
type Hall struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// HallSet 会议厅集合，提供按 ID 查找
type HallSet struct {
	halls []Hall
	byID  map[string]Hall
}

// NewHallSet 由有序会议厅列表构建集合
func NewHallSet(halls []Hall) (*HallSet, error) {
	if len(halls) != 2 {
		return nil, fmt.Errorf("会议厅必须恰好 2 个，实际 %d 个", len(halls))
	}
	byID := make(map[string]Hall, len(halls))
	for _, h := range halls {
		if _, dup := byID[h.ID]; dup {
			return nil, fmt.Errorf("会议厅 ID 重复: %s", h.ID)
		}
		byID[h.ID] = h
	}
	return &HallSet{halls: halls, byID: byID}, nil
}

// All 按配置顺序返回所有会议厅
func (s *HallSet) All() []Hall {
	out := make([]Hall, len(s.halls))
	copy(out, s.halls)
	return out
}

// Get 按 ID 查找会议厅
func (s *HallSet) Get(id string) (Hall, bool) {
	h, ok := s.byID[id]
	return h, ok
}
