package service

import "hash/fnv"

// ── 预订展示色 ──
//
// 颜色是预订 ID 的纯函数：FNV-1a 哈希落入固定调色板。
// 与渲染顺序无关，跨会话稳定，同一预订在网格与导出中始终同色。

// colorPalette 固定调色板（浅色系，保证黑色文字可读）
var colorPalette = []string{
	"#FFD8B1", // 杏橙
	"#C9E4DE", // 灰绿
	"#F2C6DE", // 粉紫
	"#C6DEF1", // 浅蓝
	"#FAEDCB", // 米黄
	"#DBCDF0", // 淡紫
	"#E2F0CB", // 嫩绿
	"#F7D9C4", // 浅棕
}

// ColorFor 返回预订 ID 对应的稳定展示色
func ColorFor(bookingID string) string {
	h := fnv.New32a()
	h.Write([]byte(bookingID))
	return colorPalette[h.Sum32()%uint32(len(colorPalette))]
}
