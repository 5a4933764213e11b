package handler

import "github.com/privatep88/hall/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Booking *BookingHandler
	Board   *BoardHandler
	Export  *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Booking: NewBookingHandler(svc.Booking),
		Board:   NewBoardHandler(svc.Grid),
		Export:  NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
