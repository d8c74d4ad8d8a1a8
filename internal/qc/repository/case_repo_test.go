package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/leowu0329/qc-cases/internal/qc/entity"
	"github.com/leowu0329/qc-cases/internal/qc/repository"
	"github.com/leowu0329/qc-cases/internal/qc/testutil"
)

func seedCase(t *testing.T, repo *repository.CaseRepository, id string, mutate func(*entity.InspectionCase)) *entity.InspectionCase {
	t.Helper()
	record := &entity.InspectionCase{
		ID:             id,
		InspectionType: entity.InspectionTypeFirstArticle,
		MarketType:     entity.MarketTypeDomestic,
		Customer:       "客戶A",
		Department:     "塑膠射出課",
		Date:           time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Time:           "09:30",
		WorkOrder:      "WO0001",
		ProductNumber:  "PN0001",
		ProductName:    "產品A",
		Quantity:       10,
	}
	if mutate != nil {
		mutate(record)
	}
	if err := repo.Create(context.Background(), record); err != nil {
		t.Fatalf("Failed to seed case %s: %v", id, err)
	}
	return record
}

func TestCaseRepositoryFilters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCaseRepository(db)
	ctx := context.Background()

	seedCase(t, repo, "case-001", nil)
	seedCase(t, repo, "case-002", func(r *entity.InspectionCase) {
		r.InspectionType = entity.InspectionTypePatrol
		r.MarketType = entity.MarketTypeExport
		r.Department = "機械加工課"
	})
	seedCase(t, repo, "case-003", func(r *entity.InspectionCase) {
		r.MarketType = entity.MarketTypeExport
	})

	// 无过滤条件时总数等于库内记录数
	items, total, err := repo.FindAll(ctx, &repository.ListQuery{})
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if total != 3 || len(items) != 3 {
		t.Fatalf("expected total 3, got total=%d items=%d", total, len(items))
	}

	// 单条件过滤：只返回首件
	items, total, err = repo.FindAll(ctx, &repository.ListQuery{InspectionType: entity.InspectionTypeFirstArticle})
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 first-article cases, got %d", total)
	}
	for _, item := range items {
		if item.InspectionType != entity.InspectionTypeFirstArticle {
			t.Fatalf("unexpected inspectionType %q", item.InspectionType)
		}
	}

	// 双条件取交集
	_, total, err = repo.FindAll(ctx, &repository.ListQuery{
		InspectionType: entity.InspectionTypeFirstArticle,
		MarketType:     entity.MarketTypeExport,
	})
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected conjunction to match 1 case, got %d", total)
	}
}

func TestCaseRepositorySearchCaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCaseRepository(db)
	ctx := context.Background()

	seedCase(t, repo, "case-010", func(r *entity.InspectionCase) {
		r.ProductNumber = "PN0012"
	})
	seedCase(t, repo, "case-011", func(r *entity.InspectionCase) {
		r.ProductNumber = "XX9999"
		r.ProductName = "別的產品"
	})

	// 大小写不敏感的子串匹配
	items, total, err := repo.FindAll(ctx, &repository.ListQuery{Search: "pn001"})
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if total != 1 || items[0].ID != "case-010" {
		t.Fatalf("expected search to match case-010 only, got total=%d", total)
	}

	// 搜索跨 productName 字段 OR 匹配
	_, total, err = repo.FindAll(ctx, &repository.ListQuery{Search: "別的"})
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected productName search to match 1 case, got %d", total)
	}
}

func TestCaseRepositoryDateRangeInclusive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCaseRepository(db)
	ctx := context.Background()

	dates := []time.Time{
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
	}
	for i, d := range dates {
		date := d
		seedCase(t, repo, "case-02"+string(rune('0'+i)), func(r *entity.InspectionCase) {
			r.Date = date
		})
	}

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	_, total, err := repo.FindAll(ctx, &repository.ListQuery{StartDate: &start, EndDate: &end})
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	// 两端闭区间：8/1 与 8/10 都包含
	if total != 2 {
		t.Fatalf("expected inclusive range to match 2 cases, got %d", total)
	}
}

func TestCaseRepositorySortReversal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCaseRepository(db)
	ctx := context.Background()

	seedCase(t, repo, "case-030", func(r *entity.InspectionCase) {
		r.Date = time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)
	})
	seedCase(t, repo, "case-031", func(r *entity.InspectionCase) {
		r.Date = time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	})
	seedCase(t, repo, "case-032", func(r *entity.InspectionCase) {
		r.Date = time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	})

	asc, _, err := repo.FindAll(ctx, &repository.ListQuery{SortField: "date", SortOrder: "asc"})
	if err != nil {
		t.Fatalf("FindAll asc failed: %v", err)
	}
	desc, _, err := repo.FindAll(ctx, &repository.ListQuery{SortField: "date", SortOrder: "desc"})
	if err != nil {
		t.Fatalf("FindAll desc failed: %v", err)
	}

	if len(asc) != 3 || len(desc) != 3 {
		t.Fatalf("expected 3 cases in both orders, got %d/%d", len(asc), len(desc))
	}
	for i := range asc {
		if asc[i].ID != desc[len(desc)-1-i].ID {
			t.Fatalf("descending order is not the reverse of ascending at index %d", i)
		}
	}
}

func TestCaseRepositoryPagination(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCaseRepository(db)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		seedCase(t, repo, string(rune('a'+i/10))+"-case-"+string(rune('0'+i%10)), nil)
	}

	items, total, err := repo.FindAll(ctx, &repository.ListQuery{Page: 3, Limit: 10})
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if total != 25 {
		t.Fatalf("expected total 25, got %d", total)
	}
	if len(items) != 5 {
		t.Fatalf("expected 5 items on page 3, got %d", len(items))
	}

	// 非法分页参数收敛到安全下限
	items, _, err = repo.FindAll(ctx, &repository.ListQuery{Page: -1, Limit: 0})
	if err != nil {
		t.Fatalf("FindAll with bad pagination failed: %v", err)
	}
	if len(items) != 10 {
		t.Fatalf("expected clamped defaults to return 10 items, got %d", len(items))
	}
}

func TestCaseRepositoryDeleteNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCaseRepository(db)
	ctx := context.Background()

	record := seedCase(t, repo, "case-040", nil)

	if err := repo.Delete(ctx, record.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.FindByID(ctx, record.ID); err != repository.ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, record.ID); err != repository.ErrNotFound {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}
