package repository

import (
	"context"
	"errors"
	"time"

	"github.com/leowu0329/qc-cases/internal/qc/entity"
	"gorm.io/gorm"
)

// ListQuery 列表查询条件：过滤 + 搜索 + 排序 + 分页。
// 相同排序键的记录顺序由存储层自然顺序决定，不做稳定性保证。
type ListQuery struct {
	Page  int
	Limit int

	Search string

	SortField string // JSON 字段名，需在 sortColumns 白名单内
	SortOrder string // "asc" 升序，其余值一律降序

	InspectionType string
	MarketType     string
	Department     string

	StartDate *time.Time
	EndDate   *time.Time
}

// sortColumns 可排序字段白名单（JSON 字段名 → 列名）。
// 排序键会拼入 ORDER BY，不在表内的一律回退默认排序。
var sortColumns = map[string]string{
	"inspectionType":  "inspection_type",
	"marketType":      "market_type",
	"customer":        "customer",
	"department":      "department",
	"date":            "date",
	"time":            "time",
	"workOrder":       "work_order",
	"operator":        "operator",
	"productNumber":   "product_number",
	"productName":     "product_name",
	"quantity":        "quantity",
	"inspector":       "inspector",
	"defectCategory":  "defect_category",
	"inspectionHours": "inspection_hours",
	"createdAt":       "created_at",
	"updatedAt":       "updated_at",
}

// Normalize 收敛分页参数，避免负偏移
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
}

// OrderClause 生成排序子句，默认 created_at DESC
func (q *ListQuery) OrderClause() string {
	col, ok := sortColumns[q.SortField]
	if !ok {
		return "created_at DESC"
	}
	if q.SortOrder == "asc" {
		return col + " ASC"
	}
	return col + " DESC"
}

// CaseRepository 检验案件仓库
type CaseRepository struct {
	db *gorm.DB
}

func NewCaseRepository(db *gorm.DB) *CaseRepository {
	return &CaseRepository{db: db}
}

func (r *CaseRepository) buildQuery(ctx context.Context, q *ListQuery) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entity.InspectionCase{})

	if q.InspectionType != "" {
		query = query.Where("inspection_type = ?", q.InspectionType)
	}
	if q.MarketType != "" {
		query = query.Where("market_type = ?", q.MarketType)
	}
	if q.Department != "" {
		query = query.Where("department = ?", q.Department)
	}

	if q.Search != "" {
		kw := "%" + q.Search + "%"
		query = query.Where(
			"product_number ILIKE ? OR product_name ILIKE ? OR inspector ILIKE ? OR defect_category ILIKE ?",
			kw, kw, kw, kw,
		)
	}

	// 日期区间，两端闭区间
	if q.StartDate != nil {
		query = query.Where("date >= ?", *q.StartDate)
	}
	if q.EndDate != nil {
		query = query.Where("date <= ?", *q.EndDate)
	}

	return query
}

// FindAll 查询案件列表，total 为同条件不分页的总数
func (r *CaseRepository) FindAll(ctx context.Context, q *ListQuery) ([]entity.InspectionCase, int64, error) {
	q.Normalize()

	var items []entity.InspectionCase
	var total int64

	query := r.buildQuery(ctx, q)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (q.Page - 1) * q.Limit
	err := query.
		Order(q.OrderClause()).
		Offset(offset).
		Limit(q.Limit).
		Find(&items).Error

	return items, total, err
}

// FindAllUnpaged 查询同条件全部案件（导出用）
func (r *CaseRepository) FindAllUnpaged(ctx context.Context, q *ListQuery) ([]entity.InspectionCase, error) {
	var items []entity.InspectionCase
	err := r.buildQuery(ctx, q).
		Order(q.OrderClause()).
		Find(&items).Error
	return items, err
}

// FindByID 根据ID查找案件
func (r *CaseRepository) FindByID(ctx context.Context, id string) (*entity.InspectionCase, error) {
	var record entity.InspectionCase
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Create 创建案件
func (r *CaseRepository) Create(ctx context.Context, record *entity.InspectionCase) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// CreateBatch 批量创建案件，整批一起提交
func (r *CaseRepository) CreateBatch(ctx context.Context, records []entity.InspectionCase) error {
	return r.db.WithContext(ctx).CreateInBatches(records, 100).Error
}

// Update 更新案件
func (r *CaseRepository) Update(ctx context.Context, record *entity.InspectionCase) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// Delete 删除案件（硬删除）
func (r *CaseRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.InspectionCase{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
