package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/leowu0329/qc-cases/internal/qc/entity"
	"github.com/leowu0329/qc-cases/internal/qc/repository"
)

// FieldError 单个字段校验错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError 校验失败，携带字段级错误列表
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "校验失败: " + strings.Join(msgs, "; ")
}

// CaseRequest 创建/更新案件请求，字段与实体一一对应
type CaseRequest struct {
	InspectionType    string  `json:"inspectionType" binding:"required"`
	MarketType        string  `json:"marketType" binding:"required"`
	Customer          string  `json:"customer"`
	Department        string  `json:"department" binding:"required"`
	Date              string  `json:"date" binding:"required"` // YYYY-MM-DD
	Time              string  `json:"time"`
	WorkOrder         string  `json:"workOrder"`
	Operator          string  `json:"operator"`
	DrawingVersion    string  `json:"drawingVersion"`
	ProductNumber     string  `json:"productNumber"`
	ProductName       string  `json:"productName"`
	Quantity          int     `json:"quantity"`
	Inspector         string  `json:"inspector"`
	DefectCategory    string  `json:"defectCategory"`
	DefectDescription string  `json:"defectDescription"`
	Solution          string  `json:"solution"`
	InspectionHours   float64 `json:"inspectionHours"`
}

// Validate 校验请求，返回解析后的日期
func (r *CaseRequest) Validate() (time.Time, *ValidationError) {
	var fields []FieldError

	if !entity.IsValidInspectionType(r.InspectionType) {
		fields = append(fields, FieldError{"inspectionType", "必须为 首件/巡檢"})
	}
	if !entity.IsValidMarketType(r.MarketType) {
		fields = append(fields, FieldError{"marketType", "必须为 內銷/外銷"})
	}
	if !entity.IsValidDepartment(r.Department) {
		fields = append(fields, FieldError{"department", "不在部门列表内"})
	}
	if !entity.IsValidInspector(r.Inspector) {
		fields = append(fields, FieldError{"inspector", "不在检验员列表内"})
	}
	if !entity.IsValidDefectCategory(r.DefectCategory) {
		fields = append(fields, FieldError{"defectCategory", "不在缺陷分类列表内"})
	}
	if r.Quantity < 0 {
		fields = append(fields, FieldError{"quantity", "不能为负数"})
	}
	if r.InspectionHours < 0 {
		fields = append(fields, FieldError{"inspectionHours", "不能为负数"})
	}

	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		fields = append(fields, FieldError{"date", "日期格式应为 YYYY-MM-DD"})
	}

	if len(fields) > 0 {
		return time.Time{}, &ValidationError{Fields: fields}
	}
	return date, nil
}

func (r *CaseRequest) apply(record *entity.InspectionCase, date time.Time) {
	record.InspectionType = r.InspectionType
	record.MarketType = r.MarketType
	record.Customer = r.Customer
	record.Department = r.Department
	record.Date = date
	record.Time = r.Time
	record.WorkOrder = r.WorkOrder
	record.Operator = r.Operator
	record.DrawingVersion = r.DrawingVersion
	record.ProductNumber = r.ProductNumber
	record.ProductName = r.ProductName
	record.Quantity = r.Quantity
	record.Inspector = r.Inspector
	record.DefectCategory = r.DefectCategory
	record.DefectDescription = r.DefectDescription
	record.Solution = r.Solution
	record.InspectionHours = r.InspectionHours
}

// ListResult 列表结果
type ListResult struct {
	Items []entity.InspectionCase
	Total int64
	Page  int
	Limit int
	Pages int
}

// CaseService 检验案件服务
type CaseService struct {
	repo *repository.CaseRepository
}

func NewCaseService(repo *repository.CaseRepository) *CaseService {
	return &CaseService{repo: repo}
}

// List 查询案件列表
func (s *CaseService) List(ctx context.Context, q *repository.ListQuery) (*ListResult, error) {
	items, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.InspectionCase{}
	}
	return &ListResult{
		Items: items,
		Total: total,
		Page:  q.Page,
		Limit: q.Limit,
		Pages: int(math.Ceil(float64(total) / float64(q.Limit))),
	}, nil
}

// Get 获取案件详情
func (s *CaseService) Get(ctx context.Context, id string) (*entity.InspectionCase, error) {
	return s.repo.FindByID(ctx, id)
}

// Create 创建案件
func (s *CaseService) Create(ctx context.Context, req *CaseRequest) (*entity.InspectionCase, error) {
	date, verr := req.Validate()
	if verr != nil {
		return nil, verr
	}

	record := &entity.InspectionCase{
		ID: newCaseID(),
	}
	req.apply(record, date)

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create case: %w", err)
	}
	return record, nil
}

// Update 更新案件，整体替换可变字段，ID 与 createdAt 保持不变
func (s *CaseService) Update(ctx context.Context, id string, req *CaseRequest) (*entity.InspectionCase, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	date, verr := req.Validate()
	if verr != nil {
		return nil, verr
	}

	req.apply(record, date)

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("update case: %w", err)
	}
	return record, nil
}

// Delete 删除案件
func (s *CaseService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// newCaseID 生成32位十六进制ID
func newCaseID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
