package entity

import (
	"time"
)

// InspectionCase 检验案件
// JSON 字段沿用原前端的 camelCase 接口
type InspectionCase struct {
	ID             string `json:"id" gorm:"primaryKey;size:32"`
	InspectionType string `json:"inspectionType" gorm:"size:20;not null;index"` // 首件/巡檢
	MarketType     string `json:"marketType" gorm:"size:20;not null;index"`     // 內銷/外銷
	Customer       string `json:"customer" gorm:"size:100"`
	Department     string `json:"department" gorm:"size:50;not null;index"`

	Date time.Time `json:"date" gorm:"type:date;index"`
	Time string    `json:"time" gorm:"size:5"` // HH:MM

	WorkOrder      string `json:"workOrder" gorm:"size:50"`
	Operator       string `json:"operator" gorm:"size:50"`
	DrawingVersion string `json:"drawingVersion" gorm:"size:20"`
	ProductNumber  string `json:"productNumber" gorm:"size:50;index"`
	ProductName    string `json:"productName" gorm:"size:100"`
	Quantity       int    `json:"quantity"`

	Inspector         string  `json:"inspector" gorm:"size:50"`      // 空串 = 未指派
	DefectCategory    string  `json:"defectCategory" gorm:"size:50"` // 空串 = 无缺陷
	DefectDescription string  `json:"defectDescription" gorm:"type:text"`
	Solution          string  `json:"solution" gorm:"type:text"`
	InspectionHours   float64 `json:"inspectionHours" gorm:"type:decimal(5,2)"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (InspectionCase) TableName() string {
	return "qc_cases"
}

// 检验类型
const (
	InspectionTypeFirstArticle = "首件"
	InspectionTypePatrol       = "巡檢"
)

// 市场类型
const (
	MarketTypeDomestic = "內銷"
	MarketTypeExport   = "外銷"
)

// 封闭取值集合。inspector 与 defectCategory 允许空串（未指派/无异常），
// 因此集合首位保留空值。
var (
	InspectionTypes = []string{InspectionTypeFirstArticle, InspectionTypePatrol}

	MarketTypes = []string{MarketTypeDomestic, MarketTypeExport}

	Departments = []string{"塑膠射出課", "射出加工組", "機械加工課"}

	Inspectors = []string{"", "吳小男", "謝小宸", "黃小瀅", "蔡小函", "徐小棉", "杜小綾"}

	DefectCategories = []string{"", "無圖面", "圖物不符", "無工單", "無檢驗表單", "尺寸NG", "外觀NG"}
)

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// IsValidInspectionType 检验类型是否合法
func IsValidInspectionType(v string) bool { return contains(InspectionTypes, v) }

// IsValidMarketType 市场类型是否合法
func IsValidMarketType(v string) bool { return contains(MarketTypes, v) }

// IsValidDepartment 部门是否合法
func IsValidDepartment(v string) bool { return contains(Departments, v) }

// IsValidInspector 检验员是否合法（含空值）
func IsValidInspector(v string) bool { return contains(Inspectors, v) }

// IsValidDefectCategory 缺陷分类是否合法（含空值）
func IsValidDefectCategory(v string) bool { return contains(DefectCategories, v) }
