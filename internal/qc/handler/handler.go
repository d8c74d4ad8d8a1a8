package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leowu0329/qc-cases/internal/qc/repository"
	"github.com/leowu0329/qc-cases/internal/qc/service"
)

// Handlers 处理器集合
type Handlers struct {
	Case *CaseHandler
}

// NewHandlers 创建处理器集合
func NewHandlers(caseSvc *service.CaseService) *Handlers {
	return &Handlers{
		Case: NewCaseHandler(caseSvc),
	}
}

// === 响应信封（沿用原接口格式） ===

// Pagination 分页信息
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   data,
	})
}

func SuccessList(c *gin.Context, data interface{}, p *Pagination) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"data":       data,
		"pagination": p,
	})
}

func SuccessMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": message,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   data,
	})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
	})
}

// RespondError 统一错误映射：未找到→404，校验失败→400，其余→500
func RespondError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		Error(c, http.StatusNotFound, "找不到該案件")
	case errors.As(err, &verr):
		Error(c, http.StatusBadRequest, verr.Error())
	default:
		Error(c, http.StatusInternalServerError, "服務器內部錯誤: "+err.Error())
	}
}

// GetPagination 解析分页参数，非法值收敛到安全下限
func GetPagination(c *gin.Context) (page, limit int) {
	page = 1
	limit = 10

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}

	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}

	return page, limit
}

// ParseListQuery 将查询串转换为存储层查询条件
func ParseListQuery(c *gin.Context) *repository.ListQuery {
	page, limit := GetPagination(c)

	q := &repository.ListQuery{
		Page:           page,
		Limit:          limit,
		Search:         c.Query("search"),
		SortField:      c.Query("sortField"),
		SortOrder:      c.Query("sortOrder"),
		InspectionType: c.Query("inspectionType"),
		MarketType:     c.Query("marketType"),
		Department:     c.Query("department"),
	}

	if s := c.Query("startDate"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			q.StartDate = &t
		}
	}
	if s := c.Query("endDate"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			q.EndDate = &t
		}
	}

	return q
}
