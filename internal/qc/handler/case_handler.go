package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leowu0329/qc-cases/internal/qc/service"
)

// CaseHandler 检验案件处理器
type CaseHandler struct {
	svc *service.CaseService
}

func NewCaseHandler(svc *service.CaseService) *CaseHandler {
	return &CaseHandler{svc: svc}
}

// List 案件列表
// GET /api/cases?page&limit&search&sortField&sortOrder&inspectionType&marketType&department&startDate&endDate
func (h *CaseHandler) List(c *gin.Context) {
	q := ParseListQuery(c)

	result, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		RespondError(c, err)
		return
	}

	SuccessList(c, result.Items, &Pagination{
		Total: result.Total,
		Page:  result.Page,
		Limit: result.Limit,
		Pages: result.Pages,
	})
}

// Get 案件详情
// GET /api/cases/:id
func (h *CaseHandler) Get(c *gin.Context) {
	record, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, record)
}

// Create 创建案件
// POST /api/cases
func (h *CaseHandler) Create(c *gin.Context) {
	var req service.CaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "參數錯誤: "+err.Error())
		return
	}

	record, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, record)
}

// Update 更新案件
// PUT /api/cases/:id
func (h *CaseHandler) Update(c *gin.Context) {
	var req service.CaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "參數錯誤: "+err.Error())
		return
	}

	record, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, record)
}

// Delete 删除案件
// DELETE /api/cases/:id
func (h *CaseHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	SuccessMessage(c, "案例已刪除")
}

// BulkGenerate 批量生成随机案件（演示数据）
// POST /api/cases/random
func (h *CaseHandler) BulkGenerate(c *gin.Context) {
	count, err := h.svc.BulkGenerateRandom(c.Request.Context(), service.DefaultBulkCount)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  count,
	})
}

// Export 导出案件列表
// GET /api/cases/export（过滤参数同 List）
func (h *CaseHandler) Export(c *gin.Context) {
	q := ParseListQuery(c)

	f, filename, err := h.svc.Export(c.Request.Context(), q)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		Error(c, http.StatusInternalServerError, "write excel: "+err.Error())
	}
}
