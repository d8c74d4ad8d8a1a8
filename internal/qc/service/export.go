package service

import (
	"context"
	"fmt"
	"time"

	"github.com/leowu0329/qc-cases/internal/qc/repository"
	"github.com/xuri/excelize/v2"
)

var caseExportHeaders = []string{
	"檢驗類型", "市場類型", "客戶", "部門", "日期", "時間", "工單號",
	"操作員", "圖面版本", "產品編號", "產品名稱", "數量", "檢驗員",
	"缺陷分類", "缺陷描述", "解決方案", "檢驗工時",
}

// Export 按当前过滤条件导出全部案件为 xlsx（不分页）
func (s *CaseService) Export(ctx context.Context, q *repository.ListQuery) (*excelize.File, string, error) {
	items, err := s.repo.FindAllUnpaged(ctx, q)
	if err != nil {
		return nil, "", fmt.Errorf("list cases: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Cases"
	f.SetSheetName("Sheet1", sheet)

	// 表头样式: 加粗
	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, h := range caseExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	for rowIdx, item := range items {
		row := rowIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), item.InspectionType)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.MarketType)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), item.Customer)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), item.Department)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), item.Date.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), item.Time)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), item.WorkOrder)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), item.Operator)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), item.DrawingVersion)
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), item.ProductNumber)
		f.SetCellValue(sheet, fmt.Sprintf("K%d", row), item.ProductName)
		f.SetCellValue(sheet, fmt.Sprintf("L%d", row), item.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("M%d", row), item.Inspector)
		f.SetCellValue(sheet, fmt.Sprintf("N%d", row), item.DefectCategory)
		f.SetCellValue(sheet, fmt.Sprintf("O%d", row), item.DefectDescription)
		f.SetCellValue(sheet, fmt.Sprintf("P%d", row), item.Solution)
		f.SetCellValue(sheet, fmt.Sprintf("Q%d", row), item.InspectionHours)
	}

	// 底部汇总行
	summaryRow := len(items) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "汇总")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", summaryRow), fmt.Sprintf("总案件数: %d", len(items)))
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("Q%d", summaryRow), summaryStyle)

	colWidths := []float64{10, 10, 14, 14, 12, 8, 12, 12, 10, 14, 16, 8, 10, 12, 20, 20, 10}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	filename := fmt.Sprintf("qc_cases_%s.xlsx", time.Now().Format("20060102_150405"))
	return f, filename, nil
}
