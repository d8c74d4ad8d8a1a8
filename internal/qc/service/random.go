package service

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/leowu0329/qc-cases/internal/qc/entity"
)

// DefaultBulkCount 批量生成默认条数
const DefaultBulkCount = 20

const base36Upper = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func randomStr(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36Upper[rand.Intn(len(base36Upper))]
	}
	return string(b)
}

func randomInt(min, max int) int {
	return min + rand.Intn(max-min+1)
}

func pick(set []string) string {
	return set[rand.Intn(len(set))]
}

// randomCase 生成一条随机案件。演示数据，不保证可复现，不提供种子控制。
func randomCase(now time.Time) entity.InspectionCase {
	// 保留两位小数并保证落在 [0,8) 内
	hours := math.Floor(rand.Float64()*8*100) / 100
	return entity.InspectionCase{
		ID:                newCaseID(),
		InspectionType:    pick(entity.InspectionTypes),
		MarketType:        pick(entity.MarketTypes),
		Customer:          "客戶" + randomStr(2),
		Department:        pick(entity.Departments),
		Date:              now.AddDate(0, 0, -randomInt(0, 30)).Truncate(24 * time.Hour),
		Time:              fmt.Sprintf("%d:%02d", randomInt(8, 18), randomInt(0, 59)),
		WorkOrder:         "WO" + randomStr(4),
		Operator:          "操作員" + randomStr(2),
		DrawingVersion:    fmt.Sprintf("V%d", randomInt(1, 5)),
		ProductNumber:     "PN" + randomStr(4),
		ProductName:       "產品" + randomStr(3),
		Quantity:          randomInt(1, 1000),
		Inspector:         pick(entity.Inspectors),
		DefectCategory:    pick(entity.DefectCategories),
		DefectDescription: randomStr(10),
		Solution:          randomStr(8),
		InspectionHours:   hours,
	}
}

// BulkGenerateRandom 批量生成随机案件，整批插入，返回插入条数
func (s *CaseService) BulkGenerateRandom(ctx context.Context, count int) (int, error) {
	if count <= 0 {
		count = DefaultBulkCount
	}

	now := time.Now()
	records := make([]entity.InspectionCase, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, randomCase(now))
	}

	if err := s.repo.CreateBatch(ctx, records); err != nil {
		return 0, fmt.Errorf("bulk insert cases: %w", err)
	}
	return len(records), nil
}
