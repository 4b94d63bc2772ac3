package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/raushankrgupta/ayush-ai/models"
	"github.com/raushankrgupta/ayush-ai/wellness"
	"github.com/xuri/excelize/v2"
)

// Sheet names
const (
	ActivitySheet = "Activity"
	SummarySheet  = "Summary"
)

// ActivityWorkbook exports tracked days with a summary sheet holding the
// current streak.
func ActivityWorkbook(activities []models.Activity) ([]byte, string, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ActivitySheet); err != nil {
		return nil, "", "", err
	}

	headers := []string{"Date", "Consistency Score", "Tasks Completed", "Tasks Total", "Water Intake (L)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(ActivitySheet, cell, h)
	}

	for r, a := range activities {
		completed := 0
		for _, t := range a.Tasks {
			if t.Completed {
				completed++
			}
		}
		values := []interface{}{a.Date, a.ConsistencyScore, completed, len(a.Tasks), a.WaterIntake}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(ActivitySheet, cell, v)
		}
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return nil, "", "", err
	}
	f.SetCellValue(SummarySheet, "A1", "Days tracked")
	f.SetCellValue(SummarySheet, "B1", len(activities))
	f.SetCellValue(SummarySheet, "A2", "Current streak")
	f.SetCellValue(SummarySheet, "B2", wellness.Streak(models.DailyLogs(activities)))

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", "", fmt.Errorf("failed to write workbook: %w", err)
	}

	filename := fmt.Sprintf("ayush_activity_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, ContentTypeXLSX, nil
}
