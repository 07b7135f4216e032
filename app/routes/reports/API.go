package reports

import (
	"github.com/gofiber/fiber/v2"

	"scholarflow/app/services"
)

// GetReportAPI flattens sessions to one row per (session, record) pair,
// narrowed by optional query filters.
func GetReportAPI(c *fiber.Ctx, svc *services.Service) error {
	filters := services.ReportFilters{
		ClassID:   c.Query("class_id"),
		SubjectID: c.Query("subject_id"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		StudentID: c.Query("student_id"),
	}

	rows, err := svc.GetReportData(filters)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"rows":  rows,
		"count": len(rows),
	})
}
