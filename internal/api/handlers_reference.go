package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListLeaveTypes(c *fiber.Ctx) error {
	leaveTypes, err := handler.repos.Reference.ListLeaveTypes()
	if err != nil {
		return handler.internalError(c, err, "list leave types failed")
	}

	views := make([]fiber.Map, 0, len(leaveTypes))
	for _, leaveType := range leaveTypes {
		views = append(views, fiber.Map{
			"id":            leaveType.ID,
			"name":          leaveType.Name,
			"color":         leaveType.Color,
			"singleDayOnly": leaveType.SingleDayOnly,
		})
	}
	return c.JSON(fiber.Map{"leaveTypes": views})
}

func (handler *Handler) ListPayPeriods(c *fiber.Ctx) error {
	taxYear := 0
	if raw := c.Query("taxYear"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid tax year")
		}
		taxYear = parsed
	}

	payPeriods, err := handler.repos.Reference.ListPayPeriods(taxYear)
	if err != nil {
		return handler.internalError(c, err, "list pay periods failed")
	}

	views := make([]fiber.Map, 0, len(payPeriods))
	for _, payPeriod := range payPeriods {
		views = append(views, fiber.Map{
			"id":           payPeriod.ID,
			"periodNumber": payPeriod.PeriodNumber,
			"startDate":    payPeriod.StartDate.Format(viewDateLayout),
			"endDate":      payPeriod.EndDate.Format(viewDateLayout),
			"taxYear":      payPeriod.TaxYear,
		})
	}
	return c.JSON(fiber.Map{"payPeriods": views})
}
