package services

import (
	"errors"
	"strings"
	"time"

	"github.com/leavedesk/leavedesk/internal/models"
)

var (
	ErrSubmissionInputInvalid = errors.New("submission input invalid")
	ErrSubmissionRangeInvalid = errors.New("submission date range invalid")
	ErrSingleDayOnly          = errors.New("leave type allows a single day only")
)

const submissionDateLayout = "2006-01-02"

type SubmissionInput struct {
	Kind          string
	LeaveTypeID   uint
	PayPeriodID   uint
	StartDate     string
	EndDate       string
	Reason        string
	CoverageName  string
	CoverageEmail string
}

type NormalizedSubmission struct {
	Kind          string
	LeaveTypeID   uint
	PayPeriodID   uint
	StartDate     time.Time
	EndDate       time.Time
	Reason        string
	CoverageName  string
	CoverageEmail string
}

// NormalizeSubmissionInput checks required fields per request kind and
// parses the date range. Leave submissions must name a leave type;
// time-clock and overtime submissions must give a reason.
func NormalizeSubmissionInput(input SubmissionInput) (NormalizedSubmission, error) {
	kind := strings.TrimSpace(input.Kind)
	if kind == "" {
		kind = models.KindLeave
	}
	switch kind {
	case models.KindLeave, models.KindTimeClock, models.KindOvertime:
	default:
		return NormalizedSubmission{}, ErrSubmissionInputInvalid
	}

	normalized := NormalizedSubmission{
		Kind:          kind,
		LeaveTypeID:   input.LeaveTypeID,
		PayPeriodID:   input.PayPeriodID,
		Reason:        strings.TrimSpace(input.Reason),
		CoverageName:  strings.TrimSpace(input.CoverageName),
		CoverageEmail: strings.TrimSpace(input.CoverageEmail),
	}

	if kind == models.KindLeave && input.LeaveTypeID == 0 {
		return NormalizedSubmission{}, ErrSubmissionInputInvalid
	}
	if kind != models.KindLeave && normalized.Reason == "" {
		return NormalizedSubmission{}, ErrSubmissionInputInvalid
	}

	startDate, err := time.Parse(submissionDateLayout, strings.TrimSpace(input.StartDate))
	if err != nil {
		return NormalizedSubmission{}, ErrSubmissionInputInvalid
	}
	endDate, err := time.Parse(submissionDateLayout, strings.TrimSpace(input.EndDate))
	if err != nil {
		return NormalizedSubmission{}, ErrSubmissionInputInvalid
	}
	if endDate.Before(startDate) {
		return NormalizedSubmission{}, ErrSubmissionRangeInvalid
	}

	normalized.StartDate = startDate
	normalized.EndDate = endDate
	return normalized, nil
}
