package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sheetAppendsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leavedesk_sheet_appends_total",
		Help: "Spreadsheet append attempts by outcome.",
	}, []string{"outcome"})

	emailsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leavedesk_notification_emails_total",
		Help: "Notification emails by outcome.",
	}, []string{"outcome"})
)
