package services

import (
	"bytes"
	"fmt"
	"html/template"
)

var emailTemplates = template.Must(template.New("emails").Parse(`
{{define "submission"}}
<h2>{{.Heading}}</h2>
<p><strong>{{.Event.RequesterName}}</strong> ({{.Event.RequesterEmail}}) submitted a request.</p>
<table border="0" cellpadding="4">
  {{if .Event.LeaveTypeName}}<tr><td>Type</td><td>{{.Event.LeaveTypeName}}</td></tr>{{end}}
  <tr><td>From</td><td>{{.Event.StartDate}}</td></tr>
  <tr><td>To</td><td>{{.Event.EndDate}}</td></tr>
  {{if .Event.Reason}}<tr><td>Reason</td><td>{{.Event.Reason}}</td></tr>{{end}}
  {{if .Event.CoverageName}}<tr><td>Coverage</td><td>{{.Event.CoverageName}}</td></tr>{{end}}
</table>
<p>Sign in to the portal to review it.</p>
{{end}}

{{define "decision"}}
<h2>{{.Heading}}</h2>
<p>Hi {{.Event.RequesterName}},</p>
<p>Your request for {{with .Event.LeaveTypeName}}{{.}}{{else}}time off{{end}}
from {{.Event.StartDate}} to {{.Event.EndDate}} has been <strong>{{.Verdict}}</strong>.</p>
{{if .Event.AdminNotes}}<p>Note from your administrator: {{.Event.AdminNotes}}</p>{{end}}
{{end}}
`))

type emailTemplateData struct {
	Heading string
	Verdict string
	Event   NotificationEvent
}

func renderEmail(event NotificationEvent) (string, string, error) {
	var subject, templateName string
	data := emailTemplateData{Event: event}

	switch event.Type {
	case EventNewRequest, EventVacationRequest:
		subject = fmt.Sprintf("New time-off request from %s", event.RequesterName)
		data.Heading = "New Time-Off Request"
		templateName = "submission"
	case EventTimeClockRequest:
		subject = fmt.Sprintf("New time-clock request from %s", event.RequesterName)
		data.Heading = "New Time Clock Request"
		templateName = "submission"
	case EventOvertimeRequest:
		subject = fmt.Sprintf("New overtime request from %s", event.RequesterName)
		data.Heading = "New Overtime Request"
		templateName = "submission"
	case EventApproved:
		subject = "Your time-off request was approved"
		data.Heading = "Request Approved"
		data.Verdict = "approved"
		templateName = "decision"
	case EventDenied:
		subject = "Your time-off request was denied"
		data.Heading = "Request Denied"
		data.Verdict = "denied"
		templateName = "decision"
	default:
		return "", "", ErrUnknownEventType
	}

	var body bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&body, templateName, data); err != nil {
		return "", "", err
	}
	return subject, body.String(), nil
}
