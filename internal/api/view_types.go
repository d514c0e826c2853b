package api

import (
	"time"

	"github.com/leavedesk/leavedesk/internal/models"
)

const viewDateLayout = "2006-01-02"

type organizationView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	SpreadsheetID string `json:"spreadsheetId,omitempty"`
}

type profileView struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FullName       string `json:"fullName"`
	Role           string `json:"role"`
	OrganizationID string `json:"organizationId,omitempty"`
	AvatarURL      string `json:"avatarUrl,omitempty"`
}

type leaveRequestView struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Kind        string `json:"kind"`
	LeaveTypeID *uint  `json:"leaveTypeId,omitempty"`
	PayPeriodID *uint  `json:"payPeriodId,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Reason      string `json:"reason,omitempty"`
	Coverage    string `json:"coverageName,omitempty"`
	Status      string `json:"status"`
	ReviewedBy  string `json:"reviewedBy,omitempty"`
	ReviewedAt  string `json:"reviewedAt,omitempty"`
	AdminNotes  string `json:"adminNotes,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

type recipientView struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"isActive"`
}

type announcementView struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Pinned    bool   `json:"pinned"`
	ImageURL  string `json:"imageUrl,omitempty"`
	CreatedAt string `json:"createdAt"`
}

func newOrganizationView(organization models.Organization) organizationView {
	return organizationView{
		ID:            organization.ID,
		Name:          organization.Name,
		Slug:          organization.Slug,
		SpreadsheetID: organization.SpreadsheetID,
	}
}

func newProfileView(profile models.Profile) profileView {
	return profileView{
		ID:             profile.ID,
		Email:          profile.Email,
		FullName:       profile.FullName,
		Role:           profile.Role,
		OrganizationID: profile.OrgID(),
		AvatarURL:      profile.AvatarURL,
	}
}

func newLeaveRequestView(request models.LeaveRequest) leaveRequestView {
	view := leaveRequestView{
		ID:          request.ID,
		UserID:      request.UserID,
		Kind:        request.Kind,
		LeaveTypeID: request.LeaveTypeID,
		PayPeriodID: request.PayPeriodID,
		StartDate:   request.StartDate.Format(viewDateLayout),
		EndDate:     request.EndDate.Format(viewDateLayout),
		Reason:      request.Reason,
		Coverage:    request.CoverageName,
		Status:      request.Status,
		AdminNotes:  request.AdminNotes,
		CreatedAt:   request.CreatedAt.Format(time.RFC3339),
	}
	if request.ReviewedBy != nil {
		view.ReviewedBy = *request.ReviewedBy
	}
	if request.ReviewedAt != nil {
		view.ReviewedAt = request.ReviewedAt.Format(time.RFC3339)
	}
	return view
}

func newLeaveRequestViews(requests []models.LeaveRequest) []leaveRequestView {
	views := make([]leaveRequestView, 0, len(requests))
	for _, request := range requests {
		views = append(views, newLeaveRequestView(request))
	}
	return views
}

func newRecipientViews(recipients []models.NotificationRecipient) []recipientView {
	views := make([]recipientView, 0, len(recipients))
	for _, recipient := range recipients {
		views = append(views, recipientView{
			ID:       recipient.ID,
			Email:    recipient.Email,
			IsActive: recipient.IsActive,
		})
	}
	return views
}

func newAnnouncementViews(announcements []models.Announcement) []announcementView {
	views := make([]announcementView, 0, len(announcements))
	for _, announcement := range announcements {
		views = append(views, announcementView{
			ID:        announcement.ID,
			Title:     announcement.Title,
			Content:   announcement.Content,
			Pinned:    announcement.Pinned,
			ImageURL:  announcement.ImageURL,
			CreatedAt: announcement.CreatedAt.Format(time.RFC3339),
		})
	}
	return views
}
