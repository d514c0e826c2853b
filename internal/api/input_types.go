package api

type registerOrgInput struct {
	OrganizationName string `json:"organizationName" validate:"required"`
	AdminName        string `json:"adminName" validate:"required"`
	AdminEmail       string `json:"adminEmail" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=6"`
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

type submissionInput struct {
	Kind          string `json:"kind"`
	LeaveTypeID   uint   `json:"leaveTypeId"`
	PayPeriodID   uint   `json:"payPeriodId"`
	StartDate     string `json:"startDate" validate:"required"`
	EndDate       string `json:"endDate" validate:"required"`
	Reason        string `json:"reason"`
	CoverageName  string `json:"coverageName"`
	CoverageEmail string `json:"coverageEmail" validate:"omitempty,email"`
}

type decisionInput struct {
	AdminNotes string `json:"adminNotes"`
}

type recipientInput struct {
	Email string `json:"email" validate:"required,email"`
}

type recipientToggleInput struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

type profileRoleInput struct {
	Role string `json:"role" validate:"required,oneof=staff admin"`
}

type announcementInput struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Pinned   bool   `json:"pinned"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
}

type announcementUpdateInput struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Pinned   *bool   `json:"pinned"`
	ImageURL *string `json:"imageUrl"`
}

type linkSheetInput struct {
	SpreadsheetID string `json:"spreadsheetId" validate:"required"`
}

type notificationSendInput struct {
	Type           string `json:"type" validate:"required"`
	RequestID      string `json:"requestId"`
	RequesterName  string `json:"requesterName"`
	RequesterEmail string `json:"requesterEmail" validate:"omitempty,email"`
	LeaveType      string `json:"leaveType"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	Reason         string `json:"reason"`
	CoverageName   string `json:"coverageName"`
	AdminNotes     string `json:"adminNotes"`
}
