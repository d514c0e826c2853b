package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/leavedesk/leavedesk/internal/models"
)

func (handler *Handler) ListAnnouncements(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if profile.OrganizationID == nil {
		return apiError(c, fiber.StatusForbidden, "profile is not assigned to an organization")
	}

	announcements, err := handler.repos.Announcements.ListByOrganization(*profile.OrganizationID)
	if err != nil {
		return handler.internalError(c, err, "list announcements failed")
	}
	return c.JSON(fiber.Map{"announcements": newAnnouncementViews(announcements)})
}

func (handler *Handler) CreateAnnouncement(c *fiber.Ctx) error {
	input := announcementInput{}
	if message := handler.decodeBody(c, &input); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	now := time.Now()
	announcement := models.Announcement{
		OrganizationID: currentOrgID(c),
		Title:          input.Title,
		Content:        input.Content,
		Pinned:         input.Pinned,
		ImageURL:       input.ImageURL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := handler.repos.Announcements.Create(&announcement); err != nil {
		return handler.internalError(c, err, "create announcement failed")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"announcement": announcementView{
			ID:        announcement.ID,
			Title:     announcement.Title,
			Content:   announcement.Content,
			Pinned:    announcement.Pinned,
			ImageURL:  announcement.ImageURL,
			CreatedAt: announcement.CreatedAt.Format(time.RFC3339),
		},
	})
}

func (handler *Handler) UpdateAnnouncement(c *fiber.Ctx) error {
	announcementID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid announcement id")
	}

	input := announcementUpdateInput{}
	if message := handler.decodeBody(c, &input); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	updates := map[string]any{"updated_at": time.Now()}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	if input.Pinned != nil {
		updates["pinned"] = *input.Pinned
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}

	updated, err := handler.repos.Announcements.Update(uint(announcementID), currentOrgID(c), updates)
	if err != nil {
		return handler.internalError(c, err, "update announcement failed")
	}
	if !updated {
		return apiError(c, fiber.StatusNotFound, "announcement not found")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (handler *Handler) DeleteAnnouncement(c *fiber.Ctx) error {
	announcementID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid announcement id")
	}

	deleted, err := handler.repos.Announcements.Delete(uint(announcementID), currentOrgID(c))
	if err != nil {
		return handler.internalError(c, err, "delete announcement failed")
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "announcement not found")
	}
	return c.JSON(fiber.Map{"success": true})
}
