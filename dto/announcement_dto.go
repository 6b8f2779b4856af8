package dto

type CreateAnnouncementDTO struct {
	Text string `json:"text" binding:"required"`
}
