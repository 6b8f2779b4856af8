package dto

type TrackActivityDTO struct {
	Type        string `json:"type" binding:"required"`
	Description string `json:"description" binding:"required"`
	Link        string `json:"link"`
}
