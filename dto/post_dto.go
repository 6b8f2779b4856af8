package dto

type CreatePostDTO struct {
	Title string `json:"title" binding:"required"`
}

type UpdatePostDTO struct {
	Title string `json:"title" binding:"required"`
}

type AddCommentDTO struct {
	Text string `json:"text" binding:"required"`
}
