package dto

type RegisterUserDTO struct {
	Username    string   `json:"username" binding:"required"`
	Password    string   `json:"password" binding:"required,min=8"`
	Phonenumber string   `json:"phonenumber" binding:"required"`
	Country     string   `json:"country"`
	City        string   `json:"city"`
	Roles       []string `json:"roles"`
}

type UpdateUserDTO struct {
	Username    string `json:"username" binding:"required"`
	Active      *bool  `json:"active"`
	Password    string `json:"password"`
	Phonenumber string `json:"phonenumber" binding:"required"`
	Country     string `json:"country" binding:"required"`
	City        string `json:"city" binding:"required"`
}

type DeleteUserDTO struct {
	ID string `json:"id" binding:"required"`
}
