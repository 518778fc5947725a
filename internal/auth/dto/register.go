package dto

type EmailRegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TelegramRegisterInput struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}
