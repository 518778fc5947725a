package dto

type EmailAttachInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TelegramAttachInput struct {
	Token string `json:"token"`
}
