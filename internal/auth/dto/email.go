package dto

type EmailAddressInput struct {
	Email string `json:"email"`
}

type EmailTokenInput struct {
	Token string `json:"token"`
}

type PasswordUpdateInput struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}
