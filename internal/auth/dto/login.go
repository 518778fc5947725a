package dto

// Scope is the space-joined scope request string; "all" requests everything
// the user currently holds.

type EmailLoginInput struct {
	NameOrEmail string `json:"name_or_email"`
	Password    string `json:"password"`
	Scope       string `json:"scope"`
}

type TelegramLoginInput struct {
	Token string `json:"token"`
	Scope string `json:"scope"`
}

type RefreshInput struct {
	RefreshToken string `json:"refresh_token"`
}
