package dto

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Mno          int    `json:"mno"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}
