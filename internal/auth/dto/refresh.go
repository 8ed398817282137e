package dto

// TokenResponse is returned by refresh and logout. Logout returns it with
// both fields empty.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
