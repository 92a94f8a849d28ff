package dto

// ConnectAccountRequest carries the credentials of a freshly authorized
// mailbox. The OAuth consent flow itself happens on the client; the backend
// only stores the resulting grant.
type ConnectAccountRequest struct {
	Provider     string `json:"provider" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	AccessToken  string `json:"access_token" binding:"required"`
	RefreshToken string `json:"refresh_token" binding:"required"`
	ExpiresIn    int64  `json:"expires_in" binding:"required"` // seconds
}
