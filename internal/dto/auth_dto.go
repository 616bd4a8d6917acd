package dto

// AuthRequest is the credential pair embedded in privileged requests. It is
// used only transiently for validation and never persisted.
type AuthRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=100"`
}
