package navigation

// CheckRequest names the path the SPA is about to enter.
type CheckRequest struct {
	Path string `json:"path" validate:"required"`
}
