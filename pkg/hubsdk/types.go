package hubsdk

// ErrorResponse is the JSON error body returned by the hub.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// HealthChecks reports the state of the hub's critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// PageResponse is the payload behind the hub's public and gated pages. The
// web frontend renders these; the hub itself only decides access and locale.
type PageResponse struct {
	Page    string `json:"page"`
	Locale  string `json:"locale"`
	Title   string `json:"title"`
	Message string `json:"message,omitempty"`
}

// ProfileResponse describes the authenticated user's own account.
type ProfileResponse struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Locale      string `json:"locale"`
	Role        string `json:"role,omitempty"`
	TOTPEnabled bool   `json:"totp_enabled"`
}

// UserSummary is one row of the admin user directory.
type UserSummary struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	Locale      string `json:"locale"`
	CreatedAt   string `json:"created_at"`
}

// UserListResponse is the paginated admin user directory.
type UserListResponse struct {
	Users  []UserSummary `json:"users"`
	Total  int64         `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// TOTPEnrollResponse carries a freshly generated, not yet active TOTP secret.
type TOTPEnrollResponse struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauth_url"`
}

// StatusResponse is a minimal acknowledgement body for mutations that return
// no resource.
type StatusResponse struct {
	Status string `json:"status"`
}
