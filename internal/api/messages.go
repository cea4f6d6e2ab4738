package api

import "time"

type Empty struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type SignUpRequest struct {
	Email       string `json:"email"`
	Password    []byte `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password []byte `json:"password"`
}

type RefreshSessionRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Session is returned by every call that opens or renews a session.
type Session struct {
	AccessToken      string    `json:"access_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
	User             User      `json:"user"`
}

// UpdateUserRequest changes the caller's account. A nil Email and an empty
// Password leave the respective value untouched.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty"`
	Password []byte  `json:"password,omitempty"`
}

type DocumentFields struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	Keywords    []string `json:"keywords"`
	FileURL     string   `json:"file_url"`
}

type Document struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	DocumentFields
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DocumentList struct {
	Documents []Document `json:"documents"`
}

type GetDocumentRequest struct {
	ID string `json:"id"`
}

type SearchDocumentsRequest struct {
	Query string `json:"query"`
}

type InsertDocumentRequest struct {
	Fields DocumentFields `json:"fields"`
}

type UpdateDocumentRequest struct {
	ID      string         `json:"id"`
	OwnerID string         `json:"owner_id"`
	Fields  DocumentFields `json:"fields"`
}

type DeleteDocumentRequest struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
}

type CountDocumentsRequest struct {
	OwnerID string `json:"owner_id"`
}

type CountDocumentsResponse struct {
	Count int64 `json:"count"`
}

type UploadObjectRequest struct {
	Path        string `json:"path"`
	ContentType string `json:"content_type"`
	Overwrite   bool   `json:"overwrite"`
}

// UploadObjectResponse carries the presigned URL the client PUTs the bytes to.
type UploadObjectResponse struct {
	Path      string    `json:"path"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ObjectRequest struct {
	Path string `json:"path"`
}

type PublicURLResponse struct {
	URL string `json:"url"`
}
