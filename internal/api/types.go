package api

import "time"

// Entry mirrors the backend file/folder record. Files and folders come from
// separate endpoints; the struct is shared because the backend shapes them
// identically apart from Size/MimeType.
type Entry struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Size            int64      `json:"size,omitempty"`
	MimeType        string     `json:"mimeType,omitempty"`
	ParentID        *string    `json:"parentId,omitempty"`
	DeletedAt       *time.Time `json:"deletedAt,omitempty"`
	SharePermission string     `json:"sharePermission,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// InTrash reports whether the entry is soft-deleted.
func (e Entry) InTrash() bool {
	return e.DeletedAt != nil
}

// User mirrors the backend User model.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Pagination is the cursor block attached to paginated listings.
type Pagination struct {
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	HasMore bool  `json:"hasMore"`
}

// SharedFile is returned by the public share-token endpoint: the file
// metadata plus a signed URL for direct download/preview.
type SharedFile struct {
	File        Entry  `json:"file"`
	DownloadURL string `json:"downloadUrl"`
	Permission  string `json:"permission"`
}

// LoginResponse is returned by POST /auth/login and /auth/register.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
