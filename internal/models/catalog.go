package models

// Category statuses.
const (
	CategoryPublished   = "published"
	CategoryUnpublished = "unpublished"
)

// Category is a storefront product category with an optional icon image.
type Category struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	IconPath  string `json:"icon_path,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Store is an entry in the store directory.
type Store struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	LogoPath string `json:"logo_path,omitempty"`
}

// BlogPost is a storefront blog article.
type BlogPost struct {
	ID        int    `json:"id"`
	Category  string `json:"category"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Content   string `json:"content"`
	ImagePath string `json:"image_path,omitempty"`
	ReadTime  string `json:"read_time,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}
