package models

type BlogPost struct {
	ID          int64
	Title       string
	Description string
	ImageURL    *string
	UserID      int64
}
