package models

// ImageUpload pairs a presigned upload URL with the public URL the object
// will be served from once uploaded.
type ImageUpload struct {
	UploadURL string
	ImageURL  string
}
