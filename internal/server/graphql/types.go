package graphql

import "github.com/dmitrijs2005/blogql/internal/server/models"

type userResolver struct {
	user *models.User
}

func (r *userResolver) ID() int32 {
	return int32(r.user.ID)
}

func (r *userResolver) Email() string {
	return r.user.Email
}

type blogPostResolver struct {
	post *models.BlogPost
}

func (r *blogPostResolver) ID() int32 {
	return int32(r.post.ID)
}

func (r *blogPostResolver) Title() string {
	return r.post.Title
}

func (r *blogPostResolver) Description() string {
	return r.post.Description
}

func (r *blogPostResolver) ImageURL() *string {
	return r.post.ImageURL
}

func (r *blogPostResolver) UserID() int32 {
	return int32(r.post.UserID)
}

type imageUploadResolver struct {
	upload *models.ImageUpload
}

func (r *imageUploadResolver) UploadURL() string {
	return r.upload.UploadURL
}

func (r *imageUploadResolver) ImageURL() string {
	return r.upload.ImageURL
}
