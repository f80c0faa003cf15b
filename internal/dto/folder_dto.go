package dto

type CreateFolderRequest struct {
	// Length is enforced by the service on the sanitized value, since
	// escaping can expand the text past the raw input's length.
	Name string `json:"name" validate:"required"`
}

type FolderResponse struct {
	Id   uint   `json:"id"`
	Name string `json:"name"`
}

// UpdateFolderRequest carries the mutable subset of a folder. Pointer fields
// distinguish "absent" from "empty"; unrecognized body fields are dropped by
// JSON decoding and never reported.
type UpdateFolderRequest struct {
	Id   uint    `json:"-"`
	Name *string `json:"name"`
}

func (r *UpdateFolderRequest) HasUpdates() bool {
	return r.Name != nil
}
