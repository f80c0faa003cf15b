package dto

type CreateNoteRequest struct {
	FolderId uint   `json:"folder_id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

type NoteResponse struct {
	Id           uint   `json:"id"`
	FolderId     uint   `json:"folder_id"`
	Name         string `json:"name"`
	Content      string `json:"content"`
	TimeModified int64  `json:"time_modified"`
}

type UpdateNoteRequest struct {
	Id       uint    `json:"-"`
	FolderId *uint   `json:"folder_id"`
	Name     *string `json:"name"`
	Content  *string `json:"content"`
}

func (r *UpdateNoteRequest) HasUpdates() bool {
	return r.FolderId != nil || r.Name != nil || r.Content != nil
}
