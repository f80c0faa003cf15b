package specification

import "gorm.io/gorm"

type ByFolderID struct {
	FolderID uint
}

func (s ByFolderID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("folder_id = ?", s.FolderID)
}
