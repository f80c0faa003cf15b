package model

type Note struct {
	Id           uint   `gorm:"primaryKey;autoIncrement"`
	FolderId     uint   `gorm:"not null;index"`
	Name         string `gorm:"type:varchar(50);not null"`
	Content      string `gorm:"type:text;not null"`
	TimeModified int64  `gorm:"not null;autoCreateTime:milli"`

	// Cascade lives in the schema so folder deletion takes its notes down
	// in the same statement.
	Folder Folder `gorm:"foreignKey:FolderId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Note) TableName() string {
	return "notes"
}
