package model

type Folder struct {
	// Postgres backs this with a sequence, so an id is never handed out twice
	// even after its row is deleted. The sqlite backend used in tests can
	// reuse the highest rowid after a delete, so id-reuse guarantees only
	// hold against postgres.
	Id   uint   `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(50);not null"`
}

func (Folder) TableName() string {
	return "folders"
}
