package entity

type Note struct {
	Id           uint
	FolderId     uint
	Name         string
	Content      string
	TimeModified int64 // epoch milliseconds, refreshed on every write
}
