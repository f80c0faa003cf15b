package entity

type Folder struct {
	Id   uint
	Name string
}
