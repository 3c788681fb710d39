package reivm

type Script struct {
	ID   int64
	Name string
}
