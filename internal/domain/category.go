package domain

type Category struct {
	Id   int64
	Name string
}
