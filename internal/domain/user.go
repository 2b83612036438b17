package domain

type User struct {
	Id       int64
	NickName string
	Avatar   string
}

// SimpleUser 对外展示用的用户信息，作者、点赞列表都用它
type SimpleUser struct {
	Id     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}
