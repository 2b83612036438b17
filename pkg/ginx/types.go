package ginx

import "github.com/golang-jwt/jwt/v5"

type Result struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

// UserClaims 访问者身份，未登录时 Id 为 0
type UserClaims struct {
	Id        int64
	UserAgent string
	jwt.RegisteredClaims
}
