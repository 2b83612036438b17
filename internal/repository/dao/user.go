package dao

import (
	"context"
	"gorm.io/gorm"
)

var (
	// ErrDataNotFound 通用的数据没找到错误（即Gorm的记录未找到）
	ErrDataNotFound = gorm.ErrRecordNotFound
)

type User struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	NickName string `gorm:"type=varchar(128)"`
	Avatar   string `gorm:"type=varchar(1024)"`
	Ctime    int64
	Utime    int64
}

type UserDAO interface {
	FindById(ctx context.Context, id int64) (User, error)
	FindByIds(ctx context.Context, ids []int64) ([]User, error)
}

type GormUserDAO struct {
	db *gorm.DB
}

func NewGormUserDAO(db *gorm.DB) UserDAO {
	return &GormUserDAO{
		db: db,
	}
}

func (dao *GormUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := dao.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error
	return u, err
}

// FindByIds 批量查询，查不到的 id 直接缺席，不报错
func (dao *GormUserDAO) FindByIds(ctx context.Context, ids []int64) ([]User, error) {
	if len(ids) == 0 {
		return []User{}, nil
	}
	var us []User
	err := dao.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&us).Error
	return us, err
}
