package dao

import (
	"context"
	"gorm.io/gorm"
)

type Category struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	CategoryName string `gorm:"type=varchar(128)"`
	Status       uint8  `gorm:"default=1"`
	Ctime        int64
	Utime        int64
}

type CategoryDAO interface {
	GetById(ctx context.Context, id int64) (Category, error)
}

type GORMCategoryDAO struct {
	db *gorm.DB
}

func NewGORMCategoryDAO(db *gorm.DB) CategoryDAO {
	return &GORMCategoryDAO{
		db: db,
	}
}

func (dao *GORMCategoryDAO) GetById(ctx context.Context, id int64) (Category, error) {
	var c Category
	err := dao.db.WithContext(ctx).
		Where("id = ?", id).
		First(&c).Error
	return c, err
}
