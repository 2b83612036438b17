package dao

import (
	"context"
	"gorm.io/gorm"
)

type Tag struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	TagName string `gorm:"type=varchar(128)"`
	Ctime   int64
	Utime   int64
}

// ArticleTag 文章和标签的关联表
type ArticleTag struct {
	Id        int64 `gorm:"primaryKey,autoIncrement"`
	ArticleId int64 `gorm:"uniqueIndex:aid_tid"`
	TagId     int64 `gorm:"uniqueIndex:aid_tid"`
	Ctime     int64
	Utime     int64
}

// ArticleTagDetail 联表查出来的标签详情
type ArticleTagDetail struct {
	TagId   int64
	TagName string
}

type ArticleTagDAO interface {
	// ListDetailsByArticleId 返回文章的标签详情列表，没有标签返回空切片
	ListDetailsByArticleId(ctx context.Context, articleId int64) ([]ArticleTagDetail, error)
}

type GORMArticleTagDAO struct {
	db *gorm.DB
}

func NewGORMArticleTagDAO(db *gorm.DB) ArticleTagDAO {
	return &GORMArticleTagDAO{
		db: db,
	}
}

func (dao *GORMArticleTagDAO) ListDetailsByArticleId(ctx context.Context, articleId int64) ([]ArticleTagDetail, error) {
	res := make([]ArticleTagDetail, 0, 4)
	err := dao.db.WithContext(ctx).Model(&ArticleTag{}).
		Select("article_tags.tag_id AS tag_id, tags.tag_name AS tag_name").
		Joins("JOIN tags ON tags.id = article_tags.tag_id").
		Where("article_tags.article_id = ?", articleId).
		Scan(&res).Error
	return res, err
}
