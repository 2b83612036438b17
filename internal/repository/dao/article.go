package dao

import (
	"context"
	"gorm.io/gorm"
)

type Article struct {
	Id int64 `gorm:"primaryKey,autoIncrement"`
	// 标题的长度
	// 正常都不会超过这个长度
	Title   string `gorm:"type=varchar(4096)"`
	Content string `gorm:"type=BLOB"`
	// 作者
	AuthorId   int64 `gorm:"index"`
	CategoryId int64 `gorm:"index"`
	Status     uint8 `gorm:"default=1"`
	// 原始阅读计数，详情页访问一次 +1，热门列表按它排序
	ReadCnt int64
	Ctime   int64
	Utime   int64
}

// 列表查询只认已发表的文章
const statusPublished uint8 = 2

type ArticleDAO interface {
	GetById(ctx context.Context, id int64) (Article, error)
	ListByCategory(ctx context.Context, categoryId int64, offset, limit int) ([]Article, error)
	ListBySearchKey(ctx context.Context, key string, offset, limit int) ([]Article, error)
	ListByAuthor(ctx context.Context, authorId int64, offset, limit int) ([]Article, error)
	ListByIds(ctx context.Context, ids []int64) ([]Article, error)
	// ListHot 按阅读计数倒序的热门文章
	ListHot(ctx context.Context, offset, limit int) ([]Article, error)
	List(ctx context.Context, offset, limit int) ([]Article, error)
	CountByAuthor(ctx context.Context, authorId int64) (int64, error)
	// IncrReadCnt 阅读计数 +1，不去重，匿名访问也算
	IncrReadCnt(ctx context.Context, id int64) error
}

type GORMArticleDAO struct {
	db *gorm.DB
}

func NewGORMArticleDAO(db *gorm.DB) ArticleDAO {
	return &GORMArticleDAO{
		db: db,
	}
}

func (dao *GORMArticleDAO) GetById(ctx context.Context, id int64) (Article, error) {
	var art Article
	err := dao.db.WithContext(ctx).
		Where("id = ?", id).
		First(&art).Error
	return art, err
}

func (dao *GORMArticleDAO) ListByCategory(ctx context.Context, categoryId int64, offset, limit int) ([]Article, error) {
	var arts []Article
	err := dao.db.WithContext(ctx).
		Where("category_id = ? AND status = ?", categoryId, statusPublished).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&arts).Error
	return arts, err
}

func (dao *GORMArticleDAO) ListBySearchKey(ctx context.Context, key string, offset, limit int) ([]Article, error) {
	var arts []Article
	err := dao.db.WithContext(ctx).
		Where("title LIKE ? AND status = ?", "%"+key+"%", statusPublished).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&arts).Error
	return arts, err
}

func (dao *GORMArticleDAO) ListByAuthor(ctx context.Context, authorId int64, offset, limit int) ([]Article, error) {
	var arts []Article
	err := dao.db.WithContext(ctx).
		Where("author_id = ?", authorId).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&arts).Error
	return arts, err
}

// ListByIds 按 id 集合批量查询
// 注意 IN 查询不保证返回顺序和入参顺序一致，调用方自己处理排序
func (dao *GORMArticleDAO) ListByIds(ctx context.Context, ids []int64) ([]Article, error) {
	var arts []Article
	err := dao.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&arts).Error
	return arts, err
}

func (dao *GORMArticleDAO) ListHot(ctx context.Context, offset, limit int) ([]Article, error) {
	var arts []Article
	err := dao.db.WithContext(ctx).
		Where("status = ?", statusPublished).
		Order("read_cnt DESC").
		Offset(offset).Limit(limit).
		Find(&arts).Error
	return arts, err
}

func (dao *GORMArticleDAO) List(ctx context.Context, offset, limit int) ([]Article, error) {
	var arts []Article
	err := dao.db.WithContext(ctx).
		Where("status = ?", statusPublished).
		Order("utime DESC").
		Offset(offset).Limit(limit).
		Find(&arts).Error
	return arts, err
}

func (dao *GORMArticleDAO) CountByAuthor(ctx context.Context, authorId int64) (int64, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&Article{}).
		Where("author_id = ?", authorId).
		Count(&cnt).Error
	return cnt, err
}

func (dao *GORMArticleDAO) IncrReadCnt(ctx context.Context, id int64) error {
	return dao.db.WithContext(ctx).Model(&Article{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"read_cnt": gorm.Expr("`read_cnt`+1"),
		}).Error
}
