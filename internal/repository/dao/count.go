package dao

import (
	"context"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"time"
)

// ArticleCount 文章维度的互动计数表
// 查不到记录等价于全零，调用方不要把缺行当错误
type ArticleCount struct {
	Id         int64 `gorm:"primaryKey,autoIncrement"`
	ArticleId  int64 `gorm:"uniqueIndex"`
	ReadCnt    int64
	PraiseCnt  int64
	CommentCnt int64
	CollectCnt int64
	Ctime      int64
	Utime      int64
}

type ArticleCountDAO interface {
	Get(ctx context.Context, articleId int64) (ArticleCount, error)
	GetByIds(ctx context.Context, articleIds []int64) ([]ArticleCount, error)
	IncrReadCnt(ctx context.Context, articleId int64) error
	BatchIncrReadCnt(ctx context.Context, articleIds []int64) error
}

type GORMArticleCountDAO struct {
	db *gorm.DB
}

func NewGORMArticleCountDAO(db *gorm.DB) ArticleCountDAO {
	return &GORMArticleCountDAO{
		db: db,
	}
}

func (dao *GORMArticleCountDAO) Get(ctx context.Context, articleId int64) (ArticleCount, error) {
	var res ArticleCount
	err := dao.db.WithContext(ctx).
		Where("article_id = ?", articleId).
		First(&res).Error
	return res, err
}

func (dao *GORMArticleCountDAO) GetByIds(ctx context.Context, articleIds []int64) ([]ArticleCount, error) {
	if len(articleIds) == 0 {
		return []ArticleCount{}, nil
	}
	var res []ArticleCount
	err := dao.db.WithContext(ctx).
		Where("article_id IN ?", articleIds).
		Find(&res).Error
	return res, err
}

// IncrReadCnt 增加数据库中的阅读计数
// 通过 OnConflict 子句确保在记录冲突时更新，而不是插入新记录
func (dao *GORMArticleCountDAO) IncrReadCnt(ctx context.Context, articleId int64) error {
	now := time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"read_cnt": gorm.Expr("`read_cnt`+1"),
			"utime":    now,
		}),
	}).Create(&ArticleCount{
		ArticleId: articleId,
		ReadCnt:   1,
		Ctime:     now,
		Utime:     now,
	}).Error
}

// BatchIncrReadCnt 批量增加阅读计数，给 Kafka 批量消费用
// 一个事务里逐条 upsert，省掉反复建连的开销
func (dao *GORMArticleCountDAO) BatchIncrReadCnt(ctx context.Context, articleIds []int64) error {
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txDAO := NewGORMArticleCountDAO(tx)
		for _, id := range articleIds {
			err := txDAO.IncrReadCnt(ctx, id)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
