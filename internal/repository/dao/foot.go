package dao

import (
	"context"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"time"
)

// UserFoot 用户足迹表
// (user_id, document_id, document_type) 构成唯一索引，
// 阅读、点赞、评论、收藏四个状态互相独立，都只在这一行上翻转
type UserFoot struct {
	Id             int64 `gorm:"primaryKey,autoIncrement"`
	UserId         int64 `gorm:"uniqueIndex:uid_did_type"`
	DocumentId     int64 `gorm:"uniqueIndex:uid_did_type"`
	DocumentType   uint8 `gorm:"uniqueIndex:uid_did_type"`
	DocumentUserId int64
	ReadStat       uint8
	PraiseStat     uint8
	CommentStat    uint8
	CollectionStat uint8
	Ctime          int64
	Utime          int64
}

type UserFootDAO interface {
	// SaveOrUpdateRead 记录一次阅读并返回这一行的当前完整状态
	// 重复阅读落在同一行上，属于幂等的 upsert
	SaveOrUpdateRead(ctx context.Context, docType uint8, docId, authorId, uid int64) (UserFoot, error)
	// ListReadDocIds 用户读过的文档 id，按足迹更新时间倒序
	ListReadDocIds(ctx context.Context, docType uint8, uid int64, offset, limit int) ([]int64, error)
	// ListCollectionDocIds 用户收藏的文档 id，按足迹更新时间倒序
	ListCollectionDocIds(ctx context.Context, docType uint8, uid int64, offset, limit int) ([]int64, error)
	// ListPraisedUserIds 点赞过某篇文档的用户 id
	ListPraisedUserIds(ctx context.Context, docType uint8, docId int64) ([]int64, error)
}

type GORMUserFootDAO struct {
	db *gorm.DB
}

func NewGORMUserFootDAO(db *gorm.DB) UserFootDAO {
	return &GORMUserFootDAO{
		db: db,
	}
}

func (dao *GORMUserFootDAO) SaveOrUpdateRead(ctx context.Context, docType uint8, docId, authorId, uid int64) (UserFoot, error) {
	now := time.Now().UnixMilli()
	var res UserFoot
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 记录冲突说明足迹已经存在，只刷新阅读状态和更新时间，
		// 点赞、评论、收藏状态保持原样
		err := tx.Clauses(clause.OnConflict{
			DoUpdates: clause.Assignments(map[string]any{
				"read_stat": 1,
				"utime":     now,
			}),
		}).Create(&UserFoot{
			UserId:         uid,
			DocumentId:     docId,
			DocumentType:   docType,
			DocumentUserId: authorId,
			ReadStat:       1,
			Ctime:          now,
			Utime:          now,
		}).Error
		if err != nil {
			return err
		}
		// 读回当前完整状态，调用方要依赖它判断是否点赞、评论、收藏过
		return tx.Where("user_id = ? AND document_id = ? AND document_type = ?",
			uid, docId, docType).
			First(&res).Error
	})
	return res, err
}

func (dao *GORMUserFootDAO) ListReadDocIds(ctx context.Context, docType uint8, uid int64, offset, limit int) ([]int64, error) {
	res := make([]int64, 0, limit)
	err := dao.db.WithContext(ctx).Model(&UserFoot{}).
		Where("user_id = ? AND document_type = ? AND read_stat = ?", uid, docType, 1).
		Order("utime DESC").
		Offset(offset).Limit(limit).
		Pluck("document_id", &res).Error
	return res, err
}

func (dao *GORMUserFootDAO) ListCollectionDocIds(ctx context.Context, docType uint8, uid int64, offset, limit int) ([]int64, error) {
	res := make([]int64, 0, limit)
	err := dao.db.WithContext(ctx).Model(&UserFoot{}).
		Where("user_id = ? AND document_type = ? AND collection_stat = ?", uid, docType, 1).
		Order("utime DESC").
		Offset(offset).Limit(limit).
		Pluck("document_id", &res).Error
	return res, err
}

func (dao *GORMUserFootDAO) ListPraisedUserIds(ctx context.Context, docType uint8, docId int64) ([]int64, error) {
	res := make([]int64, 0, 8)
	err := dao.db.WithContext(ctx).Model(&UserFoot{}).
		Where("document_id = ? AND document_type = ? AND praise_stat = ?", docId, docType, 1).
		Order("utime DESC").
		Pluck("user_id", &res).Error
	return res, err
}
