package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Article{},
		&Tag{},
		&ArticleTag{},
		&Category{},
		&User{},
		&UserFoot{},
		&ArticleCount{},
	)
}
