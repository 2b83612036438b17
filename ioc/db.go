package ioc

import (
	"fmt"
	"github.com/cnmd-sb-git/paicoding/internal/repository/dao"
	prometheus2 "github.com/cnmd-sb-git/paicoding/pkg/gormx/callbacks/prometheus"
	"github.com/cnmd-sb-git/paicoding/pkg/logger"
	"github.com/spf13/viper"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
	"gorm.io/plugin/prometheus"
)

func InitDB(l logger.Logger) *gorm.DB {
	type Config struct {
		DSN string `yaml:"dsn"`
	}
	c := Config{
		DSN: "root:root@tcp(localhost:3306)/forum",
	}
	err := viper.UnmarshalKey("db", &c)
	if err != nil {
		panic(fmt.Errorf("初始化配置失败 %v, 原因 %w", c, err))
	}

	db, err := gorm.Open(mysql.Open(c.DSN), &gorm.Config{
		Logger: glogger.New(gormLoggerFunc(l.Debug),
			glogger.Config{
				SlowThreshold: 0,
				LogLevel:      glogger.Info,
			}),
	})
	if err != nil {
		panic(err)
	}

	// 连接池状态指标
	err = db.Use(prometheus.New(prometheus.Config{
		DBName:          "forum",
		RefreshInterval: 15,
		MetricsCollector: []prometheus.MetricsCollector{
			&prometheus.MySQL{
				VariableNames: []string{"threads_running"},
			},
		},
	}))
	if err != nil {
		panic(err)
	}

	// 每类 SQL 的响应时间
	cb := &prometheus2.Callbacks{
		Namespace:  "forum_server",
		Subsystem:  "forum",
		Name:       "gorm_db",
		InstanceID: "my-instance-1",
		Help:       "GORM 数据库查询",
	}
	err = cb.Register(db)
	if err != nil {
		panic(err)
	}

	err = dao.InitTables(db)
	if err != nil {
		panic(err)
	}

	return db
}

type gormLoggerFunc func(msg string, fields ...logger.Field)

func (g gormLoggerFunc) Printf(msg string, args ...interface{}) {
	g(msg, logger.Field{Key: "args", Value: args})
}
