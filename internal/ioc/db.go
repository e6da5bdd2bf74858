package ioc

import (
	"context"
	"database/sql"
	"time"

	"gitee.com/flycash/p2p-autoreply/internal/pkg/retry"
	"gitee.com/flycash/p2p-autoreply/internal/repository/dao"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"

	// 注册 mysql 驱动，WaitForDBSetup 需要
	_ "github.com/go-sql-driver/mysql"
)

func InitDB() *egorm.Component {
	WaitForDBSetup(econf.GetString("mysql.dsn"))
	db := egorm.Load("mysql").Build()
	if err := dao.InitTables(db); err != nil {
		panic(err)
	}
	return db
}

// WaitForDBSetup 容器部署时 mysql 往往比应用晚就绪
func WaitForDBSetup(dsn string) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		panic(err)
	}
	defer sqlDB.Close()

	cfg := retry.DefaultConfig()
	if econf.Get("mysql.retry") != nil {
		if err = econf.UnmarshalKey("mysql.retry", &cfg); err != nil {
			panic(err)
		}
	}
	strategy, err := retry.NewRetry(cfg)
	if err != nil {
		panic(err)
	}

	const timeout = 5 * time.Second
	for {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err = sqlDB.PingContext(ctx)
		cancel()
		if err == nil {
			return
		}
		next, ok := strategy.Next()
		if !ok {
			panic("WaitForDBSetup 重试失败......")
		}
		elog.DefaultLogger.Warn("等待数据库就绪", elog.FieldErr(err), elog.Duration("next", next))
		time.Sleep(next)
	}
}
