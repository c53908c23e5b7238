package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"Glimpse/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

// SetupDB 建立一个独立的内存 SQLite 库并完成建表。
// cache=shared 配合单连接保证同一测试内的会话看到同一份数据。
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:glimpse_%d?mode=memory&cache=shared", seq)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := gdb.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Like{},
		&model.Comment{},
		&model.Hashtag{},
		&model.PostHashtag{},
		&model.Story{},
		&model.StoryView{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return gdb
}
