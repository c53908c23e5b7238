package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"Glimpse/internal/api/dto"
	"Glimpse/internal/model"
)

func TestUploadStory_RequiresImage(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.gdb, "alice")

	_, err := env.storySvc.UploadStory(context.Background(), owner.ID, &dto.StoryCreateDTO{ImageBase64: "  "})
	if !errors.Is(err, ErrStoryImageRequired) {
		t.Fatalf("期望 ErrStoryImageRequired, 实际为 %v", err)
	}

	story, err := env.storySvc.UploadStory(context.Background(), owner.ID, &dto.StoryCreateDTO{
		ImageBase64: "aW1n",
		Caption:     strPtr("morning"),
	})
	if err != nil {
		t.Fatalf("UploadStory failed: %v", err)
	}
	if story.Username != "alice" || story.Viewed {
		t.Fatalf("新快拍应带作者信息且未看过, 实际为 %+v", story)
	}
}

// 测试内容：可见列表只包含 24 小时内的快拍，按创建时间倒序。
func TestListVisibleStories_ExcludesExpired(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.gdb, "alice")
	viewer := seedUser(t, env.gdb, "bob")

	seedStory(t, env.gdb, owner.ID, time.Now().Add(-25*time.Hour))
	older := seedStory(t, env.gdb, owner.ID, time.Now().Add(-2*time.Hour))
	newer := seedStory(t, env.gdb, owner.ID, time.Now().Add(-1*time.Hour))

	stories, err := env.storySvc.ListVisibleStories(context.Background(), viewer.ID)
	if err != nil {
		t.Fatalf("ListVisibleStories failed: %v", err)
	}
	if len(stories) != 2 {
		t.Fatalf("期望 2 条可见快拍, 实际为 %d", len(stories))
	}
	if stories[0].ID != newer.ID || stories[1].ID != older.ID {
		t.Fatalf("快拍应按创建时间倒序, 实际为 [%d %d]", stories[0].ID, stories[1].ID)
	}
}

// 测试内容：重复标记已看不报错，且浏览记录只有一行。
func TestMarkViewed_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.gdb, "alice")
	viewer := seedUser(t, env.gdb, "bob")
	story := seedStory(t, env.gdb, owner.ID, time.Now())

	for i := 0; i < 3; i++ {
		if err := env.storySvc.MarkViewed(context.Background(), viewer.ID, story.ID); err != nil {
			t.Fatalf("第 %d 次 MarkViewed failed: %v", i+1, err)
		}
	}

	var count int64
	if err := env.gdb.Model(&model.StoryView{}).
		Where("user_id = ? AND story_id = ?", viewer.ID, story.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("count story views failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("期望 1 条浏览记录, 实际为 %d", count)
	}

	stories, err := env.storySvc.ListVisibleStories(context.Background(), viewer.ID)
	if err != nil {
		t.Fatalf("ListVisibleStories failed: %v", err)
	}
	if len(stories) != 1 || !stories[0].Viewed {
		t.Fatalf("标记后快拍应显示已看过, 实际为 %+v", stories)
	}
}

func TestMarkViewed_MissingStory(t *testing.T) {
	env := newTestEnv(t)
	viewer := seedUser(t, env.gdb, "bob")

	err := env.storySvc.MarkViewed(context.Background(), viewer.ID, 9999)
	if !errors.Is(err, ErrStoryNotFound) {
		t.Fatalf("期望 ErrStoryNotFound, 实际为 %v", err)
	}
}

// 测试内容：清理任务删除到期快拍及其浏览记录，未到期的不受影响。
func TestCleanupExpired(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.gdb, "alice")
	viewer := seedUser(t, env.gdb, "bob")

	expired1 := seedStory(t, env.gdb, owner.ID, time.Now().Add(-30*time.Hour))
	expired2 := seedStory(t, env.gdb, owner.ID, time.Now().Add(-25*time.Hour))
	fresh := seedStory(t, env.gdb, owner.ID, time.Now().Add(-1*time.Hour))

	for _, storyID := range []uint64{expired1.ID, fresh.ID} {
		if err := env.storySvc.MarkViewed(context.Background(), viewer.ID, storyID); err != nil {
			t.Fatalf("MarkViewed failed: %v", err)
		}
	}

	deleted, err := env.storySvc.CleanupExpired(context.Background())
	if err != nil {
		t.Fatalf("CleanupExpired failed: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("期望删除 2 条快拍, 实际为 %d", deleted)
	}

	var storyCount, viewCount int64
	env.gdb.Model(&model.Story{}).Count(&storyCount)
	env.gdb.Model(&model.StoryView{}).Count(&viewCount)
	if storyCount != 1 {
		t.Fatalf("清理后应剩 1 条快拍, 实际为 %d", storyCount)
	}
	if viewCount != 1 {
		t.Fatalf("到期快拍的浏览记录应一并删除, 实际剩 %d 条", viewCount)
	}

	if _, err = env.storySvc.CleanupExpired(context.Background()); err != nil {
		t.Fatalf("再次清理不应失败: %v", err)
	}

	err = env.storySvc.MarkViewed(context.Background(), viewer.ID, expired2.ID)
	if !errors.Is(err, ErrStoryNotFound) {
		t.Fatalf("已删除的快拍应返回 ErrStoryNotFound, 实际为 %v", err)
	}
}

// 测试内容：按作者聚合快拍，任一条未看即标记 has_unseen。
func TestListStoryGroups_HasUnseen(t *testing.T) {
	env := newTestEnv(t)
	alice := seedUser(t, env.gdb, "alice")
	carol := seedUser(t, env.gdb, "carol")
	viewer := seedUser(t, env.gdb, "bob")

	aliceSeen := seedStory(t, env.gdb, alice.ID, time.Now().Add(-3*time.Hour))
	seedStory(t, env.gdb, alice.ID, time.Now().Add(-2*time.Hour))
	carolSeen := seedStory(t, env.gdb, carol.ID, time.Now().Add(-1*time.Hour))

	for _, storyID := range []uint64{aliceSeen.ID, carolSeen.ID} {
		if err := env.storySvc.MarkViewed(context.Background(), viewer.ID, storyID); err != nil {
			t.Fatalf("MarkViewed failed: %v", err)
		}
	}

	groups, err := env.storySvc.ListStoryGroups(context.Background(), viewer.ID)
	if err != nil {
		t.Fatalf("ListStoryGroups failed: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("期望 2 个作者分组, 实际为 %d", len(groups))
	}

	byUser := make(map[string]*dto.StoryGroupDTO)
	for _, group := range groups {
		byUser[group.Username] = group
	}
	if g := byUser["alice"]; g == nil || !g.HasUnseen || len(g.Stories) != 2 {
		t.Fatalf("alice 组应有 2 条快拍且 has_unseen=true, 实际为 %+v", g)
	}
	if g := byUser["carol"]; g == nil || g.HasUnseen || len(g.Stories) != 1 {
		t.Fatalf("carol 组应全部已看, 实际为 %+v", g)
	}
}
