package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"Glimpse/internal/api/dto"
	"Glimpse/internal/model"
)

func TestCreatePost_ContentLimit(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.gdb, "alice")

	post, err := env.postSvc.CreatePost(context.Background(), owner.ID, &dto.CreatePostDTO{
		Content: strings.Repeat("a", 280),
	})
	if err != nil {
		t.Fatalf("280 字符的帖子应创建成功: %v", err)
	}
	if post.Username != "alice" {
		t.Fatalf("期望作者为 alice, 实际为 %q", post.Username)
	}

	_, err = env.postSvc.CreatePost(context.Background(), owner.ID, &dto.CreatePostDTO{
		Content: strings.Repeat("a", 281),
	})
	if !errors.Is(err, ErrPostTooLong) {
		t.Fatalf("期望 ErrPostTooLong, 实际为 %v", err)
	}
}

// 测试内容：正文与图片至少其一；只有图片也允许发帖。
func TestCreatePost_RequiresContentOrImage(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.gdb, "alice")

	_, err := env.postSvc.CreatePost(context.Background(), owner.ID, &dto.CreatePostDTO{Content: "   "})
	if !errors.Is(err, ErrPostEmpty) {
		t.Fatalf("期望 ErrPostEmpty, 实际为 %v", err)
	}

	post, err := env.postSvc.CreatePost(context.Background(), owner.ID, &dto.CreatePostDTO{
		ImageBase64: strPtr("aW1n"),
	})
	if err != nil {
		t.Fatalf("纯图片帖子应创建成功: %v", err)
	}
	if post.ImageBase64 == nil || *post.ImageBase64 != "aW1n" {
		t.Fatalf("图片内容丢失, 实际为 %+v", post)
	}
}

// 测试内容：发帖时抽取正文标签并入库，可按标签搜索到。
func TestCreatePost_LinksHashtags(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.gdb, "alice")

	post, err := env.postSvc.CreatePost(context.Background(), owner.ID, &dto.CreatePostDTO{
		Content: "Learning #Golang today, #golang is fun #backend",
	})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	var tagCount int64
	env.gdb.Model(&model.Hashtag{}).Count(&tagCount)
	if tagCount != 2 {
		t.Fatalf("期望 2 个标签(golang/backend), 实际为 %d", tagCount)
	}

	results, err := env.postSvc.Search(context.Background(), owner.ID, "#GOLANG")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != post.ID {
		t.Fatalf("标签搜索应不区分大小写找到帖子, 实际为 %+v", results)
	}
}

func TestSearch_SubstringCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.gdb, "alice")

	post, err := env.postSvc.CreatePost(context.Background(), owner.ID, &dto.CreatePostDTO{
		Content: "Hello World from the feed",
	})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	results, err := env.postSvc.Search(context.Background(), owner.ID, "wORLD")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != post.ID {
		t.Fatalf("正文子串搜索应不区分大小写, 实际为 %+v", results)
	}

	_, err = env.postSvc.Search(context.Background(), owner.ID, "   ")
	if !errors.Is(err, ErrSearchQueryRequired) {
		t.Fatalf("期望 ErrSearchQueryRequired, 实际为 %v", err)
	}
}

// 测试内容：转发全流程。原帖不存在 404，重复转发冲突，
// 成功转发内嵌一层原帖。
func TestRepost_Flow(t *testing.T) {
	env := newTestEnv(t)
	alice := seedUser(t, env.gdb, "alice")
	bob := seedUser(t, env.gdb, "bob")

	original, err := env.postSvc.CreatePost(context.Background(), alice.ID, &dto.CreatePostDTO{
		Content: "original thought",
	})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	_, err = env.postSvc.Repost(context.Background(), bob.ID, 9999, nil)
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("期望 ErrPostNotFound, 实际为 %v", err)
	}

	repost, err := env.postSvc.Repost(context.Background(), bob.ID, original.ID, strPtr("so true"))
	if err != nil {
		t.Fatalf("Repost failed: %v", err)
	}
	if repost.RepostOf == nil || *repost.RepostOf != original.ID {
		t.Fatalf("转发应指向原帖 %d, 实际为 %+v", original.ID, repost)
	}
	if repost.Original == nil || repost.Original.Content != "original thought" || repost.Original.Username != "alice" {
		t.Fatalf("转发应内嵌原帖内容与作者, 实际为 %+v", repost.Original)
	}
	if repost.RepostComment == nil || *repost.RepostComment != "so true" {
		t.Fatalf("转发评语丢失, 实际为 %+v", repost)
	}

	_, err = env.postSvc.Repost(context.Background(), bob.ID, original.ID, nil)
	if !errors.Is(err, ErrAlreadyReposted) {
		t.Fatalf("期望 ErrAlreadyReposted, 实际为 %v", err)
	}
}

// 测试内容：转发评语与帖子正文同样受 280 字符上限约束。
func TestRepost_CommentLimit(t *testing.T) {
	env := newTestEnv(t)
	alice := seedUser(t, env.gdb, "alice")
	bob := seedUser(t, env.gdb, "bob")
	carol := seedUser(t, env.gdb, "carol")

	original, err := env.postSvc.CreatePost(context.Background(), alice.ID, &dto.CreatePostDTO{
		Content: "original thought",
	})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	_, err = env.postSvc.Repost(context.Background(), bob.ID, original.ID, strPtr(strings.Repeat("a", 281)))
	if !errors.Is(err, ErrRepostCommentLong) {
		t.Fatalf("期望 ErrRepostCommentLong, 实际为 %v", err)
	}

	var count int64
	env.gdb.Model(&model.Post{}).Where("repost_of IS NOT NULL").Count(&count)
	if count != 0 {
		t.Fatalf("超长评语不应落库, 实际为 %d 条转发", count)
	}

	repost, err := env.postSvc.Repost(context.Background(), carol.ID, original.ID, strPtr(strings.Repeat("a", 280)))
	if err != nil {
		t.Fatalf("280 字符评语应转发成功: %v", err)
	}
	if repost.RepostComment == nil || len(*repost.RepostComment) != 280 {
		t.Fatalf("评语应完整保存, 实际为 %+v", repost.RepostComment)
	}
}

// 测试内容：信息流按时间倒序，带点赞/评论/转发计数与当前用户点赞状态。
func TestListFeed_CountsAndOrder(t *testing.T) {
	env := newTestEnv(t)
	alice := seedUser(t, env.gdb, "alice")
	bob := seedUser(t, env.gdb, "bob")

	first, err := env.postSvc.CreatePost(context.Background(), alice.ID, &dto.CreatePostDTO{Content: "first"})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	second, err := env.postSvc.CreatePost(context.Background(), alice.ID, &dto.CreatePostDTO{Content: "second"})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	if _, err = env.actionSvc.ToggleLike(context.Background(), bob.ID, second.ID); err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if _, err = env.actionSvc.AddComment(context.Background(), bob.ID, first.ID, "nice"); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	repost, err := env.postSvc.Repost(context.Background(), bob.ID, first.ID, nil)
	if err != nil {
		t.Fatalf("Repost failed: %v", err)
	}

	feed, err := env.postSvc.ListFeed(context.Background(), bob.ID)
	if err != nil {
		t.Fatalf("ListFeed failed: %v", err)
	}
	if len(feed) != 3 {
		t.Fatalf("期望 3 条信息流, 实际为 %d", len(feed))
	}
	if feed[0].ID != repost.ID || feed[1].ID != second.ID || feed[2].ID != first.ID {
		t.Fatalf("信息流应按时间倒序, 实际为 [%d %d %d]", feed[0].ID, feed[1].ID, feed[2].ID)
	}

	if feed[1].LikeCount != 1 || !feed[1].UserLiked {
		t.Fatalf("second 应有 1 个赞且当前用户已赞, 实际为 %+v", feed[1])
	}
	if feed[2].CommentCount != 1 || feed[2].RepostCount != 1 {
		t.Fatalf("first 应有 1 条评论和 1 次转发, 实际为 %+v", feed[2])
	}
	if feed[0].Original == nil || feed[0].Original.ID != first.ID {
		t.Fatalf("转发条目应内嵌原帖, 实际为 %+v", feed[0])
	}
}

// 测试内容：热门标签按计数降序，同数按标签字典序升序，最多 10 条。
func TestTrending_OrderAndTieBreak(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.gdb, "alice")

	contents := []string{
		"post one #beta #zeta",
		"post two #beta #alpha",
		"post three #beta",
	}
	for _, content := range contents {
		if _, err := env.postSvc.CreatePost(context.Background(), owner.ID, &dto.CreatePostDTO{Content: content}); err != nil {
			t.Fatalf("CreatePost failed: %v", err)
		}
	}

	trending, err := env.postSvc.Trending(context.Background())
	if err != nil {
		t.Fatalf("Trending failed: %v", err)
	}
	if len(trending) != 3 {
		t.Fatalf("期望 3 个热门标签, 实际为 %d", len(trending))
	}
	if trending[0].Tag != "beta" || trending[0].PostCount != 3 {
		t.Fatalf("beta 应排第一且计数为 3, 实际为 %+v", trending[0])
	}
	if trending[1].Tag != "alpha" || trending[2].Tag != "zeta" {
		t.Fatalf("同计数标签应按字典序, 实际为 [%s %s]", trending[1].Tag, trending[2].Tag)
	}
	if trending[1].PostCount != 1 || trending[2].PostCount != 1 {
		t.Fatalf("alpha/zeta 计数应为 1, 实际为 %+v", trending[1:])
	}
}
