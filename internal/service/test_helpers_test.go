package service

import (
	"testing"
	"time"

	"Glimpse/internal/model"
	"Glimpse/internal/repository"
	"Glimpse/internal/testutils"

	"gorm.io/gorm"
)

type testEnv struct {
	gdb       *gorm.DB
	userSvc   UserService
	postSvc   PostService
	actionSvc PostActionService
	storySvc  StoryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gdb := testutils.SetupDB(t)

	userRepo := repository.NewUserRepo(gdb)
	postRepo := repository.NewPostRepository(gdb)
	actionRepo := repository.NewPostActionRepo(gdb)
	hashtagRepo := repository.NewHashtagRepository(gdb)
	storyRepo := repository.NewStoryRepository(gdb)

	return &testEnv{
		gdb:       gdb,
		userSvc:   NewUserService(userRepo),
		postSvc:   NewPostService(postRepo, actionRepo, hashtagRepo),
		actionSvc: NewPostActionService(actionRepo, postRepo, userRepo),
		storySvc:  NewStoryService(storyRepo, userRepo),
	}
}

func seedUser(t *testing.T, gdb *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "not-a-real-hash",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := gdb.Create(user).Error; err != nil {
		t.Fatalf("seed user %q failed: %v", username, err)
	}
	return user
}

func seedStory(t *testing.T, gdb *gorm.DB, userID uint64, createdAt time.Time) *model.Story {
	t.Helper()
	story := &model.Story{
		UserID:      userID,
		ImageBase64: "aW1n",
		CreatedAt:   createdAt,
	}
	if err := gdb.Create(story).Error; err != nil {
		t.Fatalf("seed story failed: %v", err)
	}
	return story
}

func strPtr(s string) *string {
	return &s
}
