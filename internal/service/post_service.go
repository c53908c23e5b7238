package service

import (
	"Glimpse/internal/api/dto"
	"Glimpse/internal/model"
	"Glimpse/internal/pkg/consts"
	"Glimpse/internal/pkg/redis"
	"Glimpse/internal/pkg/util"
	"Glimpse/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

// trendingCacheTTL 热门标签缓存时间
const trendingCacheTTL = 5 * time.Minute

type PostService interface {
	ListFeed(ctx context.Context, viewerID uint64) ([]*dto.PostDTO, error)
	CreatePost(ctx context.Context, ownerID uint64, req *dto.CreatePostDTO) (*dto.PostDTO, error)
	Repost(ctx context.Context, userID, postID uint64, comment *string) (*dto.PostDTO, error)
	Search(ctx context.Context, viewerID uint64, query string) ([]*dto.PostDTO, error)
	Trending(ctx context.Context) ([]*dto.TrendingTagDTO, error)
}

type postServiceImpl struct {
	postRepo    repository.PostRepo
	actionRepo  repository.PostActionRepo
	hashtagRepo repository.HashtagRepo
}

func NewPostService(
	postRepo repository.PostRepo,
	actionRepo repository.PostActionRepo,
	hashtagRepo repository.HashtagRepo,
) PostService {
	return &postServiceImpl{
		postRepo:    postRepo,
		actionRepo:  actionRepo,
		hashtagRepo: hashtagRepo,
	}
}

// ListFeed 信息流：按创建时间倒序，带点赞/评论/转发计数与当前用户点赞状态
func (s *postServiceImpl) ListFeed(ctx context.Context, viewerID uint64) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.ListLatest(ctx, consts.FeedLimit)
	if err != nil {
		return nil, err
	}
	return s.buildPostDTOs(ctx, viewerID, posts)
}

func (s *postServiceImpl) CreatePost(ctx context.Context, ownerID uint64, req *dto.CreatePostDTO) (*dto.PostDTO, error) {
	content := strings.TrimSpace(req.Content)
	hasImage := req.ImageBase64 != nil && *req.ImageBase64 != ""

	if content == "" && !hasImage {
		return nil, ErrPostEmpty
	}
	if utf8.RuneCountInString(content) > consts.MaxPostContentLen {
		return nil, ErrPostTooLong
	}

	post := &model.Post{
		UserID:    ownerID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if hasImage {
		post.ImageBase64 = req.ImageBase64
	}

	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	if tags := util.ExtractHashtags(content); len(tags) > 0 {
		if err := s.linkHashtags(ctx, post.ID, tags); err != nil {
			// 标签入库失败不影响帖子本身
			log.WarnContext(ctx, "failed to link hashtags", "postID", post.ID, "err", err)
		}
	}

	created, err := s.postRepo.GetPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	dtos, err := s.buildPostDTOs(ctx, ownerID, []*model.Post{created})
	if err != nil {
		return nil, err
	}
	return dtos[0], nil
}

// Repost 转发：原帖不存在返回 404，重复转发返回冲突。
// (user_id, repost_of) 唯一索引兜底并发下的先查后插
func (s *postServiceImpl) Repost(ctx context.Context, userID, postID uint64, comment *string) (*dto.PostDTO, error) {
	// 评语列宽 varchar(280)，超长必须在入库前拦下
	if comment != nil && utf8.RuneCountInString(*comment) > consts.MaxPostContentLen {
		return nil, ErrRepostCommentLong
	}

	original, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, ErrPostNotFound
	}

	exists, err := s.postRepo.CheckRepostExists(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReposted
	}

	repost := &model.Post{
		UserID:        userID,
		Content:       "",
		RepostOf:      &postID,
		RepostComment: comment,
		CreatedAt:     time.Now(),
	}
	if err = s.postRepo.CreatePost(ctx, repost); err != nil {
		if isDuplicateError(err) {
			return nil, ErrAlreadyReposted
		}
		return nil, err
	}

	created, err := s.postRepo.GetPost(ctx, repost.ID)
	if err != nil {
		return nil, err
	}
	dtos, err := s.buildPostDTOs(ctx, userID, []*model.Post{created})
	if err != nil {
		return nil, err
	}
	return dtos[0], nil
}

// Search 以 # 开头按标签精确匹配，否则按正文子串匹配，均不区分大小写
func (s *postServiceImpl) Search(ctx context.Context, viewerID uint64, query string) ([]*dto.PostDTO, error) {
	keyword := strings.TrimSpace(query)
	if keyword == "" {
		return nil, ErrSearchQueryRequired
	}

	var posts []*model.Post
	var err error
	if strings.HasPrefix(keyword, "#") {
		tag := strings.ToLower(strings.TrimPrefix(keyword, "#"))
		posts, err = s.postRepo.ListByTag(ctx, tag, consts.SearchLimit)
	} else {
		posts, err = s.postRepo.SearchContent(ctx, keyword, consts.SearchLimit)
	}
	if err != nil {
		return nil, err
	}

	return s.buildPostDTOs(ctx, viewerID, posts)
}

// Trending 统计 7 天窗口内各标签的帖子数，取前 10；结果短缓存
func (s *postServiceImpl) Trending(ctx context.Context) ([]*dto.TrendingTagDTO, error) {
	if cached, err := redis.GetValue(ctx, consts.TrendingTagsKey); err == nil && cached != "" {
		var result []*dto.TrendingTagDTO
		if err = json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
	}

	since := time.Now().Add(-consts.TrendingWindow)
	rows, err := s.hashtagRepo.TrendingTags(ctx, since, consts.TrendingLimit)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TrendingTagDTO, 0, len(rows))
	for _, row := range rows {
		result = append(result, &dto.TrendingTagDTO{Tag: row.Tag, PostCount: row.PostCount})
	}

	if payload, err := json.Marshal(result); err == nil {
		_ = redis.SetWithExpiration(ctx, consts.TrendingTagsKey, payload, trendingCacheTTL)
	}

	return result, nil
}

func (s *postServiceImpl) linkHashtags(ctx context.Context, postID uint64, tags []string) error {
	records, err := s.hashtagRepo.GetOrCreateTags(ctx, tags)
	if err != nil {
		return err
	}
	ids := make([]uint64, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}
	return s.hashtagRepo.LinkPost(ctx, postID, ids)
}

// buildPostDTOs 组装信息流条目：聚合计数、点赞状态、转发原帖（只解析一层）
func (s *postServiceImpl) buildPostDTOs(ctx context.Context, viewerID uint64, posts []*model.Post) ([]*dto.PostDTO, error) {
	if len(posts) == 0 {
		return []*dto.PostDTO{}, nil
	}

	postIDs := make([]uint64, 0, len(posts))
	originalIDs := make([]uint64, 0)
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
		if post.RepostOf != nil {
			originalIDs = append(originalIDs, *post.RepostOf)
		}
	}

	var (
		likeCounts    map[uint64]int64
		commentCounts map[uint64]int64
		repostCounts  map[uint64]int64
		likedSet      map[uint64]bool
		originals     []*model.Post
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		likeCounts, err = s.actionRepo.GetLikeCountsByPostIDs(gCtx, postIDs)
		return err
	})
	g.Go(func() (err error) {
		commentCounts, err = s.actionRepo.GetCommentCountsByPostIDs(gCtx, postIDs)
		return err
	})
	g.Go(func() (err error) {
		repostCounts, err = s.postRepo.GetRepostCountsByPostIDs(gCtx, postIDs)
		return err
	})
	g.Go(func() (err error) {
		likedSet, err = s.actionRepo.GetLikedPostIDs(gCtx, viewerID, postIDs)
		return err
	})
	g.Go(func() (err error) {
		originals, err = s.postRepo.GetPostByIDs(gCtx, originalIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	originalIndex := make(map[uint64]*model.Post, len(originals))
	for _, original := range originals {
		originalIndex[original.ID] = original
	}

	result := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		item := &dto.PostDTO{}
		if err := copier.Copy(item, post); err != nil {
			return nil, err
		}
		item.Username = post.User.Username
		item.AvatarURL = post.User.AvatarURL
		item.CreatedAt = post.CreatedAt.Format(time.RFC3339)
		item.LikeCount = likeCounts[post.ID]
		item.CommentCount = commentCounts[post.ID]
		item.RepostCount = repostCounts[post.ID]
		item.UserLiked = likedSet[post.ID]

		if post.RepostOf != nil {
			if original, ok := originalIndex[*post.RepostOf]; ok {
				item.Original = &dto.OriginalPostDTO{
					ID:          original.ID,
					UserID:      original.UserID,
					Username:    original.User.Username,
					AvatarURL:   original.User.AvatarURL,
					Content:     original.Content,
					ImageBase64: original.ImageBase64,
					CreatedAt:   original.CreatedAt.Format(time.RFC3339),
				}
			}
		}

		result = append(result, item)
	}
	return result, nil
}
