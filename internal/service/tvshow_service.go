package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/user/seriesdb/internal/model"
	"github.com/user/seriesdb/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrTVShowNotFound 剧集不存在
var ErrTVShowNotFound = errors.New("剧集不存在")

// TVShowStore 剧集存储
type TVShowStore interface {
	FindByID(ctx context.Context, id int) (*model.TVShow, error)
	List(ctx context.Context) ([]*model.TVShow, error)
	Save(ctx context.Context, show *model.TVShow) error
	Delete(ctx context.Context, id int) error
}

// TVShowService 剧集服务
// 对外返回的都是拷贝，调用方修改不会影响缓存
type TVShowService struct {
	store TVShowStore
	cache *utils.LRUCache[*model.TVShow]
	group singleflight.Group
	log   *zap.Logger
}

// NewTVShowService 创建剧集服务
func NewTVShowService(store TVShowStore, cache *utils.LRUCache[*model.TVShow], log *zap.Logger) *TVShowService {
	return &TVShowService{
		store: store,
		cache: cache,
		log:   log,
	}
}

func cacheKey(id int) string {
	return strconv.Itoa(id)
}

// Get 获取剧集，优先读缓存；并发的相同查询只会访问一次存储
func (s *TVShowService) Get(ctx context.Context, id int) (*model.TVShow, error) {
	key := cacheKey(id)
	if show, ok := s.cache.Get(key); ok {
		return show.Clone(), nil
	}

	val, err, _ := s.group.Do(key, func() (interface{}, error) {
		show, err := s.store.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("查询剧集 %d 失败: %w", id, err)
		}
		if show == nil {
			return nil, ErrTVShowNotFound
		}
		s.cache.Set(key, show)
		return show, nil
	})
	if err != nil {
		return nil, err
	}
	return val.(*model.TVShow).Clone(), nil
}

// List 列出所有剧集
func (s *TVShowService) List(ctx context.Context) ([]*model.TVShow, error) {
	shows, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取剧集列表失败: %w", err)
	}
	return shows, nil
}

// Save 保存剧集，返回入库后的值（新建时带上 ID）
// 更新时剧集必须已存在；表单不包含海报，未提交海报时保留原有的海报引用
func (s *TVShowService) Save(ctx context.Context, show *model.TVShow) (*model.TVShow, error) {
	saved := show.Clone()

	if saved.HasID() {
		existing, err := s.Get(ctx, saved.ID)
		if err != nil {
			return nil, err
		}
		if saved.PosterID == nil {
			saved.PosterID = existing.PosterID
		}
	}

	if err := s.store.Save(ctx, saved); err != nil {
		return nil, fmt.Errorf("保存剧集失败: %w", err)
	}
	s.cache.Set(cacheKey(saved.ID), saved.Clone())

	s.log.Info("[TVShowService] 已保存剧集", zap.Int("id", saved.ID), zap.String("name", saved.Name))
	return saved, nil
}

// Delete 删除剧集
func (s *TVShowService) Delete(ctx context.Context, id int) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("删除剧集 %d 失败: %w", id, err)
	}
	s.cache.Delete(cacheKey(id))

	s.log.Info("[TVShowService] 已删除剧集", zap.Int("id", id))
	return nil
}
