package repository

import (
	"context"
	"errors"

	"github.com/user/seriesdb/internal/model"
	"gorm.io/gorm"
)

type TVShowRepository struct {
	db *gorm.DB
}

func NewTVShowRepository(db *gorm.DB) *TVShowRepository {
	return &TVShowRepository{db: db}
}

// FindByID 根据 ID 查找剧集，不存在时返回 nil, nil
func (r *TVShowRepository) FindByID(ctx context.Context, id int) (*model.TVShow, error) {
	var show model.TVShow
	err := r.db.WithContext(ctx).First(&show, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &show, nil
}

// List 按名称排序列出所有剧集
func (r *TVShowRepository) List(ctx context.Context) ([]*model.TVShow, error) {
	var shows []*model.TVShow
	err := r.db.WithContext(ctx).Order("name ASC").Find(&shows).Error
	return shows, err
}

// Save ID 为 0 时新建（回填 ID），否则更新
func (r *TVShowRepository) Save(ctx context.Context, show *model.TVShow) error {
	if !show.HasID() {
		return r.db.WithContext(ctx).Create(show).Error
	}
	return r.db.WithContext(ctx).Save(show).Error
}

// Delete 删除剧集
func (r *TVShowRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.TVShow{}, id).Error
}
