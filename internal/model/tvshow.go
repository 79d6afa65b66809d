package model

// TVShow 剧集模型
// ID 为 0 表示尚未入库
type TVShow struct {
	ID           int    `json:"id" db:"id" gorm:"primaryKey"`
	Name         string `json:"name" db:"name" gorm:"not null;index"`
	OriginalName string `json:"original_name" db:"original_name" gorm:"not null"`
	Homepage     string `json:"homepage" db:"homepage"`
	Overview     string `json:"overview" db:"overview" gorm:"type:text"`
	PosterID     *int   `json:"poster_id" db:"poster_id"` // 海报图片引用（可为空）
}

// TableName 表名
func (TVShow) TableName() string {
	return "tv_shows"
}

// NewTVShow 创建剧集，id 为 0 表示新剧集
func NewTVShow(name, originalName, homepage, overview string, posterID *int, id int) *TVShow {
	return &TVShow{
		ID:           id,
		Name:         name,
		OriginalName: originalName,
		Homepage:     homepage,
		Overview:     overview,
		PosterID:     posterID,
	}
}

// HasID 是否已入库
func (s *TVShow) HasID() bool {
	return s != nil && s.ID > 0
}

// Clone 返回一份拷贝，海报引用也会被复制
func (s *TVShow) Clone() *TVShow {
	if s == nil {
		return nil
	}
	c := *s
	if s.PosterID != nil {
		id := *s.PosterID
		c.PosterID = &id
	}
	return &c
}
