package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/user/seriesdb/internal/form"
	"github.com/user/seriesdb/internal/htmlutil"
	"github.com/user/seriesdb/internal/service"
	"github.com/user/seriesdb/internal/utils"
	"go.uber.org/zap"
)

const (
	listPageKey    = "page:tvshows"
	saveActionPath = "/tvshows/save"
)

// ==================== 剧集页面 ====================

// TVShowList 剧集列表
func (h *Handler) TVShowList(c *gin.Context) {
	if html, ok := utils.CacheGetPage(listPageKey); ok {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
		return
	}

	// 先记下版本，渲染期间列表被修改时不写缓存
	gen := utils.CachePageGeneration()
	shows, err := h.TVShows.List(c.Request.Context())
	if err != nil {
		h.Log.Error("[Handler] 获取剧集列表失败", zap.Error(err))
		h.renderError(c, http.StatusInternalServerError, "获取剧集列表失败")
		return
	}

	var b strings.Builder
	b.WriteString("<h1>剧集</h1>\n<p><a href=\"/tvshows/new\">添加剧集</a></p>\n")
	if len(shows) == 0 {
		b.WriteString("<p class=\"empty\">暂无剧集</p>\n")
	} else {
		b.WriteString("<ul class=\"tvshows\">\n")
		for _, show := range shows {
			id := strconv.Itoa(show.ID)
			b.WriteString("<li><a href=\"/tvshows/" + id + "/edit\">" + htmlutil.Escape(show.Name) + "</a>")
			b.WriteString(" <span class=\"original-name\">" + htmlutil.Escape(show.OriginalName) + "</span>")
			b.WriteString(" <form method=\"post\" action=\"/tvshows/" + id + "/delete\"><button type=\"submit\">删除</button></form></li>\n")
		}
		b.WriteString("</ul>\n")
	}

	doc := h.newPage(c, "剧集")
	doc.AppendBody(b.String())
	h.renderPage(c, http.StatusOK, doc)

	// 只缓存成功渲染的页面
	if c.Writer.Status() == http.StatusOK {
		utils.CacheSetPageIfCurrent(listPageKey, doc.HTML(h.Config.SiteLang), gen)
	}
}

// TVShowNew 新建剧集表单
func (h *Handler) TVShowNew(c *gin.Context) {
	h.renderForm(c, http.StatusOK, form.NewTVShowForm(nil), "")
}

// TVShowEdit 编辑剧集表单
func (h *Handler) TVShowEdit(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.renderError(c, http.StatusNotFound, "剧集不存在")
		return
	}

	show, err := h.TVShows.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.renderForm(c, http.StatusOK, form.NewTVShowForm(show), "")
}

// TVShowSave 保存表单提交
func (h *Handler) TVShowSave(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		h.renderError(c, http.StatusBadRequest, "无法解析表单")
		return
	}

	fields := postFields(c.Request.PostForm)
	f := form.NewTVShowForm(nil)
	if err := f.ParseSubmission(fields); err != nil {
		var verr *form.ValidationError
		if !errors.As(err, &verr) {
			h.Log.Error("[Handler] 校验剧集表单失败", zap.Error(err))
			h.renderError(c, http.StatusInternalServerError, "保存失败")
			return
		}

		// 回显清洗后的输入；id 只在剧集确实存在时保留
		draft := form.Draft(fields)
		if draft.HasID() {
			if _, err := h.TVShows.Get(c.Request.Context(), draft.ID); err != nil {
				draft.ID = 0
			}
		}
		h.renderForm(c, http.StatusUnprocessableEntity, form.NewTVShowForm(draft), verr.Message)
		return
	}

	saved, err := h.TVShows.Save(c.Request.Context(), f.TVShow())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	utils.CacheDelete(listPageKey)

	h.Log.Info("[Handler] 剧集已保存", zap.Int("id", saved.ID))
	c.Redirect(http.StatusFound, "/tvshows")
}

// TVShowDelete 删除剧集
func (h *Handler) TVShowDelete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.renderError(c, http.StatusNotFound, "剧集不存在")
		return
	}

	if err := h.TVShows.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}
	utils.CacheDelete(listPageKey)

	c.Redirect(http.StatusFound, "/tvshows")
}

// renderForm 输出表单页，message 非空时显示错误提示
func (h *Handler) renderForm(c *gin.Context, status int, f *form.TVShowForm, message string) {
	markup, err := f.Render(saveActionPath)
	if err != nil {
		h.Log.Error("[Handler] 渲染表单失败", zap.Error(err))
		h.renderError(c, http.StatusInternalServerError, "渲染表单失败")
		return
	}

	title := "添加剧集"
	if f.TVShow().HasID() {
		title = "编辑剧集"
	}

	doc := h.newPage(c, title)
	if message != "" {
		doc.AppendBody("<div class=\"alert alert-error\">" + htmlutil.Escape(message) + "</div>\n")
	}
	doc.AppendBody(markup)

	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	h.renderPage(c, status, doc)
}

func (h *Handler) handleServiceError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrTVShowNotFound) {
		h.renderError(c, http.StatusNotFound, "剧集不存在")
		return
	}
	h.Log.Error("[Handler] 剧集操作失败", zap.Error(err))
	h.renderError(c, http.StatusInternalServerError, "服务器内部错误")
}

// ==================== JSON API ====================

// APITVShowList 剧集列表
func (h *Handler) APITVShowList(c *gin.Context) {
	shows, err := h.TVShows.List(c.Request.Context())
	if err != nil {
		h.Log.Error("[Handler] 获取剧集列表失败", zap.Error(err))
		utils.InternalServerError(c, "")
		return
	}
	utils.Success(c, shows)
}

// APITVShowGet 剧集详情
func (h *Handler) APITVShowGet(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.BadRequest(c, "无效的 ID")
		return
	}

	show, err := h.TVShows.Get(c.Request.Context(), id)
	if errors.Is(err, service.ErrTVShowNotFound) {
		utils.NotFound(c, "剧集不存在")
		return
	}
	if err != nil {
		h.Log.Error("[Handler] 获取剧集失败", zap.Int("id", id), zap.Error(err))
		utils.InternalServerError(c, "")
		return
	}
	utils.Success(c, show)
}

func parseIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// postFields 每个字段只取第一个值
func postFields(values url.Values) map[string]string {
	fields := make(map[string]string, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			fields[key] = vals[0]
		}
	}
	return fields
}
