package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/user/seriesdb/internal/config"
	"github.com/user/seriesdb/internal/htmlutil"
	"github.com/user/seriesdb/internal/page"
	"github.com/user/seriesdb/internal/service"
	"go.uber.org/zap"
)

const baseCSS = `body{font-family:sans-serif;max-width:960px;margin:0 auto;padding:1rem}
.form__group{display:flex;flex-direction:column;margin-bottom:1rem}
.alert-error{color:#b00020}`

// Handler HTTP 处理器
type Handler struct {
	Config  *config.Config
	TVShows *service.TVShowService
	Log     *zap.Logger
	ModTime page.ModTimeSource
}

// NewHandler 创建处理器
func NewHandler(cfg *config.Config, tvShows *service.TVShowService, log *zap.Logger, modTime page.ModTimeSource) *Handler {
	if modTime == nil {
		modTime = page.ExecutableModTime()
	}
	return &Handler{
		Config:  cfg,
		TVShows: tvShows,
		Log:     log,
		ModTime: modTime,
	}
}

// newPage 创建带公共 head 与导航的页面
func (h *Handler) newPage(c *gin.Context, title string) *page.Document {
	doc := page.NewDocument(title+" - "+h.Config.SiteName, page.WithModTimeSource(h.ModTime))
	doc.AppendHead("\n<meta charset=\"utf-8\">")
	doc.AppendHead("\n<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
	doc.AppendKeywords(h.Config.SiteKeywords)
	doc.AppendStyleURL("/static/css/style.css")
	doc.AppendStyle(baseCSS)
	if h.Config.SiteURL != "" {
		canonical := strings.TrimRight(h.Config.SiteURL, "/") + c.Request.URL.Path
		doc.AppendHead("\n<link rel=\"canonical\" href=\"" + htmlutil.Escape(canonical) + "\">")
	}
	doc.AppendHead("\n")

	doc.AppendBody("<header><a href=\"/tvshows\">" + htmlutil.Escape(h.Config.SiteName) + "</a></header>\n<main>\n")
	return doc
}

// renderPage 补上页脚后输出页面
func (h *Handler) renderPage(c *gin.Context, status int, doc *page.Document) {
	doc.AppendBody("</main>\n")
	if ts, err := doc.LastModified(); err == nil {
		doc.AppendBody("<footer>最后更新: " + htmlutil.Escape(ts) + "</footer>\n")
	} else {
		h.Log.Warn("[Handler] 获取最后修改时间失败", zap.Error(err))
	}
	c.Data(status, "text/html; charset=utf-8", []byte(doc.HTML(h.Config.SiteLang)))
}

// renderError 错误页
func (h *Handler) renderError(c *gin.Context, status int, message string) {
	doc := h.newPage(c, http.StatusText(status))
	doc.AppendBody("<h1>" + htmlutil.Escape(http.StatusText(status)) + "</h1>\n")
	doc.AppendBody("<p class=\"alert alert-error\">" + htmlutil.Escape(message) + "</p>\n")
	h.renderPage(c, status, doc)
}
