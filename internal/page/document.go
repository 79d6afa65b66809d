// Package page 提供 HTML 页面的拼装：标题、head、body 三段缓冲，按需序列化成完整文档
//
// Document 不做结构校验，head 与 body 的原始内容由调用方负责转义。
// 同一实例不支持并发使用，一般每个请求一个实例。
package page

import (
	"strings"

	"github.com/user/seriesdb/internal/htmlutil"
)

// DefaultLang 文档默认语言
const DefaultLang = "en"

// Document HTML 文档
type Document struct {
	title   string
	head    strings.Builder
	body    strings.Builder
	modTime ModTimeSource
}

// Option 文档选项
type Option func(*Document)

// WithModTimeSource 指定最后修改时间来源
func WithModTimeSource(src ModTimeSource) Option {
	return func(d *Document) {
		d.modTime = src
	}
}

// NewDocument 创建文档
func NewDocument(title string, opts ...Option) *Document {
	d := &Document{title: title}
	for _, opt := range opts {
		opt(d)
	}
	if d.modTime == nil {
		d.modTime = ExecutableModTime()
	}
	return d
}

func (d *Document) Title() string { return d.title }
func (d *Document) Head() string  { return d.head.String() }
func (d *Document) Body() string  { return d.body.String() }

func (d *Document) SetTitle(title string) {
	d.title = title
}

// AppendHead 原样追加到 head
func (d *Document) AppendHead(content string) {
	d.head.WriteString(content)
}

// AppendBody 原样追加到 body
func (d *Document) AppendBody(content string) {
	d.body.WriteString(content)
}

// AppendStyle 追加内联样式
func (d *Document) AppendStyle(css string) {
	d.head.WriteString("\n<style>")
	d.head.WriteString(css)
	d.head.WriteString("</style>")
}

// AppendStyleURL 追加外部样式表
func (d *Document) AppendStyleURL(url string) {
	d.head.WriteString("\n<link rel=\"stylesheet\" href=\"")
	d.head.WriteString(htmlutil.Escape(url))
	d.head.WriteString("\">")
}

// AppendScript 追加内联脚本
func (d *Document) AppendScript(js string) {
	d.head.WriteString("\n<script>")
	d.head.WriteString(js)
	d.head.WriteString("</script>")
}

// AppendScriptURL 追加外部脚本
func (d *Document) AppendScriptURL(url string) {
	d.head.WriteString("\n<script src=\"")
	d.head.WriteString(htmlutil.Escape(url))
	d.head.WriteString("\"></script>")
}

// AppendKeywords 追加 keywords 元信息，内容会被转义
func (d *Document) AppendKeywords(keywords string) {
	d.head.WriteString("\n<meta name=\"keywords\" content=\"")
	d.head.WriteString(htmlutil.Escape(keywords))
	d.head.WriteString("\">")
}

// HTML 序列化为完整文档，lang 为空时使用 DefaultLang
// 可重复调用，不会清空已有内容
func (d *Document) HTML(lang string) string {
	if lang == "" {
		lang = DefaultLang
	}

	var b strings.Builder
	b.Grow(d.head.Len() + d.body.Len() + len(d.title) + 128)
	b.WriteString("<!DOCTYPE html>\n<html lang=\"")
	b.WriteString(htmlutil.Escape(lang))
	b.WriteString("\">\n<head>\n\t<title>")
	b.WriteString(htmlutil.Escape(d.title))
	b.WriteString("</title>\n")
	b.WriteString(d.head.String())
	b.WriteString("</head>\n<body>\n\t")
	b.WriteString(d.body.String())
	b.WriteString("</body>\n</html>")
	return b.String()
}

func (d *Document) String() string {
	return d.HTML(DefaultLang)
}

// LastModified 返回最后修改时间，格式如 "October 16 2026 09:30:00."
func (d *Document) LastModified() (string, error) {
	t, err := d.modTime.ModTime()
	if err != nil {
		return "", err
	}
	return t.Format(LastModifiedLayout), nil
}
