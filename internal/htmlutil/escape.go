// Package htmlutil 提供页面与表单共用的转义、清洗函数，均为无状态纯函数
package htmlutil

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripPolicyOnce sync.Once
	stripPolicy     *bluemonday.Policy
)

// Escape 转义 HTML 特殊字符（< > & ' "）
func Escape(s string) string {
	return html.EscapeString(s)
}

// StripTagsAndTrim 去掉所有标签并去除首尾空白，返回纯文本
// 标签内的文字（包括 script、style）保留；原文中的实体不解码，"R&amp;D" 仍是 "R&amp;D"
func StripTagsAndTrim(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	// 先转义 &，这样最后的反转义只还原 bluemonday 自己加上的转义
	cleaned := stripSanitizer().Sanitize(strings.ReplaceAll(trimmed, "&", "&amp;"))
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func stripSanitizer() *bluemonday.Policy {
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
		stripPolicy.AllowElementsContent("script", "style")
	})
	return stripPolicy
}
