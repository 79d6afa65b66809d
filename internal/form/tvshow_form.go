// Package form 负责剧集表单的渲染与提交校验
package form

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/user/seriesdb/internal/htmlutil"
	"github.com/user/seriesdb/internal/model"
)

// 提交字段名
const (
	FieldID           = "id"
	FieldName         = "name"
	FieldOriginalName = "originalName"
	FieldHomepage     = "homepage"
	FieldOverview     = "overview"
)

// 缺失字段提示，按校验顺序排列
var missingMessages = map[string]string{
	FieldName:         "剧集名称缺失",
	FieldOriginalName: "剧集原名缺失",
	FieldHomepage:     "剧集主页缺失",
	FieldOverview:     "剧集简介缺失",
}

// html/template 会对所有插值做上下文转义，包括隐藏的 id 和 action
const tvShowFormTemplate = `<h1>{{.Heading}}</h1>
<div class="form">
    <form method="post" action="{{.Action}}">
        <input type="hidden" name="id" value="{{.ID}}" />
        <div class="form__group">
            <label for="name">剧集名称</label>
            <input id="name" type="text" name="name" value="{{.Name}}" required autocomplete="off" />
        </div>
        <div class="form__group">
            <label for="originalName">剧集原名</label>
            <input id="originalName" type="text" name="originalName" value="{{.OriginalName}}" required autocomplete="off" />
        </div>
        <div class="form__group">
            <label for="homepage">剧集主页</label>
            <input id="homepage" type="text" name="homepage" value="{{.Homepage}}" required autocomplete="off" />
        </div>
        <div class="form__group">
            <label for="overview">简介</label>
            <textarea id="overview" name="overview" required autocomplete="off" placeholder="请输入剧集简介..." rows="5">{{.Overview}}</textarea>
        </div>
        <button type="submit" value="submit">保存</button>
    </form>
</div>
`

var formTmpl = template.Must(template.New("tvshow_form").Parse(tvShowFormTemplate))

var validate = newValidator()

// submission 清洗后的提交内容，字段顺序即校验顺序
type submission struct {
	Name         string `form:"name" validate:"required"`
	OriginalName string `form:"originalName" validate:"required"`
	Homepage     string `form:"homepage" validate:"required"`
	Overview     string `form:"overview" validate:"required"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("form")
	})
	return v
}

type formView struct {
	Heading      string
	Action       string
	ID           string
	Name         string
	OriginalName string
	Homepage     string
	Overview     string
}

// TVShowForm 剧集表单，同一实例不支持并发使用
type TVShowForm struct {
	tvShow *model.TVShow
}

// NewTVShowForm 创建表单，show 可为 nil
func NewTVShowForm(show *model.TVShow) *TVShowForm {
	return &TVShowForm{tvShow: show}
}

// TVShow 当前持有的剧集（可能为 nil）
func (f *TVShowForm) TVShow() *model.TVShow {
	return f.tvShow
}

// Render 生成提交到 action 的表单 HTML
func (f *TVShowForm) Render(action string) (string, error) {
	view := formView{
		Heading: "添加剧集",
		Action:  action,
	}
	if show := f.tvShow; show != nil {
		if show.HasID() {
			view.Heading = "编辑剧集"
			view.ID = strconv.Itoa(show.ID)
		}
		view.Name = show.Name
		view.OriginalName = show.OriginalName
		view.Homepage = show.Homepage
		view.Overview = show.Overview
	}

	var buf bytes.Buffer
	if err := formTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("渲染剧集表单失败: %w", err)
	}
	return buf.String(), nil
}

// ParseSubmission 校验提交的字段并生成新的剧集
// 必填字段按 name、originalName、homepage、overview 的顺序检查，
// 第一个缺失的字段决定错误提示；失败时不改变当前持有的剧集
func (f *TVShowForm) ParseSubmission(fields map[string]string) error {
	sub := cleanSubmission(fields)

	if err := validate.Struct(sub); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field := verrs[0].Field()
			return &ValidationError{Field: field, Message: missingMessages[field]}
		}
		return fmt.Errorf("校验剧集表单失败: %w", err)
	}

	f.tvShow = model.NewTVShow(sub.Name, sub.OriginalName, sub.Homepage, sub.Overview, nil, parseID(fields[FieldID]))
	return nil
}

// Draft 清洗后的提交内容，不做必填校验；校验失败时用于回显
func Draft(fields map[string]string) *model.TVShow {
	sub := cleanSubmission(fields)
	return model.NewTVShow(sub.Name, sub.OriginalName, sub.Homepage, sub.Overview, nil, parseID(fields[FieldID]))
}

func cleanSubmission(fields map[string]string) submission {
	return submission{
		Name:         htmlutil.StripTagsAndTrim(fields[FieldName]),
		OriginalName: htmlutil.StripTagsAndTrim(fields[FieldOriginalName]),
		Homepage:     htmlutil.StripTagsAndTrim(fields[FieldHomepage]),
		Overview:     htmlutil.StripTagsAndTrim(fields[FieldOverview]),
	}
}

// parseID 只接受纯数字的 id，其余情况一律视为新剧集
func parseID(raw string) int {
	if raw == "" {
		return 0
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0
		}
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return id
}
