package form

// ValidationError 表单提交缺少必填字段
type ValidationError struct {
	Field   string // 字段名，如 "name"
	Message string // 面向用户的提示
}

func (e *ValidationError) Error() string {
	return e.Message
}
