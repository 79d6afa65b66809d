package page

import (
	"fmt"
	"os"
	"time"
)

// LastModifiedLayout 最后修改时间的展示格式
const LastModifiedLayout = "January 02 2006 15:04:05."

// ModTimeSource 最后修改时间来源
type ModTimeSource interface {
	ModTime() (time.Time, error)
}

// FileModTime 读取文件的修改时间
type FileModTime string

func (p FileModTime) ModTime() (time.Time, error) {
	info, err := os.Stat(string(p))
	if err != nil {
		return time.Time{}, fmt.Errorf("读取文件修改时间失败: %w", err)
	}
	return info.ModTime(), nil
}

type executableModTime struct{}

// ExecutableModTime 当前运行程序的修改时间
func ExecutableModTime() ModTimeSource {
	return executableModTime{}
}

func (executableModTime) ModTime() (time.Time, error) {
	path, err := os.Executable()
	if err != nil {
		return time.Time{}, fmt.Errorf("获取程序路径失败: %w", err)
	}
	return FileModTime(path).ModTime()
}

// FixedModTime 固定时间，测试用
type FixedModTime time.Time

func (t FixedModTime) ModTime() (time.Time, error) {
	return time.Time(t), nil
}
