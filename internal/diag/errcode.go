package diag

import (
	"errors"
	"os"
	"time"

	"maxsum/pkg/contract"
)

// Code 是最小错误分类代码。
// 仅用于日志汇总；退出码映射见 cmd/maxsum。
type Code string

const (
	CodeUnknown   Code = "unknown"
	CodeInvariant Code = "invariant"
	CodeInput     Code = "input"
	CodeIO        Code = "io"
)

// Classify 将错误归为最小分类。
// 仅依赖哨兵错误与标准库错误类型，不做字符串匹配。
func Classify(err error) Code {
	if err == nil {
		return CodeUnknown
	}
	if errors.Is(err, contract.ErrInvariantViolation) {
		return CodeInvariant
	}
	if errors.Is(err, contract.ErrInvalidInput) {
		return CodeInput
	}
	var perr *os.PathError
	if errors.As(err, &perr) {
		return CodeIO
	}
	return CodeUnknown
}

// NowUTC 返回 RFC3339 UTC 时间字符串（用于结构化日志字段 ts）。
func NowUTC() string { return time.Now().UTC().Format(time.RFC3339) }
