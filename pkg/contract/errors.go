package contract

import "errors"

// 最小错误分类（哨兵）。
var (
	// ErrInvalidInput: 调用方提供的参数不合法（例如尺寸区间为空、未知算法名）。
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvariantViolation: 领域不变量违例（例如多算法结果不一致、区间和不符）。
	ErrInvariantViolation = errors.New("invariant violation")
)
