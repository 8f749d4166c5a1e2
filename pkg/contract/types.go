package contract

import (
	"fmt"
	"time"
)

// Sequence: 有序、定长的有符号整数序列（下标自 0 起）。
// 单次求解期间只读；求解器不得修改。nil 与空切片等价。
type Sequence []int

// Subrange: 闭区间 [Start, End]。
// 约定：End < Start 表示空区间（和为 0 的隐式候选），统一取 EmptySubrange。
type Subrange struct {
	Start int
	End   int
}

// EmptySubrange: 空区间的规范表示（0,-1）。
var EmptySubrange = Subrange{Start: 0, End: -1}

// Empty 报告是否为空区间。
func (r Subrange) Empty() bool { return r.End < r.Start }

// Len 返回区间元素个数（空区间为 0）。
func (r Subrange) Len() int {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start + 1
}

func (r Subrange) String() string { return fmt.Sprintf("%d-%d", r.Start, r.End) }

// Result: 单次求解产出（最大和 + 达到该和的区间）。值类型，无共享状态。
type Result struct {
	Sum   int
	Range Subrange
}

// ZeroResult: 空序列或全非正序列时的结果。
var ZeroResult = Result{Sum: 0, Range: EmptySubrange}

// String 形如 "6 (3-6)"。
func (r Result) String() string { return fmt.Sprintf("%d (%s)", r.Sum, r.Range) }

// BenchmarkRow: 一次 (size, algorithm) 观测；创建后不再修改。
type BenchmarkRow struct {
	Size      int
	Algorithm string
	Result    Result
	Elapsed   time.Duration
}
