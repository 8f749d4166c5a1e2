package kadane

import "maxsum/pkg/contract"

type solver struct{}

// New 返回 O(n) 线性扫描求解器。
func New() contract.Solver { return solver{} }

func (solver) Solve(seq contract.Sequence) contract.Result { return MaxSubSum(seq) }

// MaxSubSum 单遍扫描：维护运行和与候选起点 start。
// 运行和严格超过当前最优时提交 [start, j]；运行和跌破 0 时清零，start 移到 j+1。
// 运行和恰为 0 时不重置，因此并列时保留更早的起点、更早的终点。
func MaxSubSum(seq contract.Sequence) contract.Result {
	best := contract.ZeroResult
	sum, start := 0, 0
	for j, v := range seq {
		sum += v
		if sum > best.Sum {
			best = contract.Result{Sum: sum, Range: contract.Subrange{Start: start, End: j}}
		} else if sum < 0 {
			sum = 0
			start = j + 1
		}
	}
	return best
}

var _ contract.Solver = solver{}
