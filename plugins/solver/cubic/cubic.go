package cubic

import "maxsum/pkg/contract"

type solver struct{}

// New 返回 O(n³) 穷举求解器。
func New() contract.Solver { return solver{} }

func (solver) Solve(seq contract.Sequence) contract.Result { return MaxSubSum(seq) }

// MaxSubSum 穷举全部 (i, j)（i <= j），对每个区间独立求和。
// 并列：按 i 升序、再按 j 升序首次遇到的区间胜出（严格大于才更新）。
// 空序列或全非正序列返回 contract.ZeroResult。
func MaxSubSum(seq contract.Sequence) contract.Result {
	best := contract.ZeroResult
	n := len(seq)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sum := 0
			for k := i; k <= j; k++ {
				sum += seq[k]
			}
			if sum > best.Sum {
				best = contract.Result{Sum: sum, Range: contract.Subrange{Start: i, End: j}}
			}
		}
	}
	return best
}

var _ contract.Solver = solver{}
