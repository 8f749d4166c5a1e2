package quadratic

import "maxsum/pkg/contract"

type solver struct{}

// New 返回 O(n²) 求解器。
func New() contract.Solver { return solver{} }

func (solver) Solve(seq contract.Sequence) contract.Result { return MaxSubSum(seq) }

// MaxSubSum 对每个起点 i 向右扩展 j 并累加运行和，复用前缀部分和。
// 并列规则与穷举一致：i 升序、j 升序首次达到者胜出。
func MaxSubSum(seq contract.Sequence) contract.Result {
	best := contract.ZeroResult
	n := len(seq)
	for i := 0; i < n; i++ {
		sum := 0
		for j := i; j < n; j++ {
			sum += seq[j]
			if sum > best.Sum {
				best = contract.Result{Sum: sum, Range: contract.Subrange{Start: i, End: j}}
			}
		}
	}
	return best
}

var _ contract.Solver = solver{}
