package divconq

import "maxsum/pkg/contract"

type solver struct{}

// New 返回 O(n log n) 分治求解器。
func New() contract.Solver { return solver{} }

func (solver) Solve(seq contract.Sequence) contract.Result { return MaxSubSum(seq) }

// MaxSubSum 以中点二分递归求解；递归深度 O(log n)。
// 空序列直接返回 contract.ZeroResult。
func MaxSubSum(seq contract.Sequence) contract.Result {
	if len(seq) == 0 {
		return contract.ZeroResult
	}
	return maxSumRec(seq, 0, len(seq)-1)
}

// maxSumRec 求 seq[left..right] 内的最优结果（left <= right）。
// 候选顺序：左半、右半、跨中点；严格大于才替换，并列时靠前的候选胜出。
func maxSumRec(seq contract.Sequence, left, right int) contract.Result {
	if left == right {
		if seq[left] > 0 {
			return contract.Result{Sum: seq[left], Range: contract.Subrange{Start: left, End: left}}
		}
		return contract.ZeroResult
	}

	center := left + (right-left)/2
	best := maxSumRec(seq, left, center)
	if r := maxSumRec(seq, center+1, right); r.Sum > best.Sum {
		best = r
	}
	if c := crossing(seq, left, center, right); c.Sum > best.Sum {
		best = c
	}
	return best
}

// crossing 计算跨越中点的最优和：自 center 向左、自 center+1 向右
// 各自独立累加边界和并保留最大值（下限 0），两者相加。
// 每侧取首次达到最大值的下标，即最短的边界延伸。
func crossing(seq contract.Sequence, left, center, right int) contract.Result {
	maxLeft, sum, from := 0, 0, center+1
	for i := center; i >= left; i-- {
		sum += seq[i]
		if sum > maxLeft {
			maxLeft, from = sum, i
		}
	}

	maxRight, to := 0, center
	sum = 0
	for i := center + 1; i <= right; i++ {
		sum += seq[i]
		if sum > maxRight {
			maxRight, to = sum, i
		}
	}

	total := maxLeft + maxRight
	if total == 0 {
		return contract.ZeroResult
	}
	return contract.Result{Sum: total, Range: contract.Subrange{Start: from, End: to}}
}

var _ contract.Solver = solver{}
