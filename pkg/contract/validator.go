package contract

import "fmt"

// Sum 返回 seq[r.Start..r.End] 的元素和；空区间为 0。
// 区间越界属于编程错误，直接 panic。
func Sum(seq Sequence, r Subrange) int {
	if r.Empty() {
		return 0
	}
	s := 0
	for _, v := range seq[r.Start : r.End+1] {
		s += v
	}
	return s
}

// ValidateResult 校验单个结果与输入的一致性（纯函数，无 I/O）：
// - Sum 不得为负（空区间候选保证下限为 0）；
// - Sum 为 0 时区间必须为空；
// - 非空区间必须在界内且元素和等于 Sum。
func ValidateResult(seq Sequence, res Result) error {
	if res.Sum < 0 {
		return fmt.Errorf("%w: negative sum %d", ErrInvariantViolation, res.Sum)
	}
	r := res.Range
	if r.Empty() {
		if res.Sum != 0 {
			return fmt.Errorf("%w: empty range with sum %d", ErrInvariantViolation, res.Sum)
		}
		return nil
	}
	if r.Start < 0 || r.End >= len(seq) {
		return fmt.Errorf("%w: range %s out of bounds (len=%d)", ErrInvariantViolation, r, len(seq))
	}
	if got := Sum(seq, r); got != res.Sum {
		return fmt.Errorf("%w: range %s sums to %d, reported %d", ErrInvariantViolation, r, got, res.Sum)
	}
	if res.Sum == 0 {
		return fmt.Errorf("%w: zero sum must use the empty range, got %s", ErrInvariantViolation, r)
	}
	return nil
}

// ValidateAgreement 要求同一输入上的全部结果 Sum 相同。
// labels 与 results 一一对应，仅用于错误信息。
func ValidateAgreement(labels []string, results []Result) error {
	if len(labels) != len(results) {
		return fmt.Errorf("%w: %d labels for %d results", ErrInvalidInput, len(labels), len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Sum != results[0].Sum {
			return fmt.Errorf("%w: %s=%d disagrees with %s=%d",
				ErrInvariantViolation, labels[i], results[i].Sum, labels[0], results[0].Sum)
		}
	}
	return nil
}
