package kadane

import (
	"testing"

	"maxsum/pkg/contract"
)

// TestMaxSubSum 覆盖已知值与空/全负/单元素等边界。
func TestMaxSubSum(t *testing.T) {
	tests := []struct {
		name string
		seq  contract.Sequence
		want contract.Result
	}{
		{"经典样例", contract.Sequence{-2, 1, -3, 4, -1, 2, 1, -5, 4}, contract.Result{Sum: 6, Range: contract.Subrange{Start: 3, End: 6}}},
		{"全负", contract.Sequence{-5, -3, -8}, contract.ZeroResult},
		{"空序列", contract.Sequence{}, contract.ZeroResult},
		{"nil", nil, contract.ZeroResult},
		{"单个正数", contract.Sequence{7}, contract.Result{Sum: 7, Range: contract.Subrange{Start: 0, End: 0}}},
		{"单个负数", contract.Sequence{-7}, contract.ZeroResult},
		{"全零", contract.Sequence{0, 0, 0}, contract.ZeroResult},
		{"全正", contract.Sequence{1, 2, 3}, contract.Result{Sum: 6, Range: contract.Subrange{Start: 0, End: 2}}},
		{"末尾最大", contract.Sequence{-1, -2, 5}, contract.Result{Sum: 5, Range: contract.Subrange{Start: 2, End: 2}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var orig contract.Sequence
			if tc.seq != nil {
				orig = append(contract.Sequence{}, tc.seq...)
			}
			got := New().Solve(tc.seq)
			if got != tc.want {
				t.Fatalf("Solve(%v)=%v, 预期 %v", tc.seq, got, tc.want)
			}
			if err := contract.ValidateResult(tc.seq, got); err != nil {
				t.Fatalf("结果校验失败: %v", err)
			}
			for i := range orig {
				if orig[i] != tc.seq[i] {
					t.Fatalf("输入被修改: %v -> %v", orig, tc.seq)
				}
			}
		})
	}
}

// TestTieBreak 运行和回落到 0 时不重置起点，后续并列不会覆盖已提交区间。
func TestTieBreak(t *testing.T) {
	got := MaxSubSum(contract.Sequence{3, -3, 3})
	want := contract.Result{Sum: 3, Range: contract.Subrange{Start: 0, End: 0}}
	if got != want {
		t.Fatalf("got %v, 预期 %v", got, want)
	}
	// 重置后的新区间严格更优时才提交
	got = MaxSubSum(contract.Sequence{2, -5, 1, 4})
	want = contract.Result{Sum: 5, Range: contract.Subrange{Start: 2, End: 3}}
	if got != want {
		t.Fatalf("got %v, 预期 %v", got, want)
	}
}
