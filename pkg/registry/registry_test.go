package registry

import (
	"errors"
	"math/rand"
	"testing"

	"maxsum/pkg/contract"
)

// TestResolve 验证默认全集、子集、大小写与错误分支。
func TestResolve(t *testing.T) {
	all, err := Resolve(nil)
	if err != nil {
		t.Fatalf("Resolve(nil): %v", err)
	}
	if len(all) != len(Order) {
		t.Fatalf("全集数量=%d, 预期 %d", len(all), len(Order))
	}
	for i, ns := range all {
		if ns.Label != Order[i] || ns.Solver == nil {
			t.Fatalf("第 %d 项异常: %+v", i, ns)
		}
	}

	sub, err := Resolve([]string{"linearscan", " CubicScan "})
	if err != nil {
		t.Fatalf("Resolve 子集: %v", err)
	}
	if len(sub) != 2 || sub[0].Label != CubicScan || sub[1].Label != LinearScan {
		t.Fatalf("子集应按固定顺序返回: %+v", sub)
	}

	if _, err := Resolve([]string{"bogo"}); !errors.Is(err, contract.ErrInvalidInput) {
		t.Fatalf("未知名称应报 ErrInvalidInput: %v", err)
	}
	if _, err := Resolve([]string{"LinearScan", "LINEARSCAN"}); !errors.Is(err, contract.ErrInvalidInput) {
		t.Fatalf("重复名称应报 ErrInvalidInput: %v", err)
	}
}

// TestFactories 遍历注册表入口。
func TestFactories(t *testing.T) {
	if len(Solver) != len(Order) {
		t.Fatalf("注册表与 Order 不一致: %d vs %d", len(Solver), len(Order))
	}
	for _, label := range Order {
		f, ok := Solver[label]
		if !ok || f() == nil {
			t.Fatalf("%s 未注册", label)
		}
	}
}

// TestAgreement 全部算法在同一输入上的 Sum 必须一致，且区间合法。
func TestAgreement(t *testing.T) {
	solvers, err := Resolve(nil)
	if err != nil {
		t.Fatal(err)
	}
	fixed := []contract.Sequence{
		nil,
		{},
		{-5, -3, -8},
		{1, 2, 3, 4},
		{7},
		{-7},
		{0, 0},
		{-2, 1, -3, 4, -1, 2, 1, -5, 4},
	}
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		n := r.Intn(40)
		seq := make(contract.Sequence, n)
		for k := range seq {
			seq[k] = r.Intn(2*n+1) - n
		}
		fixed = append(fixed, seq)
	}

	labels := make([]string, len(solvers))
	for i, ns := range solvers {
		labels[i] = ns.Label
	}
	for _, seq := range fixed {
		results := make([]contract.Result, len(solvers))
		for i, ns := range solvers {
			results[i] = ns.Solver.Solve(seq)
			if err := contract.ValidateResult(seq, results[i]); err != nil {
				t.Fatalf("%s 在 %v 上结果非法: %v", ns.Label, seq, err)
			}
		}
		if err := contract.ValidateAgreement(labels, results); err != nil {
			t.Fatalf("输入 %v: %v", seq, err)
		}
	}
}

// TestKnownValues 已知样例：全部算法返回 6，区间 [3,6]。
func TestKnownValues(t *testing.T) {
	solvers, _ := Resolve(nil)
	seq := contract.Sequence{-2, 1, -3, 4, -1, 2, 1, -5, 4}
	want := contract.Result{Sum: 6, Range: contract.Subrange{Start: 3, End: 6}}
	for _, ns := range solvers {
		if got := ns.Solver.Solve(seq); got != want {
			t.Fatalf("%s=%v, 预期 %v", ns.Label, got, want)
		}
	}
}
