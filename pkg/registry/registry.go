package registry

import (
	"fmt"
	"strings"

	"maxsum/pkg/contract"
	"maxsum/plugins/solver/cubic"
	"maxsum/plugins/solver/divconq"
	"maxsum/plugins/solver/kadane"
	"maxsum/plugins/solver/quadratic"
)

// 固定标签（报表中的 Algorithm 列）。
const (
	CubicScan        = "CubicScan"
	QuadraticScan    = "QuadraticScan"
	DivideAndConquer = "DivideAndConquer"
	LinearScan       = "LinearScan"
)

// NewSolver 工厂签名：求解器无配置项。
type NewSolver func() contract.Solver

// Solver 工厂注册表（显式、零反射）。
var Solver = map[string]NewSolver{
	// O(n³) 穷举
	CubicScan: cubic.New,
	// O(n²) 运行和
	QuadraticScan: quadratic.New,
	// O(n log n) 分治 + 跨中点合并
	DivideAndConquer: divconq.New,
	// O(n) Kadane
	LinearScan: kadane.New,
}

// Order 为固定调用顺序（由慢到快），报表行按此排列。
var Order = []string{CubicScan, QuadraticScan, DivideAndConquer, LinearScan}

// Resolve 按 Order 返回所选求解器；names 为空表示全部。
// 名称大小写不敏感；未知或重复名称返回 ErrInvalidInput。
func Resolve(names []string) ([]contract.NamedSolver, error) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		label, ok := canonical(n)
		if !ok {
			return nil, fmt.Errorf("%w: unknown solver %q (known: %s)", contract.ErrInvalidInput, n, strings.Join(Order, ", "))
		}
		if want[label] {
			return nil, fmt.Errorf("%w: duplicate solver %q", contract.ErrInvalidInput, n)
		}
		want[label] = true
	}
	out := make([]contract.NamedSolver, 0, len(Order))
	for _, label := range Order {
		if len(want) > 0 && !want[label] {
			continue
		}
		out = append(out, contract.NamedSolver{Label: label, Solver: Solver[label]()})
	}
	return out, nil
}

func canonical(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, label := range Order {
		if strings.EqualFold(label, name) {
			return label, true
		}
	}
	return "", false
}
