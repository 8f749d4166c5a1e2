package contract

// Solver: 最大连续子区间和求解器。
// 约束：
//  1. 不修改输入 Sequence；
//  2. Sum 等于所有连续子区间（含空区间，和为 0）的最大和；
//  3. Range 非空时其元素和恰为 Sum；Sum 为 0 时 Range 为 EmptySubrange；
//  4. 并列时取哪一个区间由实现的遍历顺序决定，各实现需在文档中说明。
type Solver interface {
	Solve(seq Sequence) Result
}

// SolverFunc 适配普通函数为 Solver。
type SolverFunc func(seq Sequence) Result

func (f SolverFunc) Solve(seq Sequence) Result { return f(seq) }

// NamedSolver: 带固定标签的求解器（标签用于报表与日志）。
type NamedSolver struct {
	Label  string
	Solver Solver
}
