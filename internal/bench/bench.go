package bench

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"maxsum/internal/diag"
	"maxsum/pkg/contract"
)

// - 单线程、同步：每次求解跑完才进入下一次，无并发与取消。
// - 公平输入：同一尺寸只生成一次序列，所有算法共用（只读）。
// - 交叉校验：每个结果先校验区间和，再在尺寸末校验各算法 Sum 一致；违例即终止。

// Settings 运行期配置（最小必要）。
type Settings struct {
	// 尺寸序列：自 MinSize 起翻倍，不超过 MaxSize（含）。
	MinSize int
	MaxSize int
	// Seed 原样用于 math/rand；时钟派生由调用方经 ResolveSeed 完成。
	Seed int64
	// Trials: 每个 (size, algorithm) 重复次数；报告平均耗时。
	Trials int
	// Terminal: 可选进度提示。
	Terminal *diag.Terminal
}

// Sink 接收逐行观测；返回错误即终止运行。
type Sink interface {
	Emit(row contract.BenchmarkRow) error
}

// SinkFunc 适配普通函数为 Sink。
type SinkFunc func(row contract.BenchmarkRow) error

func (f SinkFunc) Emit(row contract.BenchmarkRow) error { return f(row) }

// Sizes 返回 [min, max] 内自 min 起逐次翻倍的尺寸序列。
func Sizes(min, max int) []int {
	if min < 1 || max < min {
		return nil
	}
	var out []int
	for n := min; ; n *= 2 {
		out = append(out, n)
		if n > max/2 {
			break
		}
	}
	return out
}

// ResolveSeed 将 0 解析为基于时钟的种子。
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// Generate 生成长度 n 的序列，元素在 [-n, n] 上均匀分布。
func Generate(r *rand.Rand, n int) contract.Sequence {
	seq := make(contract.Sequence, n)
	for i := range seq {
		seq[i] = r.Intn(2*n+1) - n
	}
	return seq
}

// Measure 在同一序列上执行 trials 次，返回最后一次结果与平均耗时。
func Measure(s contract.Solver, seq contract.Sequence, trials int) (contract.Result, time.Duration) {
	if trials < 1 {
		trials = 1
	}
	var res contract.Result
	var total time.Duration
	for i := 0; i < trials; i++ {
		t0 := time.Now()
		res = s.Solve(seq)
		total += time.Since(t0)
	}
	return res, total / time.Duration(trials)
}

// Run 执行完整基准：对每个尺寸生成序列 → 依次调用各算法 → 校验 → 逐行写入 sink。
// logger 可为 nil。
func Run(solvers []contract.NamedSolver, set Settings, sink Sink, logger *diag.Logger) error {
	if err := sanity(solvers, set, sink); err != nil {
		return fmt.Errorf("sanity: %w", err)
	}
	sizes := Sizes(set.MinSize, set.MaxSize)
	r := rand.New(rand.NewSource(set.Seed))
	labels := make([]string, len(solvers))
	for i, ns := range solvers {
		labels[i] = ns.Label
	}

	runStart := time.Now()
	ok := false
	set.Terminal.RunStart(len(sizes), len(solvers), set.Seed)
	defer func() { set.Terminal.RunFinish(ok, time.Since(runStart)) }()

	for _, n := range sizes {
		sizeStart := time.Now()
		timer := (*diag.Timer)(nil)
		if logger != nil {
			timer = logger.StartSize("bench", "size", n)
		}
		seq := Generate(r, n)
		results := make([]contract.Result, len(solvers))
		for i, ns := range solvers {
			res, elapsed := Measure(ns.Solver, seq, set.Trials)
			results[i] = res
			if logger != nil {
				logger.Observe("bench", n, ns.Label, elapsed, map[string]string{
					"sum":   strconv.Itoa(res.Sum),
					"range": res.Range.String(),
				})
			}
			if err := contract.ValidateResult(seq, res); err != nil {
				logFail(logger, err, n, ns.Label, &sizeStart)
				return fmt.Errorf("size %d %s: %w", n, ns.Label, err)
			}
			row := contract.BenchmarkRow{Size: n, Algorithm: ns.Label, Result: res, Elapsed: elapsed}
			if err := sink.Emit(row); err != nil {
				logFail(logger, err, n, ns.Label, &sizeStart)
				return fmt.Errorf("emit: %w", err)
			}
		}
		if err := contract.ValidateAgreement(labels, results); err != nil {
			logFail(logger, err, n, "", &sizeStart)
			return fmt.Errorf("size %d: %w", n, err)
		}
		if timer != nil {
			timer.Finish("size", int64(len(solvers)))
		}
		set.Terminal.SizeFinish(n, time.Since(sizeStart))
	}
	ok = true
	return nil
}

func logFail(logger *diag.Logger, err error, size int, algo string, since *time.Time) {
	if logger == nil {
		return
	}
	kv := map[string]string{"size": strconv.Itoa(size), "err": err.Error()}
	if algo != "" {
		kv["algo"] = algo
	}
	logger.ErrorWithKV("bench", string(diag.Classify(err)), "run failed", since, kv)
}

func sanity(solvers []contract.NamedSolver, set Settings, sink Sink) error {
	if len(solvers) == 0 {
		return fmt.Errorf("%w: no solvers", contract.ErrInvalidInput)
	}
	for _, ns := range solvers {
		if ns.Solver == nil || ns.Label == "" {
			return fmt.Errorf("%w: solver %q incomplete", contract.ErrInvalidInput, ns.Label)
		}
	}
	if sink == nil {
		return fmt.Errorf("%w: nil sink", contract.ErrInvalidInput)
	}
	if set.MinSize < 1 || set.MaxSize < set.MinSize {
		return fmt.Errorf("%w: size range [%d, %d]", contract.ErrInvalidInput, set.MinSize, set.MaxSize)
	}
	if set.Trials < 1 {
		return fmt.Errorf("%w: trials %d", contract.ErrInvalidInput, set.Trials)
	}
	return nil
}
