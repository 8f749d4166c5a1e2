package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"maxsum/internal/bench"
	cfgpkg "maxsum/internal/config"
	"maxsum/internal/diag"
	"maxsum/internal/report"
	"maxsum/pkg/contract"
	"maxsum/pkg/registry"
)

var benchRun = bench.Run

// 退出码：0 成功；1 运行期其他错误；2 不变量违例（算法结果不一致）；3 配置/用法错误。
const (
	exitOK        = 0
	exitRuntime   = 1
	exitInvariant = 2
	exitUsage     = 3
)

// 无参数运行即执行默认基准（8..65536，四种算法）。
// 可选旗标：--config, --seed, --min-size, --max-size, --trials, --format, --solvers,
// --log-level, --status, --init-config
func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	seed       int64
	minSize    int
	maxSize    int
	trials     int
	format     string
	solvers    []string
	logLevel   string
	initDir    string
	status     bool
}

func run(args, environ []string, stdout, stderr io.Writer) int {
	code := exitOK
	cmd := newRootCmd(environ, stdout, stderr, &code)
	if args == nil {
		// cobra 对 nil 参数回落到 os.Args
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		if code == exitOK {
			code = exitCode(err)
		}
		fprintf(stderr, "错误: %v\n", err)
	}
	return code
}

func newRootCmd(environ []string, stdout, stderr io.Writer, code *int) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "maxsum",
		Short:         "比较四种最大连续子区间和算法的耗时增长",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return fmt.Errorf("%w: %v", contract.ErrInvalidInput, err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("init-config") {
				return initConfig(opts.initDir, stderr)
			}
			cfg, err := resolveConfig(cmd, opts, environ)
			if err != nil {
				*code = exitUsage
				return err
			}
			*code = execute(cfg, opts.status, stdout, stderr)
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", contract.ErrInvalidInput, err)
	})

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "配置文件路径（YAML）；缺省读取 MAXSUM_CONFIG 或 ./"+cfgpkg.TemplateName+"（若存在）")
	f.Int64Var(&opts.seed, "seed", 0, "随机种子（0 表示按时钟派生）")
	f.IntVar(&opts.minSize, "min-size", 0, "起始数组长度（覆盖配置）")
	f.IntVar(&opts.maxSize, "max-size", 0, "最大数组长度，含（覆盖配置）")
	f.IntVar(&opts.trials, "trials", 0, "每个算法重复次数，报告平均耗时（覆盖配置）")
	f.StringVar(&opts.format, "format", "", "输出格式 table|yaml（覆盖配置）")
	f.StringSliceVar(&opts.solvers, "solvers", nil, "参与比较的算法，逗号分隔："+strings.Join(registry.Order, ","))
	f.StringVar(&opts.logLevel, "log-level", "", "日志级别 debug|info|warn|error（覆盖配置）")
	f.BoolVar(&opts.status, "status", true, "终端进度提示（stderr）")
	f.StringVar(&opts.initDir, "init-config", "", "在指定目录生成默认 "+cfgpkg.TemplateName+"（已存在则跳过）；写作 --init-config=DIR，不带值时为当前目录")
	f.Lookup("init-config").NoOptDefVal = "."
	return cmd
}

// resolveConfig 按 默认 → 文件 → ENV → 旗标 的顺序合并并校验。
func resolveConfig(cmd *cobra.Command, opts options, environ []string) (cfgpkg.Config, error) {
	cfg := cfgpkg.Defaults()

	path := opts.configPath
	if path == "" {
		path = lookupEnv(environ, "MAXSUM_CONFIG")
	}
	if path == "" {
		if _, err := os.Stat(cfgpkg.TemplateName); err == nil {
			path = cfgpkg.TemplateName
		}
	}
	if path != "" {
		base, err := cfgpkg.Load(path, nil)
		if err != nil {
			return cfg, fmt.Errorf("配置解析失败: %w", err)
		}
		cfg = cfgpkg.Merge(cfg, base)
	}

	cfg, err := cfgpkg.ApplyEnv(cfg, environ)
	if err != nil {
		return cfg, fmt.Errorf("环境变量解析失败: %w", err)
	}

	// 仅显式设置的旗标参与覆盖；数值旗标即使为 0 也直接生效（seed=0 即按时钟派生）
	f := cmd.Flags()
	if f.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if f.Changed("min-size") {
		cfg.MinSize = opts.minSize
	}
	if f.Changed("max-size") {
		cfg.MaxSize = opts.maxSize
	}
	if f.Changed("trials") {
		cfg.Trials = opts.trials
	}
	var over cfgpkg.Config
	if f.Changed("format") {
		over.Format = opts.format
	}
	if f.Changed("solvers") {
		over.Solvers = opts.solvers
	}
	if f.Changed("log-level") {
		over.Logging.Level = opts.logLevel
	}
	cfg = cfgpkg.Merge(cfg, over)

	if err := cfgpkg.Validate(cfg); err != nil {
		return cfg, fmt.Errorf("配置校验失败: %w", err)
	}
	return cfg, nil
}

// execute 装配日志、终端、报表并运行基准，返回退出码。
func execute(cfg cfgpkg.Config, status bool, stdout, stderr io.Writer) int {
	start := time.Now()
	logger := diag.NewLogger(diag.NewCorrID(), cfg.Logging.Level, diag.StreamSink(stderr))

	solvers, err := registry.Resolve(cfg.Solvers)
	if err != nil {
		logger.Error("main", string(diag.Classify(err)), "resolve solvers", &start)
		fprintf(stderr, "装配失败: %v\n", err)
		return exitUsage
	}
	rep, err := report.New(cfg.Format, stdout)
	if err != nil {
		logger.Error("main", string(diag.Classify(err)), "report", &start)
		fprintf(stderr, "装配失败: %v\n", err)
		return exitUsage
	}

	seed := bench.ResolveSeed(cfg.Seed)
	set := bench.Settings{
		MinSize:  cfg.MinSize,
		MaxSize:  cfg.MaxSize,
		Seed:     seed,
		Trials:   cfg.Trials,
		Terminal: diag.NewTerminal(stderr, status),
	}
	labels := make([]string, len(solvers))
	for i, ns := range solvers {
		labels[i] = ns.Label
	}
	logger.StartWithKV("main", "run", map[string]string{
		"seed":     strconv.FormatInt(seed, 10),
		"min_size": strconv.Itoa(cfg.MinSize),
		"max_size": strconv.Itoa(cfg.MaxSize),
		"trials":   strconv.Itoa(cfg.Trials),
		"solvers":  strings.Join(labels, ","),
		"format":   cfg.Format,
	})
	if cfg.Trials > 1 {
		logger.Warn("main", "time column reports the mean of repeated trials", map[string]string{
			"trials": strconv.Itoa(cfg.Trials),
		})
	}

	if err := rep.Begin(); err != nil {
		logger.Error("main", string(diag.Classify(err)), "report header", &start)
		fprintf(stderr, "输出失败: %v\n", err)
		return exitRuntime
	}
	if err := benchRun(solvers, set, bench.SinkFunc(rep.Emit), logger); err != nil {
		logger.Error("main", string(diag.Classify(err)), "first error", &start)
		_ = rep.Flush()
		fprintf(stderr, "运行失败: %v (corr_id=%s)\n", err, logger.CorrID())
		return exitCode(err)
	}
	if err := rep.Flush(); err != nil {
		fprintf(stderr, "输出失败: %v\n", err)
		return exitRuntime
	}
	logger.InfoFinish("main", "run", start, int64(len(bench.Sizes(cfg.MinSize, cfg.MaxSize))*len(solvers)))
	return exitOK
}

func initConfig(dir string, stderr io.Writer) error {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = "."
	}
	path, created, err := cfgpkg.WriteTemplate(dir)
	if err != nil {
		return fmt.Errorf("生成默认配置失败: %w", err)
	}
	if created {
		fprintf(stderr, "已生成 %s\n", path)
	} else {
		fprintf(stderr, "已存在，跳过: %s\n", path)
	}
	return nil
}

// exitCode 将错误映射到退出码。
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, contract.ErrInvariantViolation):
		return exitInvariant
	case errors.Is(err, contract.ErrInvalidInput):
		return exitUsage
	default:
		return exitRuntime
	}
}

func lookupEnv(environ []string, key string) string {
	prefix := key + "="
	for _, kv := range environ {
		if strings.HasPrefix(kv, prefix) {
			return strings.TrimSpace(kv[len(prefix):])
		}
	}
	return ""
}

func fprintf(w io.Writer, format string, a ...any) { _, _ = fmt.Fprintf(w, format, a...) }
