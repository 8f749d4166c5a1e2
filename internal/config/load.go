package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"maxsum/pkg/contract"
	"maxsum/pkg/registry"
)

// Defaults 返回默认配置：8..65536 翻倍，共 14 个尺寸，全部算法，单次计时。
// 日志默认写 stderr，级别取 warn，避免淹没进度提示。
func Defaults() Config {
	return Config{
		MinSize: 8,
		MaxSize: 65536,
		Trials:  1,
		Format:  FormatTable,
		Logging: Logging{Level: "warn"},
	}
}

// Load 从文件路径或原始 YAML 解析 Config（严格拒绝未知字段）。
// 空文档返回零值 Config。
func Load(path string, raw []byte) (Config, error) {
	var cfg Config
	var r io.Reader
	switch {
	case len(raw) > 0:
		r = bytes.NewReader(raw)
	case path != "":
		f, err := os.Open(path)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		r = f
	default:
		return cfg, errors.New("no config source provided")
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return cfg, fmt.Errorf("%w: %v", contract.ErrInvalidInput, err)
	}
	return cfg, nil
}

// Merge 按优先级合并（后者覆盖前者）；零值视为未设置。
func Merge(base, over Config) Config {
	out := base
	if over.MinSize != 0 {
		out.MinSize = over.MinSize
	}
	if over.MaxSize != 0 {
		out.MaxSize = over.MaxSize
	}
	if over.Seed != 0 {
		out.Seed = over.Seed
	}
	if over.Trials != 0 {
		out.Trials = over.Trials
	}
	if f := strings.TrimSpace(over.Format); f != "" {
		out.Format = strings.ToLower(f)
	}
	if len(over.Solvers) > 0 {
		out.Solvers = cloneStrings(over.Solvers)
	}
	if l := strings.TrimSpace(over.Logging.Level); l != "" {
		out.Logging.Level = l
	}
	return out
}

// ApplyEnv 将 MAXSUM_ 前缀的环境变量直接写入 base 并返回结果。
// 支持：MIN_SIZE, MAX_SIZE, SEED, TRIALS, FORMAT, SOLVERS, LOG_LEVEL。
// 已设置的数值键即使为 0 也生效（SEED=0 即按时钟派生），越界值交由 Validate。
// 其余键与空值忽略；数值无法解析时返回 ErrInvalidInput。
func ApplyEnv(base Config, environ []string) (Config, error) {
	out := base
	for _, kv := range environ {
		if !strings.HasPrefix(kv, "MAXSUM_") {
			continue
		}
		eq := strings.IndexByte(kv, '=')
		if eq <= len("MAXSUM_") {
			continue
		}
		key, val := strings.TrimPrefix(kv[:eq], "MAXSUM_"), strings.TrimSpace(kv[eq+1:])
		if val == "" {
			continue
		}
		var err error
		switch key {
		case "MIN_SIZE":
			out.MinSize, err = strconv.Atoi(val)
		case "MAX_SIZE":
			out.MaxSize, err = strconv.Atoi(val)
		case "SEED":
			out.Seed, err = strconv.ParseInt(val, 10, 64)
		case "TRIALS":
			out.Trials, err = strconv.Atoi(val)
		case "FORMAT":
			out.Format = strings.ToLower(val)
		case "SOLVERS":
			out.Solvers = splitComma(val)
		case "LOG_LEVEL":
			out.Logging.Level = val
		}
		if err != nil {
			return base, fmt.Errorf("%w: env %s: %v", contract.ErrInvalidInput, kv[:eq], err)
		}
	}
	return out, nil
}

// Validate 对最小必要边界做静态校验。
func Validate(cfg Config) error {
	if cfg.MinSize < 1 {
		return fmt.Errorf("%w: config: min_size must be >= 1", contract.ErrInvalidInput)
	}
	if cfg.MaxSize < cfg.MinSize {
		return fmt.Errorf("%w: config: max_size (%d) must be >= min_size (%d)", contract.ErrInvalidInput, cfg.MaxSize, cfg.MinSize)
	}
	if cfg.Trials < 1 {
		return fmt.Errorf("%w: config: trials must be >= 1", contract.ErrInvalidInput)
	}
	switch cfg.Format {
	case FormatTable, FormatYAML:
	default:
		return fmt.Errorf("%w: config: unknown format %q", contract.ErrInvalidInput, cfg.Format)
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Level)) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: config: unknown log level %q", contract.ErrInvalidInput, cfg.Logging.Level)
	}
	if _, err := registry.Resolve(cfg.Solvers); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func splitComma(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
