package config

// Config: 运行期只读配置（一次解析，运行期不变）。
// YAML 使用 snake_case；未知字段在解析期失败。
type Config struct {
	// MinSize: 尺寸序列起点（>=1），每轮翻倍。
	MinSize int `yaml:"min_size"`
	// MaxSize: 尺寸上限（含）。
	MaxSize int `yaml:"max_size"`
	// Seed: 随机种子；0 表示按时钟派生（实际种子写入日志）。
	Seed int64 `yaml:"seed"`
	// Trials: 每个 (size, algorithm) 的重复次数；>1 时报告平均耗时。
	Trials int `yaml:"trials"`
	// Format: 报表格式 table|yaml。
	Format string `yaml:"format"`
	// Solvers: 参与比较的算法标签；空表示全部。
	Solvers []string `yaml:"solvers,omitempty"`
	Logging Logging  `yaml:"logging"`
}

// Logging: 日志等级；日志恒写 stderr。
type Logging struct {
	Level string `yaml:"level"`
}

const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)
