package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"maxsum/pkg/contract"
)

// 表格布局：Size 左对齐宽 12、算法宽 15、"sum (start-end)" 宽 20、毫秒整数宽 10。
const (
	headerFormat = "%-12s | %-15s | %-20s | %-10s\n"
	rowFormat    = "%-12d | %-15s | %-20s | %-10d\n"
)

// Header 为表头列名。
var Header = [4]string{"Array Size", "Algorithm", "Max Sum (Start-End)", "Time (ms)"}

// Separator 为表头下方的分隔线。
var Separator = strings.Repeat("-", 63)

// Renderer 将 BenchmarkRow 逐行渲染到输出。
// 调用顺序：Begin → Emit* → Flush。
type Renderer interface {
	Begin() error
	Emit(row contract.BenchmarkRow) error
	Flush() error
}

// New 按格式名构造渲染器（table|yaml）。
func New(format string, w io.Writer) (Renderer, error) {
	bw := bufio.NewWriter(w)
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "table":
		return &table{w: bw}, nil
	case "yaml":
		return &yamlRows{w: bw}, nil
	default:
		return nil, fmt.Errorf("%w: unknown report format %q", contract.ErrInvalidInput, format)
	}
}

// FormatRow 返回单行表格文本（含换行）。
func FormatRow(row contract.BenchmarkRow) string {
	return fmt.Sprintf(rowFormat, row.Size, row.Algorithm, row.Result.String(), row.Elapsed.Milliseconds())
}

type table struct{ w *bufio.Writer }

func (t *table) Begin() error {
	if _, err := fmt.Fprintf(t.w, headerFormat, Header[0], Header[1], Header[2], Header[3]); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(t.w, Separator); err != nil {
		return err
	}
	return t.w.Flush()
}

// Emit 每行立即冲刷，长时间运行时也能看到已完成的行。
func (t *table) Emit(row contract.BenchmarkRow) error {
	if _, err := t.w.WriteString(FormatRow(row)); err != nil {
		return err
	}
	return t.w.Flush()
}

func (t *table) Flush() error { return t.w.Flush() }

// yamlRow 为 YAML 输出的单条记录。
type yamlRow struct {
	Size      int    `yaml:"size"`
	Algorithm string `yaml:"algorithm"`
	Sum       int    `yaml:"sum"`
	Start     int    `yaml:"start"`
	End       int    `yaml:"end"`
	TimeMS    int64  `yaml:"time_ms"`
}

// yamlRows 逐行追加单元素序列；拼接后整体仍是一个合法的 YAML 序列。
type yamlRows struct{ w *bufio.Writer }

func (y *yamlRows) Begin() error { return nil }

func (y *yamlRows) Emit(row contract.BenchmarkRow) error {
	b, err := yaml.Marshal([]yamlRow{{
		Size:      row.Size,
		Algorithm: row.Algorithm,
		Sum:       row.Result.Sum,
		Start:     row.Result.Range.Start,
		End:       row.Result.Range.End,
		TimeMS:    row.Elapsed.Milliseconds(),
	}})
	if err != nil {
		return err
	}
	if _, err := y.w.Write(b); err != nil {
		return err
	}
	return y.w.Flush()
}

func (y *yamlRows) Flush() error { return y.w.Flush() }
