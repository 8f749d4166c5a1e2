package diag

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Terminal: 终端进度提示（非日志）。
// - 输出到提供的 io.Writer（默认 stderr），stdout 留给报表；
// - 每完成一个尺寸打印一行；着色交由 fatih/color（NO_COLOR/非 TTY 自动关闭）；
// - 写失败后进入禁用态为 no-op。
type Terminal struct {
	w       io.Writer
	enabled bool

	sizesTotal int
	sizesDone  int
	runStart   time.Time

	mu sync.Mutex
}

var (
	tagOK   = color.New(color.FgGreen, color.Bold)
	tagFail = color.New(color.FgRed, color.Bold)
	tagRun  = color.New(color.FgCyan)
	dim     = color.New(color.Faint)
)

// NewTerminal 构造终端提示器。
// enabled=false 时总是 no-op。
func NewTerminal(w io.Writer, enabled bool) *Terminal {
	if w == nil {
		w = os.Stderr
	}
	return &Terminal{w: w, enabled: enabled}
}

// RunStart 记录运行上下文。
func (t *Terminal) RunStart(sizes, solvers int, seed int64) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.enabled {
		return
	}
	t.sizesTotal = sizes
	t.sizesDone = 0
	t.runStart = time.Now()
	t.println(tagRun.Sprint("[run]") + fmt.Sprintf(" 尺寸=%d | 算法=%d | seed=%d", sizes, solvers, seed))
}

// SizeFinish 完成一个尺寸。
func (t *Terminal) SizeFinish(size int, dur time.Duration) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.enabled {
		return
	}
	t.sizesDone++
	t.println(fmt.Sprintf("[size] n=%d | %d/%d | 用时 %s %s",
		size, t.sizesDone, t.sizesTotal, formatDur(dur), dim.Sprintf("(累计 %s)", formatSince(t.runStart))))
}

// RunFinish 结束总览。
func (t *Terminal) RunFinish(ok bool, dur time.Duration) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.enabled {
		return
	}
	tag := tagOK.Sprint("[ok]")
	if !ok {
		tag = tagFail.Sprint("[fail]")
	}
	t.println(fmt.Sprintf("%s 全部完成 | 尺寸 %d/%d | 总用时 %s", tag, t.sizesDone, t.sizesTotal, formatDur(dur)))
}

func (t *Terminal) println(s string) {
	if _, err := io.WriteString(t.w, s+"\n"); err != nil {
		// 写失败即禁用
		t.enabled = false
	}
}

func formatSince(t0 time.Time) string { return formatDur(time.Since(t0)) }

func formatDur(d time.Duration) string {
	if d < time.Second {
		ms := d.Milliseconds()
		if ms <= 0 {
			ms = 0
		}
		return fmt.Sprintf("%dms", ms)
	}
	// 秒，保留 1 位小数
	s := float64(d.Milliseconds()) / 1000.0
	return fmt.Sprintf("%.1fs", s)
}
