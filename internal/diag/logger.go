package diag

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// 级别定义
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// ParseLevel 解析级别名；未知值回落为 info。
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "warn":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

// LineWriter 为日志落地目标：每次写入一整行（不含换行）。
type LineWriter interface {
	WriteLine(b []byte) error
}

// streamSink 将行写入任意 io.Writer（默认 stderr）。
type streamSink struct{ w io.Writer }

func (s streamSink) WriteLine(b []byte) error {
	_, err := s.w.Write(append(b, '\n'))
	return err
}

// StreamSink 包装 io.Writer 为 LineWriter。
func StreamSink(w io.Writer) LineWriter { return streamSink{w: w} }

// Logger 为最小结构化日志器：单行 JSON；支持级别过滤。
// 报表独占 stdout，日志只写 sink（默认 stderr）。
type Logger struct {
	corrID string
	level  Level
	sink   LineWriter
	mu     sync.Mutex
}

// NewLogger 以 level 初始化；sink 为 nil 时写 stderr。
func NewLogger(corrID, level string, sink LineWriter) *Logger {
	if sink == nil {
		sink = StreamSink(os.Stderr)
	}
	return &Logger{corrID: corrID, level: ParseLevel(level), sink: sink}
}

// NewCorrID 生成单次运行的关联 ID（UUIDv4）。
func NewCorrID() string { return uuid.NewString() }

// CorrID 返回关联 ID。
func (l *Logger) CorrID() string {
	if l == nil {
		return ""
	}
	return l.corrID
}

// Event 为标准事件结构。
type Event struct {
	Level  string            `json:"level"`
	TS     string            `json:"ts"`
	CorrID string            `json:"corr_id"`
	Comp   string            `json:"comp"`
	Stage  string            `json:"stage"` // start|finish|error|point
	Code   string            `json:"code,omitempty"`
	DurMS  int64             `json:"dur_ms,omitempty"`
	Count  int64             `json:"count,omitempty"`
	Size   int               `json:"size,omitempty"`
	Algo   string            `json:"algo,omitempty"`
	Msg    string            `json:"msg"`
	KV     map[string]string `json:"kv,omitempty"`
}

func (l *Logger) log(lv Level, ev Event) {
	if l == nil || lv < l.level {
		return
	}
	ev.Level = lv.String()
	ev.TS = NowUTC()
	ev.CorrID = l.corrID
	b, _ := json.Marshal(ev)
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.sink.WriteLine(b); err != nil {
		// 后备：写 stderr
		fmt.Fprintf(os.Stderr, "logger sink error: %v\n", err)
		_, _ = os.Stderr.Write(append(b, '\n'))
	}
}

// StartSize 记录某一尺寸的 start。
func (l *Logger) StartSize(comp, msg string, size int) *Timer {
	l.log(Info, Event{Comp: comp, Stage: "start", Size: size, Msg: msg})
	return &Timer{l: l, comp: comp, size: size, t0: time.Now()}
}

// StartWithKV 记录带键值的 start。
func (l *Logger) StartWithKV(comp, msg string, kv map[string]string) *Timer {
	l.log(Info, Event{Comp: comp, Stage: "start", Msg: msg, KV: kv})
	return &Timer{l: l, comp: comp, t0: time.Now()}
}

// Error 记录 error 事件。
func (l *Logger) Error(comp, code, msg string, durSince *time.Time) {
	l.ErrorWithKV(comp, code, msg, durSince, nil)
}

// ErrorWithKV 支持附带键值对（例如出错的尺寸与算法）。
func (l *Logger) ErrorWithKV(comp, code, msg string, durSince *time.Time, kv map[string]string) {
	var dur int64
	if durSince != nil {
		dur = time.Since(*durSince).Milliseconds()
	}
	l.log(Error, Event{Comp: comp, Stage: "error", Code: code, DurMS: dur, Msg: msg, KV: kv})
}

// Warn 记录告警点事件。
func (l *Logger) Warn(comp, msg string, kv map[string]string) {
	l.log(Warn, Event{Comp: comp, Stage: "point", Msg: msg, KV: kv})
}

// Observe 输出单次 (size, algo) 观测（仅 level=debug 时生效）。
func (l *Logger) Observe(comp string, size int, algo string, dur time.Duration, kv map[string]string) {
	l.log(Debug, Event{Comp: comp, Stage: "point", Size: size, Algo: algo, DurMS: dur.Milliseconds(), Msg: "observe", KV: kv})
}

// InfoFinish 在已有起点的情况下记录 finish。
func (l *Logger) InfoFinish(comp, msg string, start time.Time, count int64) {
	l.log(Info, Event{Comp: comp, Stage: "finish", DurMS: time.Since(start).Milliseconds(), Count: count, Msg: msg})
}

// Timer 用于 start→finish 计时。
type Timer struct {
	l    *Logger
	comp string
	size int
	t0   time.Time
}

// Finish 记录 finish；可选 count。
func (t *Timer) Finish(msg string, count int64) {
	if t == nil || t.l == nil {
		return
	}
	t.l.log(Info, Event{Comp: t.comp, Stage: "finish", DurMS: time.Since(t.t0).Milliseconds(), Count: count, Size: t.size, Msg: msg})
}
