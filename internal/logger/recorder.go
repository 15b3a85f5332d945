// internal/logger/recorder.go
package logger

import "sync"

// Entry is one recorded log call.
type Entry struct {
	Level         Level
	Msg           string
	KeysAndValues []any
}

// Recorder is an in-memory Logger for tests. Children created by With
// record into the same slice and prepend their context pairs.
type Recorder struct {
	mu      *sync.Mutex
	entries *[]Entry
	ctx     []any
	level   Level
}

var _ Logger = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{mu: &sync.Mutex{}, entries: &[]Entry{}, level: DebugLevel}
}

func (r *Recorder) add(level Level, msg string, kv []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if level < r.level {
		return
	}
	all := make([]any, 0, len(r.ctx)+len(kv))
	all = append(all, r.ctx...)
	all = append(all, kv...)
	*r.entries = append(*r.entries, Entry{Level: level, Msg: msg, KeysAndValues: all})
}

func (r *Recorder) Debug(msg string, kv ...any) { r.add(DebugLevel, msg, kv) }
func (r *Recorder) Info(msg string, kv ...any)  { r.add(InfoLevel, msg, kv) }
func (r *Recorder) Warn(msg string, kv ...any)  { r.add(WarnLevel, msg, kv) }
func (r *Recorder) Error(msg string, kv ...any) { r.add(ErrorLevel, msg, kv) }
func (r *Recorder) Fatal(msg string, kv ...any) { r.add(FatalLevel, msg, kv) }

func (r *Recorder) With(keyValues ...any) Logger {
	ctx := make([]any, 0, len(r.ctx)+len(keyValues))
	ctx = append(ctx, r.ctx...)
	ctx = append(ctx, keyValues...)
	return &Recorder{mu: r.mu, entries: r.entries, ctx: ctx, level: r.level}
}

func (r *Recorder) Level() Level { return r.level }

func (r *Recorder) SetLevel(level Level) {
	r.mu.Lock()
	r.level = level
	r.mu.Unlock()
}

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(*r.entries))
	copy(out, *r.entries)
	return out
}

// Messages returns the messages recorded at exactly level.
func (r *Recorder) Messages(level Level) []string {
	var out []string
	for _, e := range r.Entries() {
		if e.Level == level {
			out = append(out, e.Msg)
		}
	}
	return out
}
