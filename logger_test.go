package shapes

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// captureLogs routes the package logger into a buffer for the rest of the test.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func TestLoggerSilentByDefault(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil after SetLogger(nil)")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("silent logger enabled for %v", level)
		}
	}
}

func TestRenderLogRecords(t *testing.T) {
	p := Pt(1, 1)
	tests := []struct {
		name  string
		level slog.Level
		items []Shape
		want  []string
		never []string
	}{
		{
			name:  "debug shows drawn shapes",
			level: slog.LevelDebug,
			items: []Shape{Pt(0, 0), NewCircle(Pt(5, 5), 2)},
			want:  []string{"drew shape", "kind=point", "kind=circle", "color=#ffffffff"},
		},
		{
			name:  "warn shows skipped shapes only",
			level: slog.LevelWarn,
			items: []Shape{Pt(0, 0), DeferredCube{p, p, p}, NewCircle(p, -1)},
			want:  []string{"skipping shape", "kind=cube", "kind=circle", "index=1", "index=2"},
			never: []string{"drew shape"},
		},
		{
			name:  "clean scene at warn is silent",
			level: slog.LevelWarn,
			items: []Shape{Ln(Pt(0, 0), Pt(3, 3)), NewTriangle(Pt(0, 0), Pt(4, 0), Pt(0, 4))},
			never: []string{"shapes:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t, tt.level)
			var rec recordSink
			_ = Render(&rec, tt.items)

			out := buf.String()
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("log output missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.never {
				if strings.Contains(out, s) {
					t.Errorf("log output unexpectedly contains %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestSetLoggerWhileRendering(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	scene := []Shape{NewCircle(Pt(10, 10), 8), Ln(Pt(0, 0), Pt(20, 5))}
	var wg sync.WaitGroup
	const goroutines = 50

	for range goroutines {
		wg.Add(2)
		go func() {
			defer wg.Done()
			var rec recordSink
			if err := Render(&rec, scene); err != nil {
				t.Errorf("Render: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkRenderSilentLogger(b *testing.B) {
	scene := []Shape{NewCircle(Pt(100, 100), 50), NewRectangle(Pt(0, 0), Pt(80, 40))}
	var rec recordSink
	b.ReportAllocs()
	for b.Loop() {
		rec.writes = rec.writes[:0]
		_ = Render(&rec, scene)
	}
}
