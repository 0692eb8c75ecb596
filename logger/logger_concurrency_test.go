package logger

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestConcurrency_TwoWriters runs two goroutines printing "A" and "B" 1000 times each
// and checks every line arrives whole.
func TestConcurrency_TwoWriters(t *testing.T) {
	l, stdoutBuf, _ := newTestLogger("")

	const iterations = 1000

	var wg sync.WaitGroup
	for _, text := range []string{"A", "B"} {
		wg.Add(1)
		go func(text string) {
			defer wg.Done()
			for range iterations {
				l.Print(text)
			}
		}(text)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(stdoutBuf.String(), "\n"), "\n")
	require.Len(t, lines, 2*iterations)

	counts := map[string]int{}
	for i, line := range lines {
		if line != "A" && line != "B" {
			t.Fatalf("line %d is corrupted: %q", i, line)
		}
		counts[line]++
	}
	require.Equal(t, iterations, counts["A"])
	require.Equal(t, iterations, counts["B"])
}

// TestConcurrency_DistinctLines verifies that N goroutines each writing a distinct
// long line produce N intact lines.
func TestConcurrency_DistinctLines(t *testing.T) {
	l, stdoutBuf, stderrBuf := newTestLogger("")

	const numGoroutines = 200

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := range numGoroutines {
		go func(id int) {
			defer wg.Done()
			l.Print(lineFor(id))
			l.Error(lineFor(id))
		}(i)
	}
	wg.Wait()

	for _, buf := range []*bytes.Buffer{stdoutBuf, stderrBuf} {
		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, numGoroutines)

		seen := make(map[string]bool, numGoroutines)
		for _, line := range lines {
			seen[line] = true
		}
		for i := range numGoroutines {
			require.True(t, seen[lineFor(i)], "missing or torn line for goroutine %d", i)
		}
	}
}

func lineFor(id int) string {
	return fmt.Sprintf("goroutine-%d-%s", id, strings.Repeat("x", 512))
}

// blockingWriter holds every write until release is closed.
type blockingWriter struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
	buf     bytes.Buffer
}

func (w *blockingWriter) Write(p []byte) (int, error) {
	w.once.Do(func() { close(w.entered) })
	<-w.release
	return w.buf.Write(p)
}

// TestConcurrency_SinksAreIndependent checks that a stalled info write does not
// block error output.
func TestConcurrency_SinksAreIndependent(t *testing.T) {
	info := &blockingWriter{entered: make(chan struct{}), release: make(chan struct{})}
	var stderrBuf bytes.Buffer
	l := newLogger(info, &stderrBuf, strings.NewReader(""))

	done := make(chan struct{})
	go func() {
		defer close(done)
		l.Print("stalled")
	}()
	<-info.entered

	errDone := make(chan struct{})
	go func() {
		defer close(errDone)
		l.Error("not blocked")
	}()

	select {
	case <-errDone:
	case <-time.After(5 * time.Second):
		t.Fatal("error write blocked behind a stalled info write")
	}
	require.Equal(t, "not blocked\n", stderrBuf.String())

	close(info.release)
	<-done
	require.Equal(t, "stalled\n", info.buf.String())
}

// TestConcurrency_LevelChanges flips the level while writers run. Every line that
// makes it out must be intact.
func TestConcurrency_LevelChanges(t *testing.T) {
	l, stdoutBuf, _ := newTestLogger("")

	stop := make(chan struct{})
	var flipper sync.WaitGroup
	flipper.Add(1)
	go func() {
		defer flipper.Done()
		levels := AllLevels()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
				l.SetLevel(levels[i%len(levels)])
			}
		}
	}()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 500 {
				l.Print("normal")
				l.Printv("verbose")
			}
		}()
	}
	wg.Wait()
	close(stop)
	flipper.Wait()

	for _, line := range strings.Split(strings.TrimSuffix(stdoutBuf.String(), "\n"), "\n") {
		if line == "" {
			continue
		}
		require.Contains(t, []string{"normal", "verbose"}, line)
	}
}

// TestConcurrency_RedirectWhileWriting switches the info sink to a file while
// writers are active. Every line must land whole on exactly one target.
func TestConcurrency_RedirectWhileWriting(t *testing.T) {
	l, stdoutBuf, _ := newTestLogger("")
	defer l.Close()

	logPath := filepath.Join(t.TempDir(), "switch.log")

	const numGoroutines = 16
	const perGoroutine = 200

	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := range numGoroutines {
		go func(id int) {
			defer wg.Done()
			<-start
			for j := range perGoroutine {
				l.Print(fmt.Sprintf("w%d-%d", id, j))
			}
		}(i)
	}

	close(start)
	require.NoError(t, l.UseInfoFile(logPath))
	wg.Wait()

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	all := strings.TrimSuffix(stdoutBuf.String(), "\n") + "\n" + strings.TrimSuffix(string(content), "\n")
	var lines []string
	for _, line := range strings.Split(all, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	require.Len(t, lines, numGoroutines*perGoroutine)
	for _, line := range lines {
		require.Regexp(t, `^w\d+-\d+$`, line)
	}
}

// TestConcurrency_OffSkipsInfoLock stalls a Print while holding the info lock, then
// turns output off. Later Print and Printv calls must return without waiting for it.
func TestConcurrency_OffSkipsInfoLock(t *testing.T) {
	info := &blockingWriter{entered: make(chan struct{}), release: make(chan struct{})}
	l := newLogger(info, &bytes.Buffer{}, strings.NewReader(""))

	stalled := make(chan struct{})
	go func() {
		defer close(stalled)
		l.Print("stalled")
	}()
	<-info.entered

	l.SetLevel(OffLevel)

	done := make(chan struct{})
	go func() {
		defer close(done)
		l.Print("dropped")
		l.Printv("dropped")
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Print at OffLevel waited for the info lock")
	}

	close(info.release)
	<-stalled
	require.Equal(t, "stalled\n", info.buf.String())
}
