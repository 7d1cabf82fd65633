package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/rofiflow/internal/logging"
	"github.com/aretw0/rofiflow/internal/presentation/tui"
	"github.com/aretw0/rofiflow/pkg/adapters/file"
	"github.com/aretw0/rofiflow/pkg/adapters/memory"
	"github.com/aretw0/rofiflow/pkg/adapters/process"
	"github.com/aretw0/rofiflow/pkg/adapters/redis"
	"github.com/aretw0/rofiflow/pkg/domain"
	"github.com/aretw0/rofiflow/pkg/todo"
	"github.com/aretw0/rofiflow/pkg/window"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv(sel *memory.Selector) *Env {
	return &Env{Logger: logging.NewNop(), Selector: sel}
}

func TestCommands(t *testing.T) {
	ctx := context.Background()

	t.Run("Pick", func(t *testing.T) {
		sel := memory.Picks("b")
		out := Pick(ctx, testEnv(sel), "choose", []string{"a", "b"})
		assert.Equal(t, domain.Selection{Value: "b"}, out)

		call, _ := sel.LastCall()
		assert.Equal(t, []string{"a", "b", "", "[cancel]"}, call.Options)
	})

	t.Run("Actions", func(t *testing.T) {
		out := Actions(ctx, testEnv(memory.Picks("rename")), "do", "file.txt", []string{"open", "delete"})
		assert.Equal(t, domain.Action{Value: "rename"}, out)
	})

	t.Run("Entry", func(t *testing.T) {
		out := Entry(ctx, testEnv(memory.NewSelector(memory.Reply{Raw: " typed \n"})), "say")
		assert.Equal(t, domain.Selection{Value: "typed"}, out)
	})
}

func TestReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("a\r\n\n  \nb c\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b c"}, lines)
}

func TestWriteOutcome(t *testing.T) {
	styler := tui.NewStyler(termenv.Ascii)

	var stdout, stderr bytes.Buffer
	code := WriteOutcome(&stdout, &stderr, styler, domain.Selection{Value: "x"}, false)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "x\n", stdout.String())
	assert.Empty(t, stderr.String())

	stdout.Reset()
	code = WriteOutcome(&stdout, &stderr, styler, domain.Error{Message: "boom"}, false)
	assert.Equal(t, ExitError, code)
	assert.Empty(t, stdout.String())
	assert.Equal(t, "error: boom\n", stderr.String())

	stderr.Reset()
	code = WriteOutcome(&stdout, &stderr, styler, domain.Action{Value: "go"}, true)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "action: go\n", stderr.String())

	assert.Equal(t, ExitCancelled, ExitCode(domain.Cancel{}))
	assert.Equal(t, ExitCancelled, ExitCode(domain.Exit{}))
	assert.Equal(t, ExitOK, ExitCode(domain.Blank{}))
}

func TestNewStore(t *testing.T) {
	t.Run("Memory", func(t *testing.T) {
		store, closeFn, err := NewStore(StoreOptions{Kind: StoreMemory})
		require.NoError(t, err)
		assert.IsType(t, &memory.TodoStore{}, store)
		assert.NoError(t, closeFn())
	})

	t.Run("File Is Default", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "todo.json")
		store, _, err := NewStore(StoreOptions{Path: path})
		require.NoError(t, err)
		require.IsType(t, &file.Store{}, store)
		assert.Equal(t, path, store.(*file.Store).Path)
	})

	t.Run("Redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		store, closeFn, err := NewStore(StoreOptions{Kind: StoreRedis, RedisAddr: mr.Addr(), List: "work"})
		require.NoError(t, err)
		defer closeFn()

		require.NoError(t, store.Add(context.Background(), todo.New("x")))
		assert.True(t, mr.Exists(redis.DefaultPrefix+"work"))
	})

	t.Run("Unknown", func(t *testing.T) {
		_, _, err := NewStore(StoreOptions{Kind: "sqlite"})
		assert.Error(t, err)
	})
}

func TestTodoCommands(t *testing.T) {
	ctx := context.Background()
	store := memory.NewTodoStore(todo.New("a"))

	err := RunTodo(ctx, testEnv(memory.Picks("a", "[exit]")), store)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ListTodo(ctx, store, &buf, nil))
	assert.Equal(t, "# Today's Todo list\n\n- [x] a\n", buf.String())

	render := func(md string) (string, error) { return strings.ToUpper(md), nil }
	buf.Reset()
	require.NoError(t, ListTodo(ctx, store, &buf, render))
	assert.Contains(t, buf.String(), "TODAY'S TODO LIST")
}

func TestRunTodo_Interrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, RunTodo(ctx, testEnv(memory.Picks()), memory.NewTodoStore()))
}

func TestCreateRunnerOptions(t *testing.T) {
	w := window.New("p")

	t.Run("Defaults", func(t *testing.T) {
		opts, err := createRunnerOptions(Options{ProfilePath: filepath.Join(t.TempDir(), "missing.yaml")})
		require.NoError(t, err)
		r := process.NewRunner(opts...)
		assert.Equal(t, "rofi", r.Command())
		assert.Equal(t, "-dmenu", r.CommandLine(w)[0])
	})

	t.Run("Command Flag Wins Over Profile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "profile.yaml")
		require.NoError(t, os.WriteFile(path, []byte("command: dmenu\n"), 0644))

		opts, err := createRunnerOptions(Options{ProfilePath: path, Command: "wofi --dmenu --insensitive"})
		require.NoError(t, err)
		r := process.NewRunner(opts...)
		assert.Equal(t, "wofi", r.Command())
		assert.Equal(t, []string{"--dmenu", "--insensitive"}, r.CommandLine(w)[:2])
	})

	t.Run("Bare Rofi Keeps Dmenu", func(t *testing.T) {
		opts, err := createRunnerOptions(Options{ProfilePath: filepath.Join(t.TempDir(), "missing.yaml"), Command: "rofi"})
		require.NoError(t, err)
		assert.Equal(t, "-dmenu", process.NewRunner(opts...).CommandLine(w)[0])
	})

	t.Run("Bad Command", func(t *testing.T) {
		_, err := createRunnerOptions(Options{ProfilePath: filepath.Join(t.TempDir(), "missing.yaml"), Command: `"unterminated`})
		assert.Error(t, err)
	})
}

func TestNewEnv_Metrics(t *testing.T) {
	env, err := NewEnv(Options{
		ProfilePath: filepath.Join(t.TempDir(), "missing.yaml"),
		MetricsAddr: "127.0.0.1:0",
	})
	require.NoError(t, err)
	defer env.Close()
	require.NotNil(t, env.Metrics)

	env.Hooks.EmitOutcome(context.Background(), &domain.OutcomeEvent{Component: "ItemList", Outcome: domain.Cancel{}})
	assert.NotNil(t, env.Selector)

	resp, err := http.Get("http://" + env.MetricsAddr() + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `rofiflow_outcomes_total{component="ItemList",kind="cancel"} 1`)
}

func TestEnv_Close(t *testing.T) {
	env := &Env{Logger: logging.NewNop()}
	var closed []int
	env.closers = append(env.closers,
		func() error { closed = append(closed, 1); return nil },
		func() error { closed = append(closed, 2); return io.ErrClosedPipe },
	)
	assert.ErrorIs(t, env.Close(), io.ErrClosedPipe)
	assert.Equal(t, []int{2, 1}, closed)
	assert.NoError(t, env.Close())
}
