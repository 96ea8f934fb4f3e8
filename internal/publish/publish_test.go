package publish

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/log"
)

// fakeRunner records commands and fails those matching a prefix.
type fakeRunner struct {
	calls []string
	fail  map[string]error // keyed by "name arg0 arg1..." prefix
}

func (f *fakeRunner) Run(_ context.Context, _ string, name string, args ...string) (string, error) {
	line := name + " " + strings.Join(args, " ")
	f.calls = append(f.calls, line)
	for prefix, err := range f.fail {
		if strings.HasPrefix(line, prefix) {
			return "", err
		}
	}
	return "", nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func moduleDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "Level2", "Module3")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestBuildArgs(t *testing.T) {
	t.Parallel()

	got := buildRepoCreateArgs("League-Java/Level0-Module0")
	want := []string{"repo", "create", "League-Java/Level0-Module0", "--public", "-s", "."}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("repo create args = %v, want %v", got, want)
	}

	got = buildPushArgs("main")
	want = []string{"push", "-f", "--set-upstream", "origin", "main"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("push args = %v, want %v", got, want)
	}
}

func TestCreateAndPush(t *testing.T) {
	t.Parallel()

	t.Run("fresh directory is initialized then pushed", func(t *testing.T) {
		t.Parallel()
		dir := moduleDir(t)
		r := &fakeRunner{}
		p := &Publisher{Runner: r, Logger: quietLogger()}

		if err := p.CreateAndPush(context.Background(), dir); err != nil {
			t.Fatalf("CreateAndPush: %v", err)
		}
		want := []string{
			"git init",
			"git add -A",
			"git commit -a -m Initial commit",
			"gh repo create League-Java/Level2-Module3 --public -s .",
			"git remote get-url origin",
			"git push -f --set-upstream origin master",
		}
		if strings.Join(r.calls, "\n") != strings.Join(want, "\n") {
			t.Errorf("calls:\n%s\nwant:\n%s", strings.Join(r.calls, "\n"), strings.Join(want, "\n"))
		}
	})

	t.Run("existing repository skips init", func(t *testing.T) {
		t.Parallel()
		dir := moduleDir(t)
		if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
			t.Fatal(err)
		}
		r := &fakeRunner{}
		p := &Publisher{Org: "acme", Branch: "main", Runner: r, Logger: quietLogger()}

		if err := p.CreateAndPush(context.Background(), dir); err != nil {
			t.Fatalf("CreateAndPush: %v", err)
		}
		if r.calls[0] != "gh repo create acme/Level2-Module3 --public -s ." {
			t.Errorf("first call = %q", r.calls[0])
		}
		if last := r.calls[len(r.calls)-1]; last != "git push -f --set-upstream origin main" {
			t.Errorf("last call = %q", last)
		}
	})

	t.Run("already exists is tolerated and origin added", func(t *testing.T) {
		t.Parallel()
		dir := moduleDir(t)
		if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
			t.Fatal(err)
		}
		r := &fakeRunner{fail: map[string]error{
			"gh repo create": &CommandError{Name: "gh", Stderr: "GraphQL: Name already exists on this account", Err: errors.New("exit status 1")},
			"git remote get-url": &CommandError{Name: "git", Err: errors.New("exit status 2")},
		}}
		p := &Publisher{Runner: r, Logger: quietLogger()}

		if err := p.CreateAndPush(context.Background(), dir); err != nil {
			t.Fatalf("CreateAndPush: %v", err)
		}
		joined := strings.Join(r.calls, "\n")
		if !strings.Contains(joined, "git remote add origin https://github.com/League-Java/Level2-Module3.git") {
			t.Errorf("origin not added:\n%s", joined)
		}
		if !strings.HasSuffix(joined, "git push -f --set-upstream origin master") {
			t.Errorf("push missing:\n%s", joined)
		}
	})

	t.Run("other gh failures abort", func(t *testing.T) {
		t.Parallel()
		dir := moduleDir(t)
		r := &fakeRunner{fail: map[string]error{
			"gh repo create": &CommandError{Name: "gh", Stderr: "HTTP 401: Bad credentials", Err: errors.New("exit status 1")},
		}}
		p := &Publisher{Runner: r, Logger: quietLogger()}

		err := p.CreateAndPush(context.Background(), dir)
		var ce *CommandError
		if !errors.As(err, &ce) {
			t.Fatalf("err = %v, want *CommandError", err)
		}
		for _, c := range r.calls {
			if strings.HasPrefix(c, "git push") {
				t.Error("pushed after failed repo create")
			}
		}
	})

	t.Run("commit failure aborts", func(t *testing.T) {
		t.Parallel()
		dir := moduleDir(t)
		r := &fakeRunner{fail: map[string]error{
			"git commit": &CommandError{Name: "git", Err: errors.New("exit status 1")},
		}}
		p := &Publisher{Runner: r, Logger: quietLogger()}
		if err := p.CreateAndPush(context.Background(), dir); err == nil {
			t.Fatal("expected error")
		}
		if len(r.calls) != 3 {
			t.Errorf("calls = %v", r.calls)
		}
	})
}

func TestMarkTemplate(t *testing.T) {
	t.Parallel()

	t.Run("patches repository with token", func(t *testing.T) {
		t.Parallel()
		var mu sync.Mutex
		var gotPath, gotAuth, gotMethod string
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			defer mu.Unlock()
			gotMethod = r.Method
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		p := &Publisher{
			Token:  "s3cret",
			GitHub: NewGitHubClient(WithBaseURL(srv.URL), WithHTTPClient(srv.Client())),
			Logger: quietLogger(),
		}
		if err := p.MarkTemplate(context.Background(), moduleDir(t)); err != nil {
			t.Fatalf("MarkTemplate: %v", err)
		}
		mu.Lock()
		defer mu.Unlock()
		if gotMethod != http.MethodPatch {
			t.Errorf("method = %s", gotMethod)
		}
		if gotPath != "/repos/League-Java/Level2-Module3" {
			t.Errorf("path = %s", gotPath)
		}
		if gotAuth != "token s3cret" {
			t.Errorf("Authorization = %q", gotAuth)
		}
		if gotBody["is_template"] != true {
			t.Errorf("body = %v", gotBody)
		}
	})

	t.Run("non-200 is logged not returned", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
		}))
		defer srv.Close()

		var logs strings.Builder
		p := &Publisher{
			Token:  "t",
			GitHub: NewGitHubClient(WithBaseURL(srv.URL)),
			Logger: log.New(&logs),
		}
		if err := p.MarkTemplate(context.Background(), moduleDir(t)); err != nil {
			t.Fatalf("MarkTemplate: %v", err)
		}
		if !strings.Contains(logs.String(), "404") || !strings.Contains(logs.String(), "Not Found") {
			t.Errorf("log missing status/response: %q", logs.String())
		}
	})

	t.Run("missing token fails before any request", func(t *testing.T) {
		t.Parallel()
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
		}))
		defer srv.Close()

		p := &Publisher{GitHub: NewGitHubClient(WithBaseURL(srv.URL)), Logger: quietLogger()}
		err := p.MarkTemplate(context.Background(), moduleDir(t))
		if !errors.Is(err, ErrMissingToken) {
			t.Fatalf("err = %v, want ErrMissingToken", err)
		}
		if hits.Load() != 0 {
			t.Errorf("server hit %d times", hits.Load())
		}
	})

	t.Run("malformed module path", func(t *testing.T) {
		t.Parallel()
		p := &Publisher{Token: "t", Logger: quietLogger()}
		err := p.MarkTemplate(context.Background(), t.TempDir())
		if err == nil || !strings.Contains(err.Error(), "malformed module path") {
			t.Fatalf("err = %v, want malformed module path", err)
		}
	})
}

func TestExecRunner(t *testing.T) {
	t.Parallel()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	r := &ExecRunner{Logger: quietLogger()}
	if _, err := r.Run(context.Background(), dir, "git", "init"); err != nil {
		t.Fatalf("git init: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		t.Errorf("git init ran outside dir: %v", err)
	}

	_, err := r.Run(context.Background(), dir, "git", "remote", "get-url", "origin")
	var ce *CommandError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want *CommandError", err)
	}
	if ce.Stderr == "" {
		t.Error("stderr not captured")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	p := &Publisher{
		GitPath: "modkit-no-such-git",
		GhPath:  "modkit-no-such-gh",
	}
	err := p.Validate()
	if err == nil {
		t.Fatal("expected error for missing binaries")
	}
	for _, bin := range p.Tools() {
		if !strings.Contains(err.Error(), bin) {
			t.Errorf("error %q does not mention %s", err, bin)
		}
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("err = %v, want exec.ErrNotFound", err)
	}
}

func TestToolsDefaults(t *testing.T) {
	t.Parallel()

	got := (&Publisher{}).Tools()
	if len(got) != 2 || got[0] != "git" || got[1] != "gh" {
		t.Errorf("Tools() = %v, want [git gh]", got)
	}
}
