package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	admin    bool

	calls      []string
	statusArgs []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isAdmin() bool    { return f.admin }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	f.admin = false
	return nil
}
func (f *fakeExec) Submit(ctx context.Context) error {
	f.calls = append(f.calls, "submit")
	return nil
}
func (f *fakeExec) ListMine(ctx context.Context) error {
	f.calls = append(f.calls, "list")
	return nil
}
func (f *fakeExec) ListAll(ctx context.Context) error {
	f.calls = append(f.calls, "all")
	return nil
}
func (f *fakeExec) UpdateStatus(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "status")
	f.statusArgs = args
	return nil
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		for _, x := range a {
			if s, ok := x.(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"submit",
		"list",
		"logout",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	want := []string{"login", "submit", "list", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i, c := range want {
		if exec.calls[i] != c {
			t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
		}
	}
}

func TestRunREPL_GatesAuthenticatedCommands(t *testing.T) {
	lines := silencePrintln(t)

	input := strings.NewReader("submit\nlist\nall\nstatus x Resolved\nexit\n")
	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("anonymous user must not reach the model, got calls %v", exec.calls)
	}

	var notices int
	for _, l := range *lines {
		if strings.Contains(l, "login") || strings.Contains(l, "Login") || strings.Contains(l, "Admin access only") {
			notices++
		}
	}
	if notices < 4 {
		t.Fatalf("expected a rejection notice per gated command, got lines: %v", *lines)
	}
}

func TestRunREPL_GatesAdminCommandsForRegularUser(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("all\nstatus c1 Resolved\nlist\nexit\n")
	exec := &fakeExec{loggedIn: true, admin: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "list" {
		t.Fatalf("regular user must only reach 'list', got %v", exec.calls)
	}
}

func TestRunREPL_AdminStatusArgs(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("status C-1 In Progress\nexit\n")
	exec := &fakeExec{loggedIn: true, admin: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "status" {
		t.Fatalf("expected one status call, got %v", exec.calls)
	}
	want := []string{"C-1", "In", "Progress"}
	if len(exec.statusArgs) != len(want) {
		t.Fatalf("args mismatch: got %v", exec.statusArgs)
	}
	for i := range want {
		if exec.statusArgs[i] != want[i] {
			t.Fatalf("args mismatch: got %v, want %v", exec.statusArgs, want)
		}
	}
}

func TestRunREPL_QuitAndEOF(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("quit\n")))
	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}

	// EOF without any command terminates the loop too
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("")))
}
