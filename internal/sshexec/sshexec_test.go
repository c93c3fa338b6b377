package sshexec

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// stubBinaries installs fake ssh and scp executables at the front of PATH.
// Each stub writes its arguments, one per line, to the file named by its
// *_ARGS_FILE environment variable.
func stubBinaries(t *testing.T) (sshArgs, scpArgs string) {
	t.Helper()
	binDir := t.TempDir()
	sshArgs = filepath.Join(binDir, "ssh-args")
	scpArgs = filepath.Join(binDir, "scp-args")

	sshStub := "#!/bin/sh\nprintf '%s\\n' \"$@\" > \"$SSH_ARGS_FILE\"\n"
	scpStub := "#!/bin/sh\nprintf '%s\\n' \"$@\" > \"$SCP_ARGS_FILE\"\n"
	if err := os.WriteFile(filepath.Join(binDir, "ssh"), []byte(sshStub), 0o755); err != nil {
		t.Fatalf("writing ssh stub: %v", err)
	}
	if err := os.WriteFile(filepath.Join(binDir, "scp"), []byte(scpStub), 0o755); err != nil {
		t.Fatalf("writing scp stub: %v", err)
	}

	t.Setenv("SSH_ARGS_FILE", sshArgs)
	t.Setenv("SCP_ARGS_FILE", scpArgs)
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return sshArgs, scpArgs
}

func recordedArgs(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading recorded args: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestRun(t *testing.T) {
	sshArgs, _ := stubBinaries(t)

	client := New("user@web.example.com")
	if _, err := client.Run(context.Background(), "mkdir", "-p", "/srv/www/notes"); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	got := recordedArgs(t, sshArgs)
	want := []string{"user@web.example.com", "mkdir", "-p", "/srv/www/notes"}
	if len(got) != len(want) {
		t.Fatalf("args = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("arg[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRun_Output(t *testing.T) {
	binDir := t.TempDir()
	stub := "#!/bin/sh\necho remote-output\n"
	if err := os.WriteFile(filepath.Join(binDir, "ssh"), []byte(stub), 0o755); err != nil {
		t.Fatalf("writing ssh stub: %v", err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	out, err := New("user@host").Run(context.Background(), "hostname")
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if strings.TrimSpace(out) != "remote-output" {
		t.Errorf("output = %q, want remote-output", out)
	}
}

func TestRun_FailureIncludesStderr(t *testing.T) {
	binDir := t.TempDir()
	stub := "#!/bin/sh\necho 'Permission denied (publickey)' >&2\nexit 255\n"
	if err := os.WriteFile(filepath.Join(binDir, "ssh"), []byte(stub), 0o755); err != nil {
		t.Fatalf("writing ssh stub: %v", err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	_, err := New("user@host").Run(context.Background(), "true")
	if err == nil {
		t.Fatal("expected error from failing ssh")
	}
	if !strings.Contains(err.Error(), "Permission denied") {
		t.Errorf("error = %q, want stderr folded in", err)
	}
}

func TestCopy(t *testing.T) {
	_, scpArgs := stubBinaries(t)

	client := New("user@web.example.com")
	if err := client.Copy(context.Background(), "/tmp/page.html", "/srv/www/notes/index.html"); err != nil {
		t.Fatalf("Copy error: %v", err)
	}

	got := recordedArgs(t, scpArgs)
	want := []string{"/tmp/page.html", "user@web.example.com:/srv/www/notes/index.html"}
	if len(got) != len(want) {
		t.Fatalf("args = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("arg[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAvailable(t *testing.T) {
	stubBinaries(t)
	if err := Available(); err != nil {
		t.Errorf("Available error: %v", err)
	}
}

func TestAvailable_Missing(t *testing.T) {
	binDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(binDir, "ssh"), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("writing ssh stub: %v", err)
	}
	t.Setenv("PATH", binDir)

	err := Available()
	if err == nil {
		t.Fatal("expected error with scp missing")
	}
	if !strings.Contains(err.Error(), "scp") {
		t.Errorf("error = %q, want mention of scp", err)
	}
}
