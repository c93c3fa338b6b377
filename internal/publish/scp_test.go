package publish

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/herald/internal/config"
)

// stubRecordingTools installs ssh and scp stubs that append each invocation
// as "<tool> <args...>" to a shared record file, preserving call order.
func stubRecordingTools(t *testing.T) string {
	t.Helper()
	binDir := t.TempDir()
	record := filepath.Join(binDir, "record")

	sshStub := "#!/bin/sh\necho \"ssh $*\" >> \"$PUBLISH_RECORD\"\n"
	scpStub := "#!/bin/sh\necho \"scp $*\" >> \"$PUBLISH_RECORD\"\n"
	if err := os.WriteFile(filepath.Join(binDir, "ssh"), []byte(sshStub), 0o755); err != nil {
		t.Fatalf("writing ssh stub: %v", err)
	}
	if err := os.WriteFile(filepath.Join(binDir, "scp"), []byte(scpStub), 0o755); err != nil {
		t.Fatalf("writing scp stub: %v", err)
	}

	t.Setenv("PUBLISH_RECORD", record)
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return record
}

func recordedCalls(t *testing.T, record string) []string {
	t.Helper()
	data, err := os.ReadFile(record)
	if err != nil {
		t.Fatalf("reading record: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func localPage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte("<html><body>hi</body></html>"), 0o644); err != nil {
		t.Fatalf("writing page: %v", err)
	}
	return path
}

func TestSCPPublish(t *testing.T) {
	record := stubRecordingTools(t)
	page := localPage(t)

	cfg := config.Config{SCP: &config.SCPConfig{Host: "user@example.com", DestinationPath: "/var/www"}}
	var out bytes.Buffer
	pub, err := New(config.ProviderSCP, cfg, &out)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	location, err := pub.Publish(context.Background(), page, "demo")
	if err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if location != "/var/www/demo/index.html" {
		t.Errorf("location = %q, want /var/www/demo/index.html", location)
	}

	calls := recordedCalls(t, record)
	want := []string{
		"ssh user@example.com mkdir -p /var/www/demo",
		"scp " + page + " user@example.com:/var/www/demo/index.html",
		"ssh user@example.com chmod 444 /var/www/demo/index.html",
	}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call[%d] = %q, want %q", i, calls[i], want[i])
		}
	}

	progress := out.String()
	if !strings.Contains(progress, "--> [scp] connecting to user@example.com...") {
		t.Errorf("progress missing connect line: %q", progress)
	}
	if !strings.Contains(progress, "--> [scp] uploading page.html...") {
		t.Errorf("progress missing upload line: %q", progress)
	}
}

func TestSCPPublish_MkdirFails(t *testing.T) {
	binDir := t.TempDir()
	sshStub := "#!/bin/sh\necho 'Connection refused' >&2\nexit 255\n"
	if err := os.WriteFile(filepath.Join(binDir, "ssh"), []byte(sshStub), 0o755); err != nil {
		t.Fatalf("writing ssh stub: %v", err)
	}
	scpRecord := filepath.Join(binDir, "scp-called")
	scpStub := "#!/bin/sh\ntouch \"" + scpRecord + "\"\n"
	if err := os.WriteFile(filepath.Join(binDir, "scp"), []byte(scpStub), 0o755); err != nil {
		t.Fatalf("writing scp stub: %v", err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	cfg := config.Config{SCP: &config.SCPConfig{Host: "user@example.com", DestinationPath: "/var/www"}}
	var out bytes.Buffer
	pub, err := New(config.ProviderSCP, cfg, &out)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	_, err = pub.Publish(context.Background(), localPage(t), "demo")
	if err == nil {
		t.Fatal("expected error from failing mkdir")
	}
	if !IsTransportError(err) {
		t.Errorf("IsTransportError = false for %v", err)
	}
	if !strings.Contains(err.Error(), "Connection refused") {
		t.Errorf("error = %q, want remote stderr folded in", err)
	}
	if _, statErr := os.Stat(scpRecord); statErr == nil {
		t.Error("scp ran after mkdir failed")
	}
}

func TestSCPPublish_CopyFails(t *testing.T) {
	binDir := t.TempDir()
	record := filepath.Join(binDir, "record")
	sshStub := "#!/bin/sh\necho \"ssh $*\" >> \"$PUBLISH_RECORD\"\n"
	scpStub := "#!/bin/sh\necho 'No space left on device' >&2\nexit 1\n"
	if err := os.WriteFile(filepath.Join(binDir, "ssh"), []byte(sshStub), 0o755); err != nil {
		t.Fatalf("writing ssh stub: %v", err)
	}
	if err := os.WriteFile(filepath.Join(binDir, "scp"), []byte(scpStub), 0o755); err != nil {
		t.Fatalf("writing scp stub: %v", err)
	}
	t.Setenv("PUBLISH_RECORD", record)
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	cfg := config.Config{SCP: &config.SCPConfig{Host: "user@example.com", DestinationPath: "/var/www"}}
	pub, err := New(config.ProviderSCP, cfg, new(bytes.Buffer))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	_, err = pub.Publish(context.Background(), localPage(t), "demo")
	if err == nil {
		t.Fatal("expected error from failing scp")
	}
	if !IsTransportError(err) {
		t.Errorf("IsTransportError = false for %v", err)
	}
	if !strings.Contains(err.Error(), "uploading page.html") {
		t.Errorf("error = %q, want step context", err)
	}

	// mkdir ran, chmod did not
	calls := recordedCalls(t, record)
	if len(calls) != 1 || !strings.Contains(calls[0], "mkdir -p") {
		t.Errorf("ssh calls = %v, want only the mkdir step", calls)
	}
}
