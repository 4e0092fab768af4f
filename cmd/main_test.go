package main

import (
	"bytes"
	"context"
	"flag"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/mpetrov/linkstash/internal/config"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()

	if configPath != "config.env" {
		t.Errorf("expected config.env, got %s", configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()

	if configPath != "myconfig.env" {
		t.Errorf("expected myconfig.env, got %s", configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-28"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !bytes.Contains([]byte(output), []byte("v1.0.0")) ||
		!bytes.Contains([]byte(output), []byte("abcd1234")) ||
		!bytes.Contains([]byte(output), []byte("2026-08-28")) {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Starts the service on the in-memory backend, exercises one round trip,
// then cancels the context and expects a clean shutdown.
func TestRun_MemoryBackend(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping server test in short mode")
	}

	cfg := &config.Config{
		Address:      "127.0.0.1:8086",
		LogLevel:     "debug",
		RepoBackend:  config.BackendMemory,
		JWTSecretKey: "testsecret",
		JWTExp:       time.Minute,
	}

	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx, cfg)
	}()

	// wait for the server to come up
	var resp *http.Response
	var err error
	for i := 0; i < 50; i++ {
		resp, err = http.Post("http://"+cfg.Address+"/register", "application/json",
			bytes.NewBufferString(`{"username":"hodor","password":"winterfell"}`))
		if err == nil {
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	if err != nil {
		cancel()
		t.Fatalf("server never came up: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("expected 201 from /register, got %d", resp.StatusCode)
	}

	cancel()

	select {
	case <-time.After(10 * time.Second):
		t.Fatal("run did not shut down")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to shut down cleanly, got error: %v", err)
		}
	}
}
