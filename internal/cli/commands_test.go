package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestEnv writes a CLI config pointing at a mock API and a temp data dir.
func setupTestEnv(t *testing.T) (string, *httptest.Server) {
	t.Helper()
	tmpDir := t.TempDir()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/1/config":
			_ = json.NewEncoder(w).Encode(map[string]string{"apiKey": "key123"})
		case "/api/1/auth/user":
			if _, _, ok := r.BasicAuth(); !ok {
				_ = json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"message": "Missing Credentials", "status_code": 401},
				})
				return
			}
			w.Header().Add("Set-Cookie", "auth=authcookie_test; Path=/")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"username":    "tupper",
				"displayName": "Tupper",
				"id":          "usr_c1644b5b",
				"tags":        []string{"system_trust_basic"},
			})
		case "/api/1/auth/user/friends":
			_, _ = w.Write([]byte(`[{"id":"usr_1","displayName":"Mic_Sounders","status":"active","location":"private"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(ts.Close)

	cfgPath := filepath.Join(tmpDir, "config.json")
	if err := SaveConfig(cfgPath, &Config{ServerURL: ts.URL, DataDir: tmpDir}); err != nil {
		t.Fatal(err)
	}
	return cfgPath, ts
}

func runCmd(t *testing.T, cfgPath string, args ...string) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	cmd := GetRootCmd()
	cmd.SetArgs(append(args, "--config", cfgPath))
	err := cmd.Execute()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	if err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	return buf.String()
}

func TestCommands(t *testing.T) {
	cfgPath, _ := setupTestEnv(t)

	// Login persists a session the next invocation can restore.
	out := runCmd(t, cfgPath, "login", "--user", "tupper", "--pass", "hunter2")
	if !strings.Contains(out, "Logged in as Tupper") {
		t.Fatalf("login output: %s", out)
	}

	out = runCmd(t, cfgPath, "whoami")
	if !strings.Contains(out, "Tupper") || !strings.Contains(out, "system_trust_basic") {
		t.Errorf("whoami output: %s", out)
	}

	out = runCmd(t, cfgPath, "friends")
	if !strings.Contains(out, "Mic_Sounders") {
		t.Errorf("friends output: %s", out)
	}

	// A fresh process has an empty request cache; --cached must not hit the API.
	out = runCmd(t, cfgPath, "friends", "--cached")
	if !strings.Contains(out, "nothing cached") {
		t.Errorf("cached friends output: %s", out)
	}

	out = runCmd(t, cfgPath, "settings", "set", "--sort", "created", "--max-avatars", "25")
	if !strings.Contains(out, "Settings saved") {
		t.Errorf("settings set output: %s", out)
	}
	out = runCmd(t, cfgPath, "settings")
	if !strings.Contains(out, "created") || !strings.Contains(out, "25") {
		t.Errorf("settings output after set: %s", out)
	}

	out = runCmd(t, cfgPath, "clear-cache")
	if !strings.Contains(out, "World cache cleared") {
		t.Errorf("clear-cache output: %s", out)
	}

	out = runCmd(t, cfgPath, "logout")
	if !strings.Contains(out, "Logged out") {
		t.Errorf("logout output: %s", out)
	}
	out = runCmd(t, cfgPath, "whoami")
	if !strings.Contains(out, "not logged in") {
		t.Errorf("whoami after logout: %s", out)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ServerURL == "" {
		t.Error("missing config must fall back to the default server URL")
	}
}
