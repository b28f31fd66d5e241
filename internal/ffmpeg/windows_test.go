package ffmpeg

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/murfai/murf-setup/internal/logging"
	"github.com/murfai/murf-setup/internal/winpath"
)

// memStore is an in-memory winpath.Store for exercising the pipeline.
type memStore struct {
	value  string
	sets   int
	closed bool
}

func (s *memStore) Get() (string, error) { return s.value, nil }
func (s *memStore) Set(value string) error {
	s.value = value
	s.sets++
	return nil
}
func (s *memStore) Close() error {
	s.closed = true
	return nil
}

func serveFixtureArchive(t *testing.T) *httptest.Server {
	t.Helper()
	archive := writeFixtureZip(t, map[string]string{
		"ffmpeg-7.1-essentials_build/bin/ffmpeg.exe": "binary",
		"ffmpeg-7.1-essentials_build/README.txt":     "readme",
	})
	data, err := os.ReadFile(archive)
	if err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestInstaller(t *testing.T, srv *httptest.Server, store *memStore) *WindowsInstaller {
	t.Helper()
	return &WindowsInstaller{
		URL:         srv.URL,
		InstallDir:  filepath.Join(t.TempDir(), "ffmpeg"),
		Logger:      logging.ForTest(t),
		Client:      srv.Client(),
		OpenEnv:     func() (winpath.Store, error) { return store, nil },
		ProfilePath: filepath.Join(t.TempDir(), ".zshrc"),
		Progress:    func(pct int, received, total int64) {},
	}
}

func TestWindowsInstaller_Run(t *testing.T) {
	srv := serveFixtureArchive(t)
	store := &memStore{value: `C:\Windows`}
	inst := newTestInstaller(t, srv, store)

	if err := inst.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantBin := filepath.Join(inst.InstallDir, "ffmpeg-7.1-essentials_build", "bin")
	if !winpath.Contains(store.value, wantBin) {
		t.Errorf("PATH missing bin dir: %q", store.value)
	}
	if !strings.HasPrefix(store.value, `C:\Windows`) {
		t.Errorf("existing PATH entries dropped: %q", store.value)
	}
	if store.sets != 1 {
		t.Errorf("Set called %d times, want 1", store.sets)
	}
	if !store.closed {
		t.Error("store not closed")
	}

	// Shell profile patched alongside the PATH write.
	data, err := os.ReadFile(inst.ProfilePath)
	if err != nil {
		t.Fatalf("profile not written: %v", err)
	}
	if !strings.Contains(string(data), wantBin) {
		t.Errorf("profile missing bin dir:\n%s", data)
	}
}

func TestWindowsInstaller_Run_PathAlreadyRegistered(t *testing.T) {
	srv := serveFixtureArchive(t)
	inst := newTestInstaller(t, srv, &memStore{})

	// First run registers the bin dir.
	if err := inst.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	// Second run sees a PATH that already carries the bin dir.
	binDir := filepath.Join(inst.InstallDir, "ffmpeg-7.1-essentials_build", "bin")
	store := &memStore{value: binDir}
	inst.OpenEnv = func() (winpath.Store, error) { return store, nil }

	if err := inst.Run(context.Background()); err != nil {
		t.Fatalf("re-run error = %v", err)
	}
	if store.sets != 0 {
		t.Errorf("re-run performed %d PATH writes, want 0", store.sets)
	}
}

func TestWindowsInstaller_Run_CleansUpArchive(t *testing.T) {
	srv := serveFixtureArchive(t)
	inst := newTestInstaller(t, srv, &memStore{})

	if err := inst.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	// No murf-setup archives left in the temp dir.
	entries, err := os.ReadDir(os.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "murf-setup-ffmpeg-") {
			t.Errorf("temporary archive left behind: %s", e.Name())
		}
	}
}

func TestWindowsInstaller_Run_RegistryUnavailable(t *testing.T) {
	srv := serveFixtureArchive(t)
	inst := newTestInstaller(t, srv, nil)
	inst.OpenEnv = winpath.OpenUserEnv // real store: unavailable off-windows

	err := inst.Run(context.Background())
	if err == nil {
		t.Skip("running on windows with a real registry")
	}
	if !strings.Contains(err.Error(), "manually") {
		t.Errorf("error should instruct manual remediation: %v", err)
	}
}
