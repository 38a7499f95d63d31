package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/matzehuels/mindtree/pkg/storage"
)

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	mem, err := openStore(ctx, StorageConfig{Backend: storeMemory})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := mem.(*storage.MemoryStore); !ok {
		t.Errorf("memory backend gave %T", mem)
	}

	dir := filepath.Join(t.TempDir(), "layouts")
	fs, err := openStore(ctx, StorageConfig{Backend: storeFile, Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := fs.(*storage.FileStore); !ok || got.Dir() != dir {
		t.Errorf("file backend gave %T", fs)
	}

	t.Setenv("XDG_DATA_HOME", t.TempDir())
	def, err := openStore(ctx, StorageConfig{Backend: storeFile})
	if err != nil {
		t.Fatal(err)
	}
	base, _ := dataDir()
	if got := def.(*storage.FileStore).Dir(); got != filepath.Join(base, "layouts") {
		t.Errorf("default file store dir = %q", got)
	}
}

func TestListenURL(t *testing.T) {
	tests := map[string]string{
		":8080":          "http://localhost:8080",
		"127.0.0.1:9000": "http://127.0.0.1:9000",
	}
	for addr, want := range tests {
		if got := listenURL(addr); got != want {
			t.Errorf("listenURL(%q) = %q, want %q", addr, got, want)
		}
	}
}

func TestCacheLabel(t *testing.T) {
	if got := cacheLabel(CacheConfig{Backend: cacheRedis}, false); got != cacheRedis {
		t.Errorf("label = %q", got)
	}
	if got := cacheLabel(CacheConfig{Backend: cacheRedis}, true); got != cacheNone {
		t.Errorf("--no-cache label = %q", got)
	}
}
