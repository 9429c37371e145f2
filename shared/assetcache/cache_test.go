package assetcache

import (
	"errors"
	"os"
	"testing"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestCachePutGet(t *testing.T) {
	c := openTestCache(t)
	const url = "https://example.com/buildings.obj"

	if _, err := c.Get(url); !errors.Is(err, ErrNotCached) {
		t.Fatalf("Get antes do Put = %v, want ErrNotCached", err)
	}

	if _, err := c.Put(url, []byte("v 0 0 0\n")); err != nil {
		t.Fatal(err)
	}
	// Put de novo substitui, não duplica.
	if _, err := c.Put(url, []byte("v 1 1 1\n")); err != nil {
		t.Fatal(err)
	}

	got, err := c.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	if string(got.Data) != "v 1 1 1\n" || got.Size != 8 {
		t.Errorf("asset = %q (%d bytes)", got.Data, got.Size)
	}
	if got.Digest != Digest([]byte("v 1 1 1\n")) {
		t.Error("digest não corresponde ao conteúdo")
	}

	var count int64
	c.DB.Model(&AssetModel{}).Count(&count)
	if count != 1 {
		t.Errorf("%d linhas, want 1", count)
	}

	if err := c.Delete(url); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Get(url); !errors.Is(err, ErrNotCached) {
		t.Errorf("Get após Delete = %v", err)
	}
}

func TestCacheMaterialize(t *testing.T) {
	c := openTestCache(t)
	model, err := c.Put("u", []byte("o building\n"))
	if err != nil {
		t.Fatal(err)
	}

	path, err := c.Materialize(model, ".obj")
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "o building\n" {
		t.Errorf("conteúdo = %q", data)
	}

	again, err := c.Materialize(model, ".obj")
	if err != nil || again != path {
		t.Errorf("segunda materialização = %q, %v", again, err)
	}
}

func TestOpenRecordsFormatVersion(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 2; i++ {
		c, err := Open(dir)
		if err != nil {
			t.Fatalf("Open #%d: %v", i+1, err)
		}

		var metas []CacheMetadata
		if err := c.DB.Find(&metas).Error; err != nil {
			t.Fatal(err)
		}
		if len(metas) != 1 || metas[0].Key != "FormatVersion" || metas[0].Value != "1" {
			t.Errorf("metadados após Open #%d = %+v", i+1, metas)
		}
		c.Close()
	}
}
