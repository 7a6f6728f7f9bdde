package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformAsset(t *testing.T) {
	tests := []struct {
		p    platform
		want string
	}{
		{platform{"darwin", "arm64"}, "nrqltutor_Darwin_all.tar.gz"},
		{platform{"darwin", "mips"}, "nrqltutor_Darwin_all.tar.gz"},
		{platform{"linux", "amd64"}, "nrqltutor_Linux_x86_64.tar.gz"},
		{platform{"linux", "386"}, "nrqltutor_Linux_i386.tar.gz"},
		{platform{"windows", "arm64"}, "nrqltutor_Windows_arm64.zip"},
		{platform{"freebsd", "amd64"}, ""},
		{platform{"linux", "mips"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.p.os+"/"+tt.p.arch, func(t *testing.T) {
			got, err := tt.p.asset()
			if tt.want == "" {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecksumFor(t *testing.T) {
	listing := []byte("ABC123  nrqltutor_Linux_x86_64.tar.gz\n" +
		"garbage\n" +
		"def456 *nrqltutor_Windows_x86_64.zip\n")

	sum, err := checksumFor(listing, "nrqltutor_Linux_x86_64.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, "abc123", sum)

	sum, err = checksumFor(listing, "nrqltutor_Windows_x86_64.zip")
	require.NoError(t, err)
	assert.Equal(t, "def456", sum)

	_, err = checksumFor(listing, "nrqltutor_Darwin_all.tar.gz")
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	data := []byte("payload")
	sum := sha256.Sum256(data)
	assert.NoError(t, verify(data, hex.EncodeToString(sum[:])))
	assert.ErrorIs(t, verify(data, "00"), ErrChecksum)
}

func TestUnpack(t *testing.T) {
	bin := []byte("\x7fELF nrqltutor")

	got, err := unpack(tarGz(t, "dist/nrqltutor", bin), "nrqltutor_Linux_x86_64.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, bin, got)

	got, err = unpack(zipped(t, "nrqltutor.exe", bin), "nrqltutor_Windows_x86_64.zip")
	require.NoError(t, err)
	assert.Equal(t, bin, got)

	_, err = unpack(tarGz(t, "README.md", bin), "nrqltutor_Linux_x86_64.tar.gz")
	assert.ErrorContains(t, err, "not found")
}

func TestReplaceExecutable(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nrqltutor")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o755))

	require.NoError(t, replaceExecutable(target, []byte("new build")))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new build", string(got))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "staged file left behind")
}

// releaseHost serves a latest release tag, one asset and its checksums.
func releaseHost(t *testing.T, tag string, archive []byte, sum string) string {
	t.Helper()
	asset, err := platform{runtime.GOOS, runtime.GOARCH}.asset()
	if err != nil {
		t.Skipf("no release asset for this platform: %v", err)
	}
	dl := "/nrqlkit/nrqltutor/releases/download/" + tag + "/"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/nrqlkit/nrqltutor/releases/latest":
			fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tag, tag)
		case dl + asset:
			if archive == nil {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write(archive)
		case dl + "checksums.txt":
			fmt.Fprintf(w, "%s  %s\n", sum, asset)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func platformArchive(t *testing.T, bin []byte) []byte {
	if runtime.GOOS == "windows" {
		return zipped(t, "nrqltutor.exe", bin)
	}
	return tarGz(t, "nrqltutor", bin)
}

func TestUpdate(t *testing.T) {
	bin := []byte("nrqltutor v2")
	archive := platformArchive(t, bin)
	sum := sha256.Sum256(archive)
	good := hex.EncodeToString(sum[:])

	newChecker := func(host, exe string) *Checker {
		return NewChecker(WithBaseURL(host), WithDownloadBaseURL(host),
			withExecPath(func() (string, error) { return exe, nil }))
	}

	t.Run("installs latest", func(t *testing.T) {
		exe := filepath.Join(t.TempDir(), "nrqltutor")
		require.NoError(t, os.WriteFile(exe, []byte("v1"), 0o755))

		var stages []Stage
		err := newChecker(releaseHost(t, "v2.0.0", archive, good), exe).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
				stages = append(stages, p.Stage)
			})
		require.NoError(t, err)

		got, err := os.ReadFile(exe)
		require.NoError(t, err)
		assert.Equal(t, bin, got)
		assert.Equal(t, []Stage{StageCheck, StageDownload, StageVerify, StageExtract, StageApply, StageDone}, stages)
	})

	t.Run("pinned version skips the check", func(t *testing.T) {
		exe := filepath.Join(t.TempDir(), "nrqltutor")
		require.NoError(t, os.WriteFile(exe, []byte("v3"), 0o755))

		var stages []Stage
		err := newChecker(releaseHost(t, "v2.0.0", archive, good), exe).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v3.0.0", TargetVersion: "v2.0.0"}, func(p UpdateProgress) {
				stages = append(stages, p.Stage)
			})
		require.NoError(t, err)
		assert.NotContains(t, stages, StageCheck)
	})

	t.Run("development build", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: DevVersion}, nil)
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		err := newChecker(releaseHost(t, "v1.0.0", archive, good), "").
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, nil)
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("bad checksum leaves the binary alone", func(t *testing.T) {
		exe := filepath.Join(t.TempDir(), "nrqltutor")
		require.NoError(t, os.WriteFile(exe, []byte("v1"), 0o755))

		err := newChecker(releaseHost(t, "v2.0.0", archive, "0000"), exe).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, nil)
		assert.ErrorIs(t, err, ErrChecksum)

		got, _ := os.ReadFile(exe)
		assert.Equal(t, "v1", string(got))
	})

	t.Run("missing asset", func(t *testing.T) {
		err := newChecker(releaseHost(t, "v2.0.0", nil, good), "").
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, nil)
		assert.ErrorContains(t, err, "download archive")
	})
}

func tarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: name, Size: int64(len(content)), Mode: 0o755, Typeflag: tar.TypeReg}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func zipped(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	require.NoError(t, err)
	_, err = w.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
