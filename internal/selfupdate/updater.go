package selfupdate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
)

var (
	ErrDevBuild      = errors.New("development builds cannot update themselves")
	ErrAlreadyLatest = errors.New("already on the latest release")
	ErrChecksum      = errors.New("checksum mismatch")
)

// maxDownload bounds any single release file.
const maxDownload = 200 << 20

type UpdateInput struct {
	CurrentVersion string
	// TargetVersion installs a specific tag instead of the latest release.
	TargetVersion string
}

// Stage names a step of Update, reported in order.
type Stage string

const (
	StageCheck    Stage = "check"
	StageDownload Stage = "download"
	StageVerify   Stage = "verify"
	StageExtract  Stage = "extract"
	StageApply    Stage = "apply"
	StageDone     Stage = "done"
)

type UpdateProgress struct {
	Stage   Stage
	Message string
}

// platform is a GOOS/GOARCH pair as named in release assets.
type platform struct {
	os, arch string
}

var releaseOS = map[string]string{"darwin": "Darwin", "linux": "Linux", "windows": "Windows"}

var releaseArch = map[string]string{"amd64": "x86_64", "arm64": "arm64", "386": "i386"}

// asset is the archive name goreleaser publishes for p. macOS ships one
// universal binary.
func (p platform) asset() (string, error) {
	osName, ok := releaseOS[p.os]
	if !ok {
		return "", fmt.Errorf("no release for operating system %s", p.os)
	}
	arch := "all"
	if p.os != "darwin" {
		if arch, ok = releaseArch[p.arch]; !ok {
			return "", fmt.Errorf("no release for architecture %s", p.arch)
		}
	}
	ext := ".tar.gz"
	if p.os == "windows" {
		ext = ".zip"
	}
	return fmt.Sprintf("%s_%s_%s%s", DefaultRepo, osName, arch, ext), nil
}

// Update replaces the running binary with a release build. The archive is
// checked against the release checksums.txt before anything is written.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	if progress == nil {
		progress = func(UpdateProgress) {}
	}
	if input.CurrentVersion == DevVersion {
		return ErrDevBuild
	}

	tag := input.TargetVersion
	if tag == "" {
		progress(UpdateProgress{StageCheck, "Looking up the latest release"})
		res, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if !res.UpdateAvailable {
			return ErrAlreadyLatest
		}
		tag = res.LatestVersion
	}

	asset, err := platform{runtime.GOOS, runtime.GOARCH}.asset()
	if err != nil {
		return err
	}
	release := fmt.Sprintf("%s/%s/%s/releases/download/%s/",
		strings.TrimRight(c.downloadBaseURL, "/"), c.owner, c.repo, tag)

	progress(UpdateProgress{StageDownload, fmt.Sprintf("Downloading %s %s", c.repo, tag)})
	archive, err := c.fetch(ctx, release+asset)
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	progress(UpdateProgress{StageVerify, fmt.Sprintf("Verifying %s", humanize.Bytes(uint64(len(archive))))})
	sums, err := c.fetch(ctx, release+"checksums.txt")
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	want, err := checksumFor(sums, asset)
	if err != nil {
		return err
	}
	if err := verify(archive, want); err != nil {
		return err
	}

	progress(UpdateProgress{StageExtract, "Unpacking"})
	bin, err := unpack(archive, asset)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	progress(UpdateProgress{StageApply, "Replacing the executable"})
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}
	if err := replaceExecutable(target, bin); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	progress(UpdateProgress{StageDone, fmt.Sprintf("Updated to %s", tag)})
	return nil
}

func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDownload+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxDownload {
		return nil, fmt.Errorf("%s is larger than %s", url, humanize.Bytes(maxDownload))
	}
	return body, nil
}
