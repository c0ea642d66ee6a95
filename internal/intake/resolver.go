package intake

import (
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"video-enhancer/internal/domain"
)

// acceptedExtensions mirrors the picker filter; anything else must map to a video/* MIME type.
var acceptedExtensions = map[string]bool{
	".mp4": true,
	".mov": true,
	".mkv": true,
}

// Resolver turns picked or dropped paths into queueable file references.
type Resolver struct {
	stat      func(string) (os.FileInfo, error)
	typeByExt func(string) string
}

// NewResolver builds a resolver using real OS dependencies.
func NewResolver() *Resolver {
	return &Resolver{
		stat:      os.Stat,
		typeByExt: mime.TypeByExtension,
	}
}

// NewResolverForTests creates a resolver with injectable dependencies.
func NewResolverForTests(stat func(string) (os.FileInfo, error), typeByExt func(string) string) *Resolver {
	return &Resolver{
		stat:      stat,
		typeByExt: typeByExt,
	}
}

// Resolve checks every path and returns accepted files in selection order.
func (r *Resolver) Resolve(paths []string) domain.IntakeReport {
	report := domain.IntakeReport{}
	for _, raw := range paths {
		path := strings.TrimSpace(raw)
		if path == "" {
			continue
		}

		file, item := r.check(path)
		report.Items = append(report.Items, item)
		if item.Status == domain.IntakeStatusAccepted {
			report.Files = append(report.Files, file)
		}
	}
	return report
}

// check validates one path and builds its file reference.
func (r *Resolver) check(path string) (domain.FileRef, domain.IntakeItem) {
	item := domain.IntakeItem{Path: path}

	if !r.isVideo(path) {
		item.Status = domain.IntakeStatusRejected
		item.Message = fmt.Sprintf("Unsupported file type: %s", filepath.Base(path))
		return domain.FileRef{}, item
	}

	info, err := r.stat(path)
	if err != nil {
		item.Status = domain.IntakeStatusRejected
		if errors.Is(err, fs.ErrNotExist) {
			item.Message = fmt.Sprintf("File does not exist: %s", path)
		} else {
			item.Message = fmt.Sprintf("Cannot access file: %s", path)
		}
		return domain.FileRef{}, item
	}
	if info.IsDir() {
		item.Status = domain.IntakeStatusRejected
		item.Message = fmt.Sprintf("Folders cannot be queued: %s", path)
		return domain.FileRef{}, item
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	item.Status = domain.IntakeStatusAccepted
	return domain.FileRef{
		Name: info.Name(),
		Size: info.Size(),
		Path: abs,
	}, item
}

// isVideo applies the picker's accept list: mp4, mov, mkv, video/*.
func (r *Resolver) isVideo(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	if acceptedExtensions[ext] {
		return true
	}
	return strings.HasPrefix(r.typeByExt(ext), "video/")
}
