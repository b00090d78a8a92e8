// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package http

import (
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/ravigangaG/EasyLearnfrom/internal/logger"
)

const uploadsPrefix = "/uploads/"

// staticStage serves regular files from the uploads directory for GET and
// HEAD requests under /uploads/. Missing files, directories and dot-files
// fall through to the next stage. Lookups go through [os.Root], so neither
// ".." segments nor symlinks can reach outside the directory.
func (h *Handler) staticStage() Stage {
	return Stage{
		Name: "static",
		Run: func(w http.ResponseWriter, r *http.Request, next http.Handler) error {
			if r.Method != http.MethodGet && r.Method != http.MethodHead || !strings.HasPrefix(r.URL.Path, uploadsPrefix) {
				next.ServeHTTP(w, r)
				return nil
			}

			file, info, ok := h.openUpload(r.URL.Path)
			if !ok {
				next.ServeHTTP(w, r)
				return nil
			}
			defer file.Close()

			http.ServeContent(w, r, info.Name(), info.ModTime(), file)
			return nil
		},
	}
}

// openUploadsRoot opens dir once for the lifetime of the handler. A missing
// or unreadable directory disables static serving.
func openUploadsRoot(dir string, log *logger.Logger) *os.Root {
	if dir == "" {
		return nil
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		log.Warn().Err(err).Str("uploads_dir", dir).Msg("uploads directory unavailable, static files disabled")
		return nil
	}
	return root
}

func (h *Handler) openUpload(urlPath string) (*os.File, os.FileInfo, bool) {
	if h.uploads == nil {
		return nil, nil, false
	}

	name := strings.TrimPrefix(path.Clean("/"+strings.TrimPrefix(urlPath, uploadsPrefix)), "/")
	if name == "" || hasDotSegment(name) {
		return nil, nil, false
	}

	file, err := h.uploads.Open(name)
	if err != nil {
		return nil, nil, false
	}

	info, err := file.Stat()
	if err != nil || !info.Mode().IsRegular() {
		file.Close()
		return nil, nil, false
	}

	return file, info, true
}

func hasDotSegment(name string) bool {
	for segment := range strings.SplitSeq(name, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}
