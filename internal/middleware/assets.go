package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"
)

// Assets serves files from fsys under prefix with Cache-Control, Vary and
// ETag handling. ETags are computed once from the file contents.
func Assets(fsys fs.FS, prefix string, maxAge time.Duration) http.Handler {
	etags := map[string]string{}
	_ = fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if et, err := fileETag(fsys, path); err == nil {
			etags["/"+path] = et
		}
		return nil
	})

	cache := fmt.Sprintf("public, max-age=%d, stale-while-revalidate=86400", int(maxAge.Seconds()))
	if maxAge <= 0 {
		cache = "no-cache"
	}
	files := http.StripPrefix(prefix, http.FileServer(http.FS(fsys)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, prefix)
		if name == "" || strings.HasSuffix(name, "/") {
			http.NotFound(w, r)
			return
		}
		et, ok := etags[name]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Vary", "Accept-Encoding")
		w.Header().Set("Cache-Control", cache)
		w.Header().Set("ETag", et)
		if etagMatches(r.Header.Get("If-None-Match"), et) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		files.ServeHTTP(w, r)
	})
}

func fileETag(fsys fs.FS, path string) (string, error) {
	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`, nil
}

// etagMatches applies the weak comparison of If-None-Match: "*" or any
// listed tag equal to et once W/ prefixes are ignored.
func etagMatches(header, et string) bool {
	want := strings.TrimPrefix(et, "W/")
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == want {
			return true
		}
	}
	return false
}
