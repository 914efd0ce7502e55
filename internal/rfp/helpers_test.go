// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rfp

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jordangpape-oss/rfp-parser/internal/schema"
)

// writeFile is a test helper that creates a file with the given content and
// returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func fixedClock() time.Time {
	return time.Date(2026, time.March, 4, 15, 30, 0, 0, time.Local)
}

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	tmpl, err := schema.Default()
	require.NoError(t, err)
	b := NewBuilder(tmpl)
	b.Now = fixedClock
	return b
}

// notice is one recorded Notifier call.
type notice struct {
	kind string
	msg  string
}

// recorder implements Notifier by remembering every notice.
type recorder struct {
	notices []notice
}

func (r *recorder) add(kind, format string, args ...any) {
	r.notices = append(r.notices, notice{kind: kind, msg: fmt.Sprintf(format, args...)})
}

func (r *recorder) Info(format string, args ...any)    { r.add("info", format, args...) }
func (r *recorder) Error(format string, args ...any)   { r.add("error", format, args...) }
func (r *recorder) Success(format string, args ...any) { r.add("success", format, args...) }
func (r *recorder) Plain(format string, args ...any)   { r.add("plain", format, args...) }

func (r *recorder) kinds() []string {
	out := make([]string, len(r.notices))
	for i, n := range r.notices {
		out[i] = n.kind
	}
	return out
}
