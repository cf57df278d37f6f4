package ioutil_test

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"braces.dev/errtrace"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/VolodymyrBor/urlx/internal/ioutil"
)

var errWrite = errors.New("write failed")

// limitWriter accepts at most limit bytes and then fails.
type limitWriter struct {
	sb    strings.Builder
	limit int
}

func (lw *limitWriter) Write(p []byte) (int, error) {
	room := lw.limit - lw.sb.Len()
	if room <= 0 {
		return 0, errtrace.Wrap(errWrite)
	}
	if len(p) > room {
		lw.sb.Write(p[:room])
		return room, errtrace.Wrap(errWrite)
	}
	return lw.sb.Write(p) //nolint:wrapcheck
}

func TestCountingWriter_WriteStrings(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	cw := ioutil.NewCountingWriter(&sb)

	num, err := cw.WriteStrings("https", "://", "localhost", "/").Result()
	if err != nil {
		t.Fatalf("cw.Result() error = %v, want nil", err)
	}
	if num != 18 {
		t.Errorf("cw.Result() num = %d, want 18", num)
	}
	if got, want := sb.String(), "https://localhost/"; got != want {
		t.Errorf("sb.String() = %q, want %q", got, want)
	}
}

func TestCountingWriter_Call(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	cw := ioutil.NewCountingWriter(&sb)

	renderQuery := func(w io.Writer) (int, error) {
		return errtrace.Wrap2(fmt.Fprint(w, "?a=1&b=2"))
	}

	num, err := cw.WriteStrings("/api").Call(renderQuery).Result()
	if err != nil {
		t.Fatalf("cw.Result() error = %v, want nil", err)
	}
	if num != 12 {
		t.Errorf("cw.Result() num = %d, want 12", num)
	}
	if got, want := sb.String(), "/api?a=1&b=2"; got != want {
		t.Errorf("sb.String() = %q, want %q", got, want)
	}
}

func TestCountingWriter_ErrorStopsWriting(t *testing.T) {
	t.Parallel()

	lw := &limitWriter{limit: 8}
	cw := ioutil.NewCountingWriter(lw)

	called := false
	num, err := cw.WriteStrings("https", "://", "localhost").
		Call(func(io.Writer) (int, error) {
			called = true
			return 0, nil
		}).
		Result()
	if diff := cmp.Diff(err, errWrite, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("cw.Result() error = %v, want %v\ndiff (-got +want):\n%v", err, errWrite, diff)
	}
	if num != 8 {
		t.Errorf("cw.Result() num = %d, want 8", num)
	}
	if called {
		t.Error("cw.Call(fn) invoked fn after a write error")
	}
	if got, want := lw.sb.String(), "https://"; got != want {
		t.Errorf("written = %q, want %q", got, want)
	}
}

func TestCountingWriter_Pool(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	cw := ioutil.GetCountingWriter(&sb)
	cw.WriteStrings("abc")
	if cw.Count() != 3 {
		t.Errorf("cw.Count() = %d, want 3", cw.Count())
	}
	ioutil.FreeCountingWriter(cw)
	if cw.Count() != 0 {
		t.Errorf("cw.Count() = %d after free, want 0", cw.Count())
	}
}
