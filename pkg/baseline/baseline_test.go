package baseline_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zapbench/zap/pkg/baseline"
)

func TestAddUpdatesInPlace(t *testing.T) {
	s := baseline.New()
	s.Add(baseline.Entry{Name: "bench_x", Mean: 100})
	s.Add(baseline.Entry{Name: "bench_x", Mean: 150})

	require.Equal(t, 1, s.Len())
	e, ok := s.Find("bench_x")
	require.True(t, ok)
	require.Equal(t, 150.0, e.Mean)
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	s := baseline.New()
	s.Add(baseline.Entry{Name: "c", Mean: 1})
	s.Add(baseline.Entry{Name: "a", Mean: 2})
	s.Add(baseline.Entry{Name: "b", Mean: 3})

	names := make([]string, 0, 3)
	for _, e := range s.Entries() {
		names = append(names, e.Name)
	}
	require.Equal(t, []string{"c", "a", "b"}, names)
}

func TestFindNotFound(t *testing.T) {
	s := baseline.New()
	_, ok := s.Find("missing")
	require.False(t, ok)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "baseline")

	s := baseline.New()
	s.Add(baseline.Entry{Name: "group_a/bench_test", Mean: 100.123456789012345, StdDev: 5.5, CILower: 95, CIUpper: 105})
	s.Add(baseline.Entry{Name: "group_b/bench_test", Mean: 200, StdDev: 10, CILower: 190, CIUpper: 210})

	require.NoError(t, baseline.Save(s, path))

	loaded, found, err := baseline.Load(path)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 2, loaded.Len())

	e1, ok := loaded.Find("group_a/bench_test")
	require.True(t, ok)
	require.InEpsilon(t, 100.123456789012345, e1.Mean, 1e-15)
	require.InEpsilon(t, 5.5, e1.StdDev, 1e-15)
	require.InEpsilon(t, 95.0, e1.CILower, 1e-15)
	require.InEpsilon(t, 105.0, e1.CIUpper, 1e-15)

	e2, ok := loaded.Find("group_b/bench_test")
	require.True(t, ok)
	require.InEpsilon(t, 200.0, e2.Mean, 1e-15)
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "baseline")

	s := baseline.New()
	s.Add(baseline.Entry{Name: "x", Mean: 1})
	require.NoError(t, baseline.Save(s, path))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	s, found, err := baseline.Load(filepath.Join(t.TempDir(), "nonexistent"))
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, s)
}

func TestLoadInvalidHeaderFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad")
	require.NoError(t, os.WriteFile(path, []byte("not-a-baseline\nfoo|1|2|3|4\n"), 0o644))

	_, _, err := baseline.Load(path)
	require.Error(t, err)
	var parseErr *baseline.ParseError
	require.True(t, errors.As(err, &parseErr))
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial")
	content := "zap-baseline v1\n" +
		"good|100|5|95|105\n" +
		"this line has no pipes at all\n" +
		"also|bad|not-a-number|1|2\n" +
		"also_good|50|1|49|51\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, found, err := baseline.Load(path)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 2, s.Len())

	_, ok := s.Find("good")
	require.True(t, ok)
	_, ok = s.Find("also_good")
	require.True(t, ok)
}

func TestNameMayNotContainPipeInPractice(t *testing.T) {
	// The schema reserves '|' as a field separator; names are expected
	// not to contain it. This documents the expectation via a
	// round-trip that would otherwise misparse.
	dir := t.TempDir()
	path := filepath.Join(dir, "baseline")
	s := baseline.New()
	s.Add(baseline.Entry{Name: "safe_name", Mean: 1, StdDev: 1, CILower: 1, CIUpper: 1})
	require.NoError(t, baseline.Save(s, path))
	loaded, _, err := baseline.Load(path)
	require.NoError(t, err)
	_, ok := loaded.Find("safe_name")
	require.True(t, ok)
}
