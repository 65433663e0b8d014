// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/breathe/internal/osutil"
)

// CompareGoldenFile verifies that output matches testdata/<name>.golden.
// Run the tests with -update to rewrite the fixture.
func CompareGoldenFile(t *testing.T, name string, output []byte) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: need to sort out line endings
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	g.Assert(t, name, output)
}
