package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// testContext returns a context with timeout for tests
func testContext(t *testing.T, timeout time.Duration) (context.Context, context.CancelFunc) {
	t.Helper()
	return context.WithTimeout(context.Background(), timeout)
}

// requireNoError fails the test if err is not nil
func requireNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: %v", msg, err)
	}
}

// requireTrue fails the test if condition is false
func requireTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Fatalf("Expected true: %s", msg)
	}
}

// requireEqual fails the test if expected != actual
func requireEqual(t *testing.T, expected, actual interface{}, msg string) {
	t.Helper()
	if expected != actual {
		t.Fatalf("%s: expected %v, got %v", msg, expected, actual)
	}
}

// logTestStart logs the start of a test with component info
func logTestStart(t *testing.T, component, testName string) {
	t.Helper()
	t.Logf("=== %s: %s ===", component, testName)
}

// writeProject creates files relative to a fresh root directory
func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		requireNoError(t, os.MkdirAll(filepath.Dir(path), 0755), "mkdir "+name)
		requireNoError(t, os.WriteFile(path, []byte(content), 0644), "write "+name)
	}
	return root
}

// readFile returns the content of a project file
func readFile(t *testing.T, root, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, name))
	requireNoError(t, err, "read "+name)
	return string(data)
}
