//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ConsumerName        = "order-service"
	UserProviderName    = "user-service"
	ProductProviderName = "product-service"

	StateUserExists     = "user with id 1 exists"
	StateUserMissing    = "no user with id 999"
	StateProductInStock = "product 101 has stock 10"
	StateProductMissing = "no product with id 999"
	StateStockDepleted  = "product 101 has stock 0"
)

const (
	ExistingUserID int64 = 1
	MissingUserID  int64 = 999

	ExistingProductID int64 = 101
	MissingProductID  int64 = 999

	SeededStock int64 = 10
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for one provider contract.
func PactFile(t testing.TB, provider string) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+provider+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleUserPayload provides stable test data for directory interactions.
func ExampleUserPayload() map[string]any {
	return map[string]any{
		"id":     ExistingUserID,
		"name":   "Alice",
		"email":  "alice@example.com",
		"wallet": 100.0,
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
