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
	ProviderName = "restaurant-api"
	ConsumerName = "table-console"

	StateMenuBaseline = "menu baseline"
	StateOrderExists  = "order with id 1 exists"
	StateOrderMissing = "no order with id 999"
)

const (
	MenuDishID   int64 = 1
	SecondDishID int64 = 2

	ExistingOrderID int64 = 1
	MissingOrderID  int64 = 999

	ExampleTableNumber = 4
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

// PactFile returns the canonical pact file path for the table console consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
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

// ExamplePlaceOrderPayload provides stable test data for order placement.
func ExamplePlaceOrderPayload() map[string]any {
	return map[string]any{
		"tableNumber": ExampleTableNumber,
		"items": []map[string]any{
			{"dishId": MenuDishID, "quantity": 2},
		},
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
