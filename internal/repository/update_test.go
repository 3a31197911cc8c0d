package repository

import (
	"errors"
	"reflect"
	"testing"
)

var testColumns = []string{"name", "quantity"}

func TestBuildUpdateSingleField(t *testing.T) {
	query, args, err := BuildUpdate("products", "id", "P1", testColumns, map[string]any{"name": "X"})
	if err != nil {
		t.Fatalf("BuildUpdate: %v", err)
	}
	if query != "UPDATE products SET name=$1 WHERE id=$2" {
		t.Fatalf("unexpected query: %s", query)
	}
	if !reflect.DeepEqual(args, []any{"X", "P1"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildUpdateMultipleFields(t *testing.T) {
	fields := map[string]any{"name": "X", "quantity": int64(7)}
	query, args, err := BuildUpdate("products", "id", "P1", testColumns, fields)
	if err != nil {
		t.Fatalf("BuildUpdate: %v", err)
	}
	// Assignment order follows the allow-list, not map iteration order.
	if query != "UPDATE products SET name=$1, quantity=$2 WHERE id=$3" {
		t.Fatalf("unexpected query: %s", query)
	}
	if !reflect.DeepEqual(args, []any{"X", int64(7), "P1"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildUpdateNoFields(t *testing.T) {
	_, _, err := BuildUpdate("products", "id", "P1", testColumns, map[string]any{})
	if !errors.Is(err, ErrNoFieldsSupplied) {
		t.Fatalf("want ErrNoFieldsSupplied, got %v", err)
	}
}

func TestBuildUpdateUnknownFieldExcluded(t *testing.T) {
	_, _, err := BuildUpdate("products", "id", "P1", testColumns, map[string]any{"password_hash": "sneaky"})
	if !errors.Is(err, ErrNoFieldsSupplied) {
		t.Fatalf("unrecognized field must never be written; got %v", err)
	}

	query, _, err := BuildUpdate("products", "id", "P1", testColumns, map[string]any{
		"name":          "X",
		"password_hash": "sneaky",
	})
	if err != nil {
		t.Fatalf("BuildUpdate: %v", err)
	}
	if query != "UPDATE products SET name=$1 WHERE id=$2" {
		t.Fatalf("unknown field leaked into query: %s", query)
	}
}

func TestBuildUpdateKeyNeverAssignable(t *testing.T) {
	query, args, err := BuildUpdate("serial_numbers", "serial_no", "S1",
		[]string{"serial_no", "product_id"},
		map[string]any{"serial_no": "S2", "product_id": "P9"})
	if err != nil {
		t.Fatalf("BuildUpdate: %v", err)
	}
	if query != "UPDATE serial_numbers SET product_id=$1 WHERE serial_no=$2" {
		t.Fatalf("key column must not be assignable: %s", query)
	}
	if !reflect.DeepEqual(args, []any{"P9", "S1"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}
