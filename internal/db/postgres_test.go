package db

import "testing"

func TestOptionsDSN(t *testing.T) {
	o := Options{Host: "db", User: "clinic", Password: "secret", Name: "medcore"}
	want := "host=db port=5432 user=clinic password=secret dbname=medcore sslmode=disable"
	if got := o.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}

func TestConnect_MissingSettings(t *testing.T) {
	if _, err := Connect(Options{Host: "db"}); err == nil {
		t.Error("Expected error for missing user and name")
	}
}
