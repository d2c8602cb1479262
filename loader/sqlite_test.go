package loader

import (
	"testing"

	"bookmark/engine"
)

func TestSQLiteLoadRoundTrip(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer db.Close()

	want := engine.List([]engine.Value{engine.Int(1), engine.String("x")})
	if err := db.Put("greeting", want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := db.Load(engine.String("greeting"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestSQLiteLoadMissingKeyIsUnloadable(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer db.Close()

	_, err = db.Load(engine.String("nope"))
	if err == nil {
		t.Fatalf("expected an error for a missing key")
	}
}

func TestSQLiteLoadNonStringRequestIsUnloadable(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer db.Close()

	_, err = db.Load(engine.Int(1))
	if err == nil {
		t.Fatalf("expected an error for a non-String request")
	}
}
