package db

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestOpenCreatesParentDirAndMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lifelog.db")

	gdb, err := Open(path, Options{Silent: true})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer Close(gdb)

	if !gdb.Migrator().HasTable(&Bucket{}) || !gdb.Migrator().HasTable("storage_buckets") {
		t.Fatalf("expected storage_buckets table")
	}
	if !gdb.Migrator().HasTable(&Owner{}) {
		t.Fatalf("expected owners table")
	}
}

func TestEnsureOwnerAndAuthenticate(t *testing.T) {
	gdb, err := Open("file:owner_test?mode=memory&cache=shared", Options{Silent: true})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer Close(gdb)

	if err := EnsureOwner(gdb, "", "secret"); err != nil {
		t.Fatalf("blank owner should be ignored: %v", err)
	}
	if err := EnsureOwner(gdb, "me", " secret "); err != nil {
		t.Fatalf("ensure owner: %v", err)
	}
	if err := EnsureOwner(gdb, "me", "other"); err != nil {
		t.Fatalf("ensure existing owner: %v", err)
	}

	var count int64
	gdb.Model(&Owner{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected a single owner, got %d", count)
	}

	if _, err := Authenticate(gdb, "me", "secret"); err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if _, err := Authenticate(gdb, "me", "other"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := Authenticate(gdb, "nobody", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown owner, got %v", err)
	}
}

func TestSetOwnerPasswordCreatesAndResets(t *testing.T) {
	gdb, err := Open("file:owner_reset_test?mode=memory&cache=shared", Options{Silent: true})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer Close(gdb)

	if err := SetOwnerPassword(gdb, "me", ""); err == nil {
		t.Fatal("expected blank password to be rejected")
	}
	if err := SetOwnerPassword(gdb, "me", "first"); err != nil {
		t.Fatalf("create owner: %v", err)
	}
	if err := SetOwnerPassword(gdb, "me", "second"); err != nil {
		t.Fatalf("reset owner: %v", err)
	}

	if _, err := Authenticate(gdb, "me", "first"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected old password to be rejected, got %v", err)
	}
	if _, err := Authenticate(gdb, "me", "second"); err != nil {
		t.Fatalf("authenticate with new password: %v", err)
	}
}
