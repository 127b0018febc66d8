package main

import (
	"testing"

	"github.com/snils/weeklynotes/app"
	"github.com/snils/weeklynotes/store"
)

func newTestController(t *testing.T) *app.App {
	t.Helper()
	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	controller := app.New(st, app.Options{})
	controller.NavigateToWeek(2025, 10)
	return controller
}
