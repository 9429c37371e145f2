package main

import (
	"runtime"
	"strings"
	"testing"
)

func TestLdflagsOnlyAddWindowsFlagsOnWindows(t *testing.T) {
	for _, tg := range targets {
		flags := ldflags(tg)
		if !strings.HasPrefix(flags, "-s -w") {
			t.Errorf("%s: flags = %q", tg.name, flags)
		}

		windows := runtime.GOOS == "windows"
		if got := strings.Contains(flags, "-H=windowsgui"); got != (windows && tg.gui) {
			t.Errorf("%s: windowsgui = %v em %s", tg.name, got, runtime.GOOS)
		}
		if got := strings.Contains(flags, "-extldflags=-static"); got != (windows && tg.cgo) {
			t.Errorf("%s: static = %v em %s", tg.name, got, runtime.GOOS)
		}
	}
}

func TestExeName(t *testing.T) {
	got := exeName("CityRipple")
	want := "CityRipple"
	if runtime.GOOS == "windows" {
		want += ".exe"
	}
	if got != want {
		t.Errorf("exeName = %q, want %q", got, want)
	}
}

func TestTargetsCoverClientAndPrefetch(t *testing.T) {
	pkgs := map[string]bool{}
	for _, tg := range targets {
		pkgs[tg.pkg] = true
	}
	for _, p := range []string{"cliente", "cliente/prefetch", "launcher"} {
		if !pkgs[p] {
			t.Errorf("pacote %s não é compilado", p)
		}
	}
}
