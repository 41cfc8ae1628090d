package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sghaida/hinject/di"
)

func TestBuildTree_HeroTreeLookups(t *testing.T) {
	t.Parallel()

	tree := mustParse(t, heroTree)
	scopes, err := buildTree(tree, zerolog.Nop())
	if err != nil {
		t.Fatalf("buildTree: %v", err)
	}

	want := []string{
		"element HeroService [default] => Superman",
		"module HeroService [skipSelf] => Batman",
		"element HeroService [self] => absent",
		"element Theme [host] => dark",
		"element Missing [default] => not found",
		"element Missing [default] => nil (optional)",
	}
	got := runLookups(tree, scopes)
	if len(got) != len(want) {
		t.Fatalf("got %d results, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Fatalf("result %d: got %q want %q", i, got[i].String(), want[i])
		}
	}
}

func TestBuildTree_Kinds(t *testing.T) {
	t.Parallel()

	tree := mustParse(t, `
scopes:
  - {name: platform, kind: root, providers: {HeroService: platform-hero}}
  - {name: root, kind: root, providers: {HeroService: root-hero}}
  - {name: env, kind: environment, parent: root, environment: platform}
  - {name: plain, parent: env}
`)
	scopes, err := buildTree(tree, zerolog.Nop())
	if err != nil {
		t.Fatalf("buildTree: %v", err)
	}

	if _, ok := scopes["env"].(*di.EnvironmentInjector); !ok {
		t.Fatalf("env scope is %T", scopes["env"])
	}
	plain, ok := scopes["plain"].(*di.Node)
	if !ok {
		t.Fatalf("plain scope is %T", scopes["plain"])
	}
	if plain.Name() != "plain" || plain.Parent() != scopes["env"] {
		t.Fatalf("plain scope wired wrong: name=%q parent=%v", plain.Name(), plain.Parent())
	}

	v, _, err := plain.Lookup(di.Name("HeroService"), di.Modifiers{}, false)
	if err != nil || v != "platform-hero" {
		t.Fatalf("got %v, %v; want platform-hero from the environment", v, err)
	}
}

func TestBuildTree_UnknownKind(t *testing.T) {
	t.Parallel()

	tree := &Tree{Scopes: []ScopeSpec{{Name: "x", Kind: "galaxy"}}}
	if _, err := buildTree(tree, zerolog.Nop()); err == nil {
		t.Fatal("expected error")
	}
}

func TestBuildTree_LogsScopes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tree := mustParse(t, heroTree)
	scopes, err := buildTree(tree, zerolog.New(&buf).Level(zerolog.DebugLevel))
	if err != nil {
		t.Fatalf("buildTree: %v", err)
	}
	_ = runLookups(tree, scopes)

	out := buf.String()
	for _, want := range []string{"scope built", "module injector consulted", `"mode":"skipSelf"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLookupResult_Outcome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    lookupResult
		want string
	}{
		{name: "found", r: lookupResult{Lookup: LookupSpec{Scope: "s", Token: "T"}, Value: 7, Found: true}, want: "s T [default] => 7"},
		{name: "found_nil", r: lookupResult{Lookup: LookupSpec{Scope: "s", Token: "T"}, Found: true}, want: "s T [default] => <nil>"},
		{name: "host_without_hostOnly", r: lookupResult{Lookup: LookupSpec{Scope: "s", Token: "T", Host: true}, Value: 1, Found: true}, want: "s T [default] => 1"},
		{name: "other_error", r: lookupResult{Lookup: LookupSpec{Scope: "s", Token: "T"}, Err: errors.New("boom")}, want: "s T [default] => error: boom"},
		{name: "not_found", r: lookupResult{Lookup: LookupSpec{Scope: "s", Token: "T"}, Err: di.NotFoundError{Token: di.Name("T")}}, want: "s T [default] => not found"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.r.String(); got != tt.want {
				t.Fatalf("got %q want %q", got, tt.want)
			}
		})
	}
}
