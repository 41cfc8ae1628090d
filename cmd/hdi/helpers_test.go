package main

import (
	"os"
	"path/filepath"
	"testing"
)

type treeHarness struct {
	t   *testing.T
	dir string
}

func newTree(t *testing.T) *treeHarness {
	t.Helper()
	return &treeHarness{t: t, dir: t.TempDir()}
}

func (h *treeHarness) write(rel, content string) string {
	h.t.Helper()
	path := filepath.Join(h.dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		h.t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		h.t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func mustParse(t *testing.T, src string) *Tree {
	t.Helper()
	tree, err := ParseTree([]byte(src))
	if err != nil {
		t.Fatalf("ParseTree: %v", err)
	}
	return tree
}

// heroTree mirrors the classic null <- root <- module <- element demo.
const heroTree = `
scopes:
  - name: root
    kind: root
    providers: {HeroService: Batman, WeaponService: Batarang}
  - name: module
    kind: module
    parent: root
    providers: {HeroService: Superman}
  - name: element
    kind: element
    parent: module
    viewProviders: {Theme: dark}
lookups:
  - {scope: element, token: HeroService}
  - {scope: module, token: HeroService, skipSelf: true}
  - {scope: element, token: HeroService, self: true}
  - {scope: element, token: Theme, host: true, hostOnly: true}
  - {scope: element, token: Missing}
  - {scope: element, token: Missing, optional: true}
`
