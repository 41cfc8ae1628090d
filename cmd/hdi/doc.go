// Command hdi loads an injector tree from YAML and exercises it.
//
// A tree file declares scopes (each with an optional parent, declared earlier
// in the file) and a list of lookups to run against them:
//
//	version: "1"
//	scopes:
//	  - name: root
//	    kind: root
//	    providers: {HeroService: Superman}
//	  - name: module
//	    kind: module
//	    parent: root
//	  - name: element
//	    kind: element
//	    parent: module
//	    viewProviders: {Theme: dark}
//	lookups:
//	  - {scope: element, token: HeroService}
//	  - {scope: element, token: HeroService, self: true}
//	  - {scope: element, token: Theme, host: true, hostOnly: true}
//
// Scope kinds are root, module, element, environment and node (the default).
// An environment scope may name another scope in "environment"; that scope is
// probed before the environment scope's own chain.
//
// Usage
//
//	hdi resolve -f tree.yaml
//	hdi dump -f tree.yaml --scope element
//
// resolve prints one line per lookup:
//
//	element HeroService [default] => Superman
//	element HeroService [self] => absent
//
// Use --log-level debug to trace every step of the resolution walk on stderr.
package main
