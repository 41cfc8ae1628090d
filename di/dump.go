package di

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

// ScopeInfo is a snapshot of one injector in a chain.
type ScopeInfo struct {
	Name          string
	Kind          string
	Providers     []string
	ViewProviders []string
	Environment   []ScopeInfo
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Describe walks from inj to the terminal injector, most specific scope first.
// Injectors of unknown types are reported by type and end the walk.
func Describe(inj Injector) []ScopeInfo {
	var out []ScopeInfo
	for cur := orNull(inj); cur != nil; {
		switch v := cur.(type) {
		case NullInjector:
			out = append(out, ScopeInfo{Name: "null", Kind: "terminal"})
			cur = nil
		case *EnvironmentInjector:
			info := describeNode(v.Node, "environment")
			if v.env != nil {
				info.Environment = Describe(v.env)
			}
			out = append(out, info)
			cur = v.parent
		case *Node:
			out = append(out, describeNode(v, "node"))
			cur = v.parent
		default:
			out = append(out, ScopeInfo{Name: typeName(v), Kind: "external"})
			cur = nil
		}
	}
	return out
}

func describeNode(n *Node, kind string) ScopeInfo {
	return ScopeInfo{
		Name:          n.name,
		Kind:          kind,
		Providers:     n.reg.Tokens(Primary),
		ViewProviders: n.reg.Tokens(View),
	}
}

// Dump writes a human-readable rendering of inj's chain to w.
func Dump(w io.Writer, inj Injector) {
	dumpConfig.Fdump(w, Describe(inj))
}
