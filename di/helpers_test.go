package di_test

import (
	"errors"

	"github.com/sghaida/hinject/di"
)

const (
	tokenHero   di.Name = "HeroService"
	tokenWeapon di.Name = "WeaponService"
	tokenTheme  di.Name = "Theme"
)

// chain builds null <- root <- mid <- leaf.
func chain() (root, mid, leaf *di.Node) {
	root = di.NewRootInjector()
	mid = di.NewNode(root, di.WithName("mid"))
	leaf = di.NewNode(mid, di.WithName("leaf"))
	return root, mid, leaf
}

// captured records the arguments a component was constructed with.
type captured struct {
	Args []any
}

func capturingComponent(name string, calls *int) *di.Component {
	return &di.Component{
		Name: name,
		New: func(args []any) (any, error) {
			if calls != nil {
				*calls++
			}
			return &captured{Args: args}, nil
		},
	}
}

var errBoom = errors.New("boom")

func failingComponent(name string) *di.Component {
	return &di.Component{
		Name: name,
		New:  func([]any) (any, error) { return nil, errBoom },
	}
}

// countingInjector counts lookups and delegates to next.
type countingInjector struct {
	next  di.Injector
	calls int
}

func (c *countingInjector) Lookup(token di.Token, mods di.Modifiers, hostOnly bool) (any, bool, error) {
	c.calls++
	return c.next.Lookup(token, mods, hostOnly)
}
