package di_test

import (
	"bytes"
	"testing"

	"github.com/sghaida/hinject/di"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDescribe_WalksToTerminal verifies the chain is reported most specific first.
func TestDescribe_WalksToTerminal(t *testing.T) {
	t.Parallel()

	root, mid, leaf := chain()
	root.AddProvider(tokenWeapon, 1, false)
	root.AddProvider(tokenHero, 2, false)
	mid.AddProvider(tokenTheme, "dark", true)

	got := di.Describe(leaf)
	require.Len(t, got, 4)

	assert.Equal(t, "leaf", got[0].Name)
	assert.Equal(t, "node", got[0].Kind)
	assert.Equal(t, []string{"Theme"}, got[1].ViewProviders)
	assert.Equal(t, []string{"HeroService", "WeaponService"}, got[2].Providers)
	assert.Equal(t, di.ScopeInfo{Name: "null", Kind: "terminal"}, got[3])
}

// TestDescribe_Environment verifies environment scopes include their auxiliary chain.
func TestDescribe_Environment(t *testing.T) {
	t.Parallel()

	env := di.NewRootInjector(di.WithName("platform"))
	envInj := di.NewEnvironmentInjector(nil, env)

	got := di.Describe(envInj)
	require.Len(t, got, 2)
	assert.Equal(t, "environment", got[0].Kind)
	require.Len(t, got[0].Environment, 2)
	assert.Equal(t, "platform", got[0].Environment[0].Name)
}

// TestDescribe_ExternalInjector verifies unknown injector types end the walk.
func TestDescribe_ExternalInjector(t *testing.T) {
	t.Parallel()

	n := di.NewNode(brokenInjector{})
	got := di.Describe(n)
	require.Len(t, got, 2)
	assert.Equal(t, "external", got[1].Kind)
	assert.Equal(t, "di_test.brokenInjector", got[1].Name)

	assert.Equal(t, []di.ScopeInfo{{Name: "null", Kind: "terminal"}}, di.Describe(nil))
}

// TestDump_Renders verifies Dump writes scope names and tokens.
func TestDump_Renders(t *testing.T) {
	t.Parallel()

	root, _, leaf := chain()
	root.AddProvider(tokenHero, "Superman", false)

	var buf bytes.Buffer
	di.Dump(&buf, leaf)

	out := buf.String()
	assert.Contains(t, out, `"leaf"`)
	assert.Contains(t, out, `"HeroService"`)
	assert.Contains(t, out, `"terminal"`)
	assert.NotContains(t, out, "Superman", "dumps list tokens, not instances")
}
