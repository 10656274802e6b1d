package core_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sanverite/locale-shim/internal/core"
	"github.com/sanverite/locale-shim/internal/env"
)

func TestNormalizeCodeset(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"UTF-8", "utf-8"},
		{"utf8", "utf-8"},
		{"utf-8", "utf-8"},
		{"ANSI_X3.4-1968", "ascii"},
		{"US-ASCII", "ascii"},
		{"ascii", "ascii"},
		{"646", "ascii"},
		{"ISO-8859-1", "iso-8859-1"},
		{" UTF-8 ", "utf-8"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, core.NormalizeCodeset(tc.in), "input %q", tc.in)
	}
}

func TestResolveEncoding(t *testing.T) {
	ctx := context.Background()

	resolve := func(t *testing.T, vars map[string]string, activator *fakeActivator) core.EncodingConfig {
		t.Helper()
		state, err := core.NewNegotiator(activator).Run(ctx, viewWith(vars))
		require.NoError(t, err)
		return core.ResolveEncoding(ctx, state.GetSnapshot(), activator)
	}

	t.Run("coerced resolves utf-8", func(t *testing.T) {
		activator := &fakeActivator{available: map[string]bool{"C.UTF-8": true}}
		enc := resolve(t, map[string]string{env.VarLCAll: "C"}, activator)
		require.Equal(t, "utf-8", enc.FSEncoding)
		require.Equal(t, "utf-8:surrogateescape", enc.Stdin.String())
		require.Equal(t, "utf-8:surrogateescape", enc.Stdout.String())
		require.Equal(t, "utf-8:backslashreplace", enc.Stderr.String())
	})

	t.Run("unavailable keeps ascii", func(t *testing.T) {
		enc := resolve(t, map[string]string{env.VarLCAll: "POSIX"}, &fakeActivator{})
		require.Equal(t, "ascii", enc.FSEncoding)
		require.Equal(t, "ascii:surrogateescape", enc.Stdout.String())
		require.Equal(t, "ascii:backslashreplace", enc.Stderr.String())
	})

	t.Run("disabled degenerate keeps ascii", func(t *testing.T) {
		vars := map[string]string{env.VarLCAll: "C", env.VarCoerce: "0"}
		activator := &fakeActivator{available: map[string]bool{"C.UTF-8": true}}
		enc := resolve(t, vars, activator)
		require.Equal(t, "ascii", enc.FSEncoding)
	})

	t.Run("disabled utf-8 locale stays utf-8", func(t *testing.T) {
		vars := map[string]string{env.VarLCAll: "ja_JP.UTF-8", env.VarCoerce: "0"}
		enc := resolve(t, vars, &fakeActivator{})
		require.Equal(t, "utf-8", enc.FSEncoding)
	})

	t.Run("skipped locale codeset from name", func(t *testing.T) {
		for locale, want := range map[string]string{
			"en_US.UTF-8":      "utf-8",
			"en_US.utf8":       "utf-8",
			"invalid.ascii":    "ascii",
			"de_DE.ISO-8859-1": "iso-8859-1",
			"sr_RS.UTF-8@latin": "utf-8",
		} {
			enc := resolve(t, map[string]string{env.VarLCCtype: locale}, &fakeActivator{})
			require.Equal(t, want, enc.FSEncoding, "locale %q", locale)
		}
	})

	t.Run("skipped locale without codeset consults charmap", func(t *testing.T) {
		activator := &fakeActivator{charmap: "UTF-8"}
		enc := resolve(t, map[string]string{env.VarLang: "en_US"}, activator)
		require.Equal(t, "utf-8", enc.FSEncoding)
	})

	t.Run("charmap failure floors to ascii", func(t *testing.T) {
		activator := &fakeActivator{charmapErr: errors.New("no locale binary")}
		enc := resolve(t, map[string]string{env.VarLang: "en_US"}, activator)
		require.Equal(t, "ascii", enc.FSEncoding)
	})
}

// Two end-to-end scenarios a spawning harness checks against a child
// process: coercion from LC_ALL=C, and the opt-out with an ASCII locale.
func TestStartupScenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("LC_ALL=C with C.UTF-8 available", func(t *testing.T) {
		activator := &fakeActivator{available: map[string]bool{"C.UTF-8": true}}
		view := viewWith(map[string]string{env.VarLCAll: "C"})
		state, err := core.NewNegotiator(activator).Run(ctx, view)
		require.NoError(t, err)

		snap := state.GetSnapshot()
		enc := core.ResolveEncoding(ctx, snap, activator)
		require.Equal(t, "utf-8", enc.FSEncoding)
		require.Equal(t, "utf-8:surrogateescape", enc.Stdout.String())
		require.Equal(t, "utf-8:backslashreplace", enc.Stderr.String())

		var stderr bytes.Buffer
		core.NewEmitter(&stderr, false).Emit(snap, enc)
		require.Equal(t,
			"Python detected LC_CTYPE=C: LC_CTYPE coerced to C.UTF-8 "+
				"(set another locale or PYTHONCOERCECLOCALE=0 to disable "+
				"this locale coercion behavior).\n",
			stderr.String())
	})

	t.Run("LC_ALL=invalid.ascii with opt-out", func(t *testing.T) {
		activator := &fakeActivator{available: map[string]bool{"C.UTF-8": true}}
		view := viewWith(map[string]string{env.VarLCAll: "invalid.ascii", env.VarCoerce: "0"})
		state, err := core.NewNegotiator(activator).Run(ctx, view)
		require.NoError(t, err)

		snap := state.GetSnapshot()
		enc := core.ResolveEncoding(ctx, snap, activator)
		require.Equal(t, "ascii", enc.FSEncoding)
		require.Equal(t, "ascii:surrogateescape", enc.Stdout.String())
		require.Equal(t, "ascii:backslashreplace", enc.Stderr.String())

		var gated bytes.Buffer
		core.NewEmitter(&gated, false).Emit(snap, enc)
		require.Empty(t, gated.String(), "advisory requires the build gate")

		var warned bytes.Buffer
		core.NewEmitter(&warned, true).Emit(snap, enc)
		require.Contains(t, warned.String(), "LC_CTYPE=C")
		require.Contains(t, warned.String(), "default ASCII encoding")
	})
}
