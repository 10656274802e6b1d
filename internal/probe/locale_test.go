package probe

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCandidates(t *testing.T) {
	t.Run("order", func(t *testing.T) {
		require.Equal(t, []string{"C.UTF-8", "C.utf8", "UTF-8"}, Candidates())
	})

	t.Run("callers get a copy", func(t *testing.T) {
		got := Candidates()
		got[0] = "mutated"
		require.Equal(t, []string{"C.UTF-8", "C.utf8", "UTF-8"}, Candidates())
	})
}

func TestNormalizeListingName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"C.UTF-8", "c.utf8"},
		{"C.utf8", "c.utf8"},
		{"UTF-8", "utf8"},
		{"en_US.UTF-8", "en_us.utf8"},
		{"  POSIX \n", "posix"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, normalizeListingName(tc.in), "input %q", tc.in)
	}
}

func TestParseListing(t *testing.T) {
	out := []byte("C\nC.utf8\nPOSIX\n\nen_US.utf8\n")
	listing := parseListing(out)

	for _, present := range []string{"C", "C.UTF-8", "C.utf8", "POSIX", "en_US.UTF-8"} {
		_, ok := listing[normalizeListingName(present)]
		require.True(t, ok, "expected %q in listing", present)
	}
	_, ok := listing[normalizeListingName("ja_JP.UTF-8")]
	require.False(t, ok)
	_, blank := listing[""]
	require.False(t, blank)
}

func TestNewSystemActivator_Defaults(t *testing.T) {
	a := NewSystemActivator(Config{})
	require.Equal(t, DefaultTimeout, a.cfg.Timeout)
	require.Equal(t, DefaultLocaleCommand, a.cfg.LocaleCommand)
	require.Equal(t, DefaultLocaleDirs, a.cfg.LocaleDirs)
}

func TestCommit_SetsOnlyLCCtype(t *testing.T) {
	t.Setenv("LC_CTYPE", "C")
	t.Setenv("LC_ALL", "C")
	t.Setenv("LANG", "C")

	a := NewSystemActivator(Config{})
	require.NoError(t, a.Commit("C.UTF-8"))

	require.Equal(t, "C.UTF-8", os.Getenv("LC_CTYPE"))
	require.Equal(t, "C", os.Getenv("LC_ALL"))
	require.Equal(t, "C", os.Getenv("LANG"))
}
