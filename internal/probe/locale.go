package probe

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

// cutf8Candidates is the fixed, ordered list of UTF-8-capable locale names
// tried during coercion. Order defines priority: the first name the OS
// accepts wins. The list is immutable for the process lifetime.
var cutf8Candidates = []string{"C.UTF-8", "C.utf8", "UTF-8"}

// Candidates returns a copy of the ordered UTF-8 candidate list. Callers may
// not mutate the selection order, so the backing array is never shared.
func Candidates() []string {
	return append([]string(nil), cutf8Candidates...)
}

// Activator abstracts the OS locale primitive so the negotiation algorithm
// can be exercised against a fake without a live locale subsystem.
//
// Probe answers availability without a lasting side effect. Commit makes the
// named locale the process-wide character-classification locale; it touches
// LC_CTYPE only, never any other category. Charmap reports the codeset of
// the ambient locale for names that carry no explicit codeset suffix.
type Activator interface {
	Probe(ctx context.Context, name string) bool
	Commit(name string) error
	Charmap(ctx context.Context) (string, error)
}

// Config controls a SystemActivator.
type Config struct {
	// Timeout bounds each subprocess consultation ("locale -a",
	// "locale charmap"). If zero, DefaultTimeout is used.
	Timeout time.Duration

	// LocaleCommand overrides the binary used for listing and charmap
	// queries. Defaults to "locale".
	LocaleCommand string

	// LocaleDirs are directories holding compiled locale definitions,
	// consulted as a fast path before shelling out. Defaults to the glibc
	// location.
	LocaleDirs []string
}

// Sensible defaults for production probes.
const (
	DefaultTimeout       = 3 * time.Second
	DefaultLocaleCommand = "locale"
)

// DefaultLocaleDirs lists where glibc keeps per-locale compiled definitions.
// Locales bundled into the binary locale-archive do not appear here, which is
// why the directory check is only a fast path, not authoritative.
var DefaultLocaleDirs = []string{"/usr/lib/locale"}

// SystemActivator probes and commits locales against the live operating
// system. The "locale -a" listing is fetched at most once and cached; each
// candidate is therefore probed at most once per process start with no
// retries, and a failed probe leaves no side effect behind.
type SystemActivator struct {
	cfg Config

	mu      sync.Mutex
	listing map[string]struct{}
	listErr error
	listed  bool
}

// NewSystemActivator constructs an activator with defaults applied.
func NewSystemActivator(cfg Config) *SystemActivator {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.LocaleCommand == "" {
		cfg.LocaleCommand = DefaultLocaleCommand
	}
	if cfg.LocaleDirs == nil {
		cfg.LocaleDirs = append([]string(nil), DefaultLocaleDirs...)
	}
	return &SystemActivator{cfg: cfg}
}

// Probe reports whether the OS accepts name as a character-classification
// locale. It checks the compiled-locale directories first, then falls back
// to the cached "locale -a" listing. A listing failure is treated as "not
// available" for the candidate, never as a hard error.
func (a *SystemActivator) Probe(ctx context.Context, name string) bool {
	for _, dir := range a.cfg.LocaleDirs {
		if unix.Access(filepath.Join(dir, name), unix.R_OK) == nil {
			return true
		}
	}

	listing, err := a.availableLocales(ctx)
	if err != nil {
		return false
	}
	_, ok := listing[normalizeListingName(name)]
	return ok
}

// Commit makes name the process-wide character-classification locale by
// setting LC_CTYPE in the process environment. No other locale category is
// touched; exported children and the in-process encoding policy both observe
// the committed value.
func (a *SystemActivator) Commit(name string) error {
	if err := os.Setenv("LC_CTYPE", name); err != nil {
		return fmt.Errorf("set LC_CTYPE=%s: %w", name, err)
	}
	return nil
}

// Charmap reports the codeset of the ambient locale via "locale charmap"
// (the nl_langinfo(CODESET) answer). The raw spelling is returned; callers
// normalize platform synonyms.
func (a *SystemActivator) Charmap(ctx context.Context) (string, error) {
	out, err := a.runLocale(ctx, "charmap")
	if err != nil {
		return "", fmt.Errorf("query locale charmap: %w", err)
	}
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return strings.TrimSpace(line), nil
}

// availableLocales returns the cached, normalized "locale -a" listing,
// fetching it on first use.
func (a *SystemActivator) availableLocales(ctx context.Context) (map[string]struct{}, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.listed {
		return a.listing, a.listErr
	}
	a.listed = true

	out, err := a.runLocale(ctx, "-a")
	if err != nil {
		a.listErr = fmt.Errorf("list locales: %w", err)
		return nil, a.listErr
	}
	a.listing = parseListing(out)
	return a.listing, nil
}

func (a *SystemActivator) runLocale(ctx context.Context, arg string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, a.cfg.LocaleCommand, arg)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s %s: %w", a.cfg.LocaleCommand, arg, err)
	}
	return stdout.Bytes(), nil
}

// parseListing converts raw "locale -a" output into a normalized membership
// set. Blank lines are skipped.
func parseListing(out []byte) map[string]struct{} {
	listing := make(map[string]struct{})
	for _, line := range strings.Split(string(out), "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		listing[normalizeListingName(name)] = struct{}{}
	}
	return listing
}

// normalizeListingName folds the spelling variations seen across platform
// locale listings ("C.UTF-8" vs "C.utf8", hyphenated vs not) so membership
// checks are spelling-insensitive. This normalization applies to listing
// matches only; governing-value classification elsewhere is exact-match.
func normalizeListingName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, "-", "")
}
