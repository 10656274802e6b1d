// Package build holds build-time configuration injected via -ldflags.
package build

var (
	// Version is stamped by the release pipeline.
	Version = "dev"

	// AppName is the user-facing binary name used in logs and --version.
	AppName = "localeshim"

	// WarnOnCLocale gates the standalone degenerate-locale advisory at
	// build time. Stamp "1" to compile the warning in:
	//
	//	-ldflags "-X github.com/sanverite/locale-shim/internal/build.WarnOnCLocale=1"
	WarnOnCLocale = "0"
)

// WarnOnCLocaleEnabled reports whether the degenerate-locale advisory is
// compiled in.
func WarnOnCLocaleEnabled() bool {
	return WarnOnCLocale == "1"
}
