package clipread

import "runtime"

// platform selects which backend chains run.
type platform int

const (
	platformWindows platform = iota
	platformMac
	// platformOther is the catch-all: any POSIX-like system is assumed to
	// have X11 clipboard utilities. Wrong on Wayland-only or headless hosts,
	// where the chains simply come up empty.
	platformOther
)

// currentPlatform probes the runtime environment. It is cheap and
// side-effect-free, so it is recomputed on every resolve rather than cached.
func currentPlatform() platform {
	switch runtime.GOOS {
	case "windows":
		return platformWindows
	case "darwin":
		return platformMac
	default:
		return platformOther
	}
}
