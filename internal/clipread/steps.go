package clipread

import (
	"os/exec"
	"sync"

	atotto "github.com/atotto/clipboard"
	xclipboard "golang.design/x/clipboard"
)

// libInit initializes golang.design/x/clipboard once per process. The
// library refuses to work without a display server; that surfaces here as an
// error and the steps built on it report unavailable.
var (
	libInitOnce sync.Once
	libInitErr  error
)

func libInit() error {
	libInitOnce.Do(func() {
		libInitErr = xclipboard.Init()
	})
	return libInitErr
}

// libraryImageStep reads the clipboard through golang.design/x/clipboard,
// the generic image-grab mechanism shared by all three platforms. The
// library hands back PNG on every platform, but the payload is normalized
// anyway so the PNG invariant never depends on library internals.
func libraryImageStep() imageStep {
	return imageStep{
		name: "clipboard library (image)",
		fetch: func() ([]byte, outcome) {
			if err := libInit(); err != nil {
				return nil, stepUnavailable
			}
			data := xclipboard.Read(xclipboard.FmtImage)
			if len(data) == 0 {
				return nil, stepEmpty
			}
			normalized, err := toPNG(data)
			if err != nil {
				// A corrupt or foreign payload is not actionable; let the
				// next mechanism have a look.
				return nil, stepUnavailable
			}
			return normalized, stepHit
		},
	}
}

// libraryTextStep is the Windows text fallback when the native read fails.
func libraryTextStep() textStep {
	return textStep{
		name: "clipboard library (text)",
		fetch: func() (string, outcome) {
			if err := libInit(); err != nil {
				return "", stepUnavailable
			}
			data := xclipboard.Read(xclipboard.FmtText)
			if len(data) == 0 {
				return "", stepEmpty
			}
			return string(data), stepHit
		},
	}
}

// nativeTextStep reads CF_UNICODETEXT through the Windows clipboard API
// (the atotto package wraps OpenClipboard/GetClipboardData directly).
func nativeTextStep() textStep {
	return textStep{
		name: "win32 CF_UNICODETEXT",
		fetch: func() (string, outcome) {
			text, err := atotto.ReadAll()
			if err != nil {
				return "", stepUnavailable
			}
			if text == "" {
				return "", stepEmpty
			}
			return text, stepHit
		},
	}
}

// runCapture runs an executable with fixed args and captures stdout.
// Missing binary, launch failure, or non-zero exit all report unavailable;
// a clean run with empty stdout reports empty.
func runCapture(name string, args ...string) ([]byte, outcome) {
	if _, err := exec.LookPath(name); err != nil {
		return nil, stepUnavailable
	}
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return nil, stepUnavailable
	}
	if len(out) == 0 {
		return nil, stepEmpty
	}
	return out, stepHit
}

// pbpasteStep reads macOS clipboard text via pbpaste.
func pbpasteStep() textStep {
	return textStep{
		name: "pbpaste",
		fetch: func() (string, outcome) {
			out, oc := runCapture("pbpaste")
			return string(out), oc
		},
	}
}

// pngClipboardScript asks System Events to coerce the pasteboard to the
// PNGf class.
const pngClipboardScript = `
tell application "System Events"
	try
		set theData to the clipboard as «class PNGf»
		return theData
	on error
		return ""
	end try
end tell
`

// osascriptImageStep is the macOS fallback when the clipboard library is
// unavailable. osascript prints PNGf data as an AppleScript hex literal,
// which this step does not parse — it always resolves to absent. The
// invocation is kept so behavior (including the spawned process) stays
// stable until a parser for the hex form lands.
func osascriptImageStep() imageStep {
	return imageStep{
		name: "osascript PNGf",
		fetch: func() ([]byte, outcome) {
			_, oc := runCapture("osascript", "-e", pngClipboardScript)
			if oc == stepHit {
				oc = stepEmpty
			}
			return nil, oc
		},
	}
}

// xclipImageStep asks xclip for the image/png target directly; on success
// its stdout bytes are already the PNG.
func xclipImageStep() imageStep {
	return imageStep{
		name: "xclip image/png",
		fetch: func() ([]byte, outcome) {
			return runCapture("xclip", "-selection", "clipboard", "-t", "image/png", "-o")
		},
	}
}

// xclipTextStep reads X11 clipboard text via xclip.
func xclipTextStep() textStep {
	return textStep{
		name: "xclip",
		fetch: func() (string, outcome) {
			out, oc := runCapture("xclip", "-selection", "clipboard", "-o")
			return string(out), oc
		},
	}
}

// xselTextStep is the fallback when xclip is not installed.
func xselTextStep() textStep {
	return textStep{
		name: "xsel",
		fetch: func() (string, outcome) {
			out, oc := runCapture("xsel", "--clipboard", "--output")
			return string(out), oc
		},
	}
}
