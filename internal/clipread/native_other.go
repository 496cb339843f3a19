//go:build !windows

package clipread

// nativeImageStep only has a real implementation on Windows. The Windows
// chain is still constructed on other platforms (tests exercise every
// chain), so this stub keeps it buildable and reports unavailable.
func nativeImageStep() imageStep {
	return imageStep{
		name: "win32 CF_DIB",
		fetch: func() ([]byte, outcome) {
			return nil, stepUnavailable
		},
	}
}
