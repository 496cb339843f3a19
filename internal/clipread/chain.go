package clipread

import "log/slog"

// outcome is the three-way result of one backend step.
type outcome int

const (
	// stepHit: the mechanism worked and produced content.
	stepHit outcome = iota
	// stepEmpty: the mechanism worked and the clipboard holds none of this
	// content type. Terminal for the chain — a working mechanism's answer is
	// authoritative, later steps would only re-ask the same clipboard.
	stepEmpty
	// stepUnavailable: the mechanism itself is missing or broke (library
	// init failed, binary not on PATH, subprocess error, undecodable
	// payload). Falls through to the next step.
	stepUnavailable
)

// imageStep is one mechanism for retrieving a clipboard image. A stepHit
// payload is always PNG-encoded; normalization happens inside the step.
type imageStep struct {
	name  string
	fetch func() ([]byte, outcome)
}

// textStep is one mechanism for retrieving clipboard plain text.
type textStep struct {
	name  string
	fetch func() (string, outcome)
}

// imageChainFor returns the ordered image mechanisms for p.
func imageChainFor(p platform) []imageStep {
	switch p {
	case platformWindows:
		return []imageStep{libraryImageStep(), nativeImageStep()}
	case platformMac:
		return []imageStep{libraryImageStep(), osascriptImageStep()}
	default:
		return []imageStep{libraryImageStep(), xclipImageStep()}
	}
}

// textChainFor returns the ordered text mechanisms for p.
func textChainFor(p platform) []textStep {
	switch p {
	case platformWindows:
		return []textStep{nativeTextStep(), libraryTextStep()}
	case platformMac:
		return []textStep{pbpasteStep()}
	default:
		return []textStep{xclipTextStep(), xselTextStep()}
	}
}

// runImageChain tries steps in order until one hits or confirms empty.
// It never fails: every swallowed condition is at most debug-logged.
func runImageChain(steps []imageStep) []byte {
	for _, s := range steps {
		data, oc := s.fetch()
		switch oc {
		case stepHit:
			slog.Debug("clipboard image", "step", s.name, "bytes", len(data))
			return data
		case stepEmpty:
			slog.Debug("clipboard has no image", "step", s.name)
			return nil
		case stepUnavailable:
			slog.Debug("clipboard step unavailable", "step", s.name)
		}
	}
	return nil
}

// runTextChain is runImageChain for text steps.
func runTextChain(steps []textStep) string {
	for _, s := range steps {
		text, oc := s.fetch()
		switch oc {
		case stepHit:
			slog.Debug("clipboard text", "step", s.name, "chars", len(text))
			return text
		case stepEmpty:
			slog.Debug("clipboard has no text", "step", s.name)
			return ""
		case stepUnavailable:
			slog.Debug("clipboard step unavailable", "step", s.name)
		}
	}
	return ""
}
