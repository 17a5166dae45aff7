package tornado

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an event script.
type scriptStep struct {
	Action string `json:"action"`
	Frames int    `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for an event script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences scene-advance events across ticks, standing in for the
// keypress when the scene runs unattended. Attach to a World via SetScript.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON event script:
//
//	{"steps": [{"action": "wait", "frames": 120}, {"action": "advance"}]}
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range file.Steps {
		switch st.Action {
		case "advance", "wait":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: file.Steps}, nil
}

// Done reports whether every step has been executed.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one tick. Called from World.Update.
func (s *Script) step(w *World) {
	if s.done {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "advance":
		w.Advance()
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
}
