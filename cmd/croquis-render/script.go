package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/croquis"
)

// script is a recorded drawing: strokes in canvas coordinates replayed
// into a session.
//
//	reference = "model.jpg"
//
//	[[stroke]]
//	tool = "pen"
//	width = 5
//	points = [[100, 200], [140, 260], [150, 330]]
type script struct {
	Reference string   `toml:"reference"`
	Strokes   []stroke `toml:"stroke"`
}

type stroke struct {
	Tool   string      `toml:"tool"`
	Width  int         `toml:"width"`
	Points [][]float64 `toml:"points"`
}

var errBadPoint = errors.New("point must be [x, y]")

func decodeScript(r io.Reader) (*script, error) {
	var s script
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	for i, st := range s.Strokes {
		for j, p := range st.Points {
			if len(p) != 2 {
				return nil, fmt.Errorf("stroke %d point %d: %w", i, j, errBadPoint)
			}
		}
	}
	return &s, nil
}

// events turns the script into studio events on top of cfg. Width
// overrides change the tool width through a config update, so they stay
// in effect for later strokes of the same tool.
func (s *script) events(cfg croquis.Config) []croquis.Event {
	var evs []croquis.Event
	for _, st := range s.Strokes {
		if len(st.Points) == 0 {
			continue
		}
		tool := croquis.ParseTool(st.Tool)
		evs = append(evs, croquis.ToolSelected{Tool: tool})
		if st.Width > 0 {
			if tool == croquis.Eraser {
				cfg.EraserWidth = st.Width
			} else {
				cfg.PenWidth = st.Width
			}
			evs = append(evs, croquis.ConfigChanged{Config: cfg})
		}
		evs = append(evs, croquis.PointerDown{X: st.Points[0][0], Y: st.Points[0][1]})
		for _, p := range st.Points[1:] {
			evs = append(evs, croquis.PointerMove{X: p[0], Y: p[1]})
		}
		evs = append(evs, croquis.PointerUp{})
	}
	return evs
}
