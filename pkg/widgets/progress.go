package widgets

import (
	"fmt"

	"github.com/A0ks9/XmlRuntime-sub001/pkg/view"
)

// ProgressBar shows determinate or indeterminate progress.
type ProgressBar struct {
	view.Base

	Progress      int
	Max           int
	Indeterminate bool
}

func (p *ProgressBar) Init(ctx *view.Context) {
	p.Max = 100
}

// SetProgress clamps into [0, Max].
func (p *ProgressBar) SetProgress(v int) {
	if v < 0 {
		v = 0
	}
	if p.Max > 0 && v > p.Max {
		v = p.Max
	}
	p.Progress = v
}

// SetMax rejects non-positive ranges.
func (p *ProgressBar) SetMax(v int) error {
	if v <= 0 {
		return fmt.Errorf("max must be positive, got %d", v)
	}
	p.Max = v
	if p.Progress > v {
		p.Progress = v
	}
	return nil
}
