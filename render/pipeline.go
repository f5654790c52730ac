package render

import (
	"errors"
	"fmt"

	"flatquad/config"
	"flatquad/scene"
)

// Pass selects how a stage draws its primitives.
type Pass uint8

const (
	// DrawFlat draws PosTex triangles filled with the drawable color.
	DrawFlat Pass = iota + 1
)

func (p Pass) String() string {
	switch p {
	case DrawFlat:
		return "draw-flat"
	default:
		return fmt.Sprintf("pass(%d)", uint8(p))
	}
}

var (
	ErrNoStage     = errors.New("pipeline has no stage")
	ErrStageCount  = errors.New("pipeline supports a single backbuffer stage")
	ErrNoPass      = errors.New("stage has no pass")
	ErrUnknownPass = errors.New("unknown pass")
	ErrClearRange  = errors.New("clear value out of range [0, 1]")
	ErrDisplaySize = errors.New("display dimensions must be positive")
)

// BuildError reports a pipeline or bundle that could not be constructed. It is fatal
// at start-up.
type BuildError struct {
	Op  string
	Err error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build render %s: %v", e.Op, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// StageBuilder collects the clear target and passes of one stage.
type StageBuilder struct {
	clear    scene.Color
	depth    float32
	hasClear bool
	passes   []Pass
}

// BackbufferStage starts a stage that renders straight to the window backbuffer.
func BackbufferStage() *StageBuilder {
	return &StageBuilder{}
}

// ClearTarget sets the color and depth the stage clears to before any pass runs.
func (s *StageBuilder) ClearTarget(c scene.Color, depth float32) *StageBuilder {
	s.clear = c
	s.depth = depth
	s.hasClear = true
	return s
}

func (s *StageBuilder) WithPass(p Pass) *StageBuilder {
	s.passes = append(s.passes, p)
	return s
}

// PipelineBuilder accumulates stages until Build.
type PipelineBuilder struct {
	stages []*StageBuilder
}

func NewPipeline() *PipelineBuilder {
	return &PipelineBuilder{}
}

func (b *PipelineBuilder) WithStage(s *StageBuilder) *PipelineBuilder {
	b.stages = append(b.stages, s)
	return b
}

// Pipeline is a validated, immutable render pipeline.
type Pipeline struct {
	clear  scene.Color
	depth  float32
	passes []Pass
}

// Build validates the stages. A stage without ClearTarget clears to opaque black
// at depth 1.
func (b *PipelineBuilder) Build() (*Pipeline, error) {
	if b == nil || len(b.stages) == 0 {
		return nil, &BuildError{Op: "pipeline", Err: ErrNoStage}
	}
	if len(b.stages) > 1 {
		return nil, &BuildError{Op: "pipeline", Err: fmt.Errorf("%w: got %d", ErrStageCount, len(b.stages))}
	}
	st := b.stages[0]
	if st == nil || len(st.passes) == 0 {
		return nil, &BuildError{Op: "stage", Err: ErrNoPass}
	}
	for _, p := range st.passes {
		if p != DrawFlat {
			return nil, &BuildError{Op: "stage", Err: fmt.Errorf("%w: %s", ErrUnknownPass, p)}
		}
	}

	clear, depth := scene.RGB(0, 0, 0), float32(1)
	if st.hasClear {
		clear, depth = st.clear, st.depth
	}
	if !clear.InRange() {
		return nil, &BuildError{Op: "stage", Err: fmt.Errorf("%w: color %+v", ErrClearRange, clear)}
	}
	if depth != depth || depth < 0 || depth > 1 {
		return nil, &BuildError{Op: "stage", Err: fmt.Errorf("%w: depth %v", ErrClearRange, depth)}
	}

	passes := make([]Pass, len(st.passes))
	copy(passes, st.passes)
	return &Pipeline{clear: clear, depth: depth, passes: passes}, nil
}

func (p *Pipeline) ClearColor() scene.Color { return p.clear }
func (p *Pipeline) ClearDepth() float32     { return p.depth }

func (p *Pipeline) Passes() []Pass {
	out := make([]Pass, len(p.passes))
	copy(out, p.passes)
	return out
}

// Bundle pairs a built pipeline with the display it renders to.
type Bundle struct {
	Pipeline *Pipeline
	Display  config.DisplayConfig
}

// NewBundle builds the pipeline and checks it against the display.
func NewBundle(b *PipelineBuilder, display config.DisplayConfig) (*Bundle, error) {
	pipe, err := b.Build()
	if err != nil {
		return nil, err
	}
	if display.Width() <= 0 || display.Height() <= 0 {
		return nil, &BuildError{Op: "bundle", Err: fmt.Errorf("%w: %dx%d", ErrDisplaySize, display.Width(), display.Height())}
	}
	return &Bundle{Pipeline: pipe, Display: display}, nil
}
