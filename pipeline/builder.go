package pipeline

import (
	"github.com/npillmayer/textnorm"
	"github.com/npillmayer/textnorm/internal/tracing"
	"github.com/npillmayer/textnorm/locale"
)

// Builder assembles a Pipeline from stages. Stages run in the order they
// are added. A zero builder is not usable; start with NewBuilder.
//
// A pipeline is fused when every stage exposes the RuneMapper capability
// and returns a mapping function for the bound locale. Stages added with
// AddBoxedStage are treated as opaque even if they would be fusable, so
// boxing a stage forces the sequential path.
type Builder struct {
	ctx    *locale.Context
	stages []textnorm.Stage
	boxed  bool
}

// NewBuilder creates an empty builder. The locale defaults to English
// until Locale or Context is called.
func NewBuilder() *Builder {
	return &Builder{ctx: locale.NewContext(locale.English)}
}

// Locale binds the pipeline to a language.
func (b *Builder) Locale(lang locale.Lang) *Builder {
	b.ctx = locale.NewContext(lang)
	return b
}

// Context binds the pipeline to a pre-built locale context.
func (b *Builder) Context(ctx *locale.Context) *Builder {
	if ctx != nil {
		b.ctx = ctx
	}
	return b
}

// AddStage appends a stage to the chain.
func (b *Builder) AddStage(s textnorm.Stage) *Builder {
	b.stages = append(b.stages, s)
	return b
}

// AddBoxedStage appends a stage that is treated as opaque: the pipeline
// will not attempt to fuse it, even if the stage is a RuneMapper.
func (b *Builder) AddBoxedStage(s textnorm.Stage) *Builder {
	b.stages = append(b.stages, s)
	b.boxed = true
	return b
}

// Build creates the pipeline. An empty chain is legal and yields a
// pipeline that borrows every input unchanged.
func (b *Builder) Build() *Pipeline {
	p := &Pipeline{
		ctx:    b.ctx,
		stages: append([]textnorm.Stage(nil), b.stages...),
	}
	if !b.boxed {
		p.mappers = fuse(p.stages, b.ctx)
	}
	if p.mappers != nil {
		tracing.P("locale", b.ctx.Lang.Code).Debugf("pipeline of %d stages is fused", len(p.stages))
	} else {
		tracing.P("locale", b.ctx.Lang.Code).Debugf("pipeline of %d stages runs sequentially", len(p.stages))
	}
	return p
}

// fuse collects the mapping functions of all stages, or returns nil if
// any stage cannot be fused under ctx.
func fuse(stages []textnorm.Stage, ctx *locale.Context) []textnorm.MapFn {
	mappers := make([]textnorm.MapFn, 0, len(stages))
	for _, s := range stages {
		rm, ok := s.(textnorm.RuneMapper)
		if !ok {
			return nil
		}
		m := rm.Mapper(ctx)
		if m == nil {
			return nil
		}
		mappers = append(mappers, m)
	}
	return mappers
}
