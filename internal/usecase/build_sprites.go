package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/svgstore/internal/domain"
	"github.com/aalvaropc/svgstore/internal/ports"
	"github.com/aalvaropc/svgstore/internal/sprite"
)

// Component identifies the sprite engine in logs.
const Component = "svgstore"

const defaultConcurrency = 8

type Option func(*BuildSprites)

func WithLogger(l *slog.Logger) Option {
	return func(uc *BuildSprites) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithPublicPath sets the prefix of every icon reference URL.
func WithPublicPath(p string) Option {
	return func(uc *BuildSprites) { uc.publicPath = p }
}

// WithConcurrency bounds the number of icons optimized at once.
func WithConcurrency(n int) Option {
	return func(uc *BuildSprites) {
		if n > 0 {
			uc.concurrency = n
		}
	}
}

// WithManifest enables the icon manifest at the given output-relative path.
func WithManifest(p string) Option {
	return func(uc *BuildSprites) { uc.manifest = p }
}

// BuildSprites drives one build pass over a private sprite store:
// ingest, generate, rewrite references, emit.
type BuildSprites struct {
	finder    ports.IconFinder
	optimizer ports.Optimizer

	log         *slog.Logger
	publicPath  string
	manifest    string
	concurrency int

	store   *sprite.Store
	phase   domain.Phase
	emit    map[string]bool
	written map[string]bool

	genErrors map[string]error
	failures  []domain.IconFailure
	rewrites  []domain.RewriteReport
}

func NewBuildSprites(finder ports.IconFinder, optimizer ports.Optimizer, opts ...Option) *BuildSprites {
	uc := &BuildSprites{
		finder:      finder,
		optimizer:   optimizer,
		log:         slog.New(slog.NewJSONHandler(io.Discard, nil)),
		concurrency: defaultConcurrency,
		store:       sprite.NewStore(),
		phase:       domain.PhaseIdle,
		emit:        map[string]bool{},
		written:     map[string]bool{},
		genErrors:   map[string]error{},
	}
	for _, opt := range opts {
		opt(uc)
	}
	uc.log = uc.log.With("component", Component)
	return uc
}

// Phase returns the current phase of the pass.
func (uc *BuildSprites) Phase() domain.Phase {
	return uc.phase
}

// Store exposes the sprites registered so far.
func (uc *BuildSprites) Store() *sprite.Store {
	return uc.store
}

// Failures returns the icons that could not be ingested.
func (uc *BuildSprites) Failures() []domain.IconFailure {
	out := make([]domain.IconFailure, len(uc.failures))
	copy(out, uc.failures)
	return out
}

func (uc *BuildSprites) advance(to domain.Phase) error {
	if err := domain.CheckTransition(uc.phase, to); err != nil {
		return &domain.OpError{Op: "build." + string(to), Kind: domain.KindInvalidPhase, Err: err}
	}
	return nil
}

// Ingest discovers, optimizes and registers the icons of every sprite config.
// Icons that cannot be read or optimized are recorded as failures; the rest of
// the pass continues. Cancelling ctx aborts ingestion.
func (uc *BuildSprites) Ingest(ctx context.Context, sprites []domain.SpriteConfig) error {
	if err := uc.advance(domain.PhaseIngesting); err != nil {
		return err
	}
	uc.phase = domain.PhaseIngesting

	for i, cfg := range sprites {
		if err := uc.ingestOne(ctx, cfg); err != nil {
			return fmt.Errorf("sprites[%d]: %w", i, err)
		}
	}
	return nil
}

func (uc *BuildSprites) ingestOne(ctx context.Context, cfg domain.SpriteConfig) error {
	paths, err := uc.finder.FindIcons(cfg.Directory, cfg.Pattern)
	if err != nil {
		return err
	}

	contents := make([]string, len(paths))
	errs := make([]error, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)
	for i, p := range paths {
		i, p := i, p // per-iteration copies (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			raw, err := uc.finder.ReadIcon(p)
			if err != nil {
				errs[i] = err
				return nil
			}
			out, err := uc.optimizer.Optimize(gctx, raw, cfg.Optimizer)
			if err != nil {
				errs[i] = err
				return nil
			}
			contents[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s := uc.store.GetOrCreate(cfg.Name)
	if cfg.Emit {
		uc.emit[cfg.Name] = true
	}

	naming := cfg.Naming()
	added := 0
	for i, p := range paths {
		if errs[i] != nil {
			uc.failures = append(uc.failures, domain.IconFailure{
				Sprite:  cfg.Name,
				Source:  p,
				Kind:    domain.KindOf(errs[i]),
				Message: errs[i].Error(),
			})
			uc.log.Warn("build.ingest.failed", "sprite", cfg.Name, "source", p, "err", errs[i])
			continue
		}
		s.AddIcon(p, contents[i], naming)
		added++
	}

	uc.log.Info("build.ingest.done", "sprite", cfg.Name, "found", len(paths), "added", added)
	return nil
}

// Generate renders every sprite. A sprite that fails keeps its previous state;
// the pass fails only when a failing sprite is due for emission.
func (uc *BuildSprites) Generate() error {
	if err := uc.advance(domain.PhaseGenerated); err != nil {
		return err
	}

	var fatal []error
	for _, s := range uc.store.Sprites() {
		content, err := s.Generate()
		if err != nil {
			uc.genErrors[s.LogicalPath()] = err
			uc.log.Error("build.generate.failed", "sprite", s.LogicalPath(), "err", err)
			if uc.emit[s.LogicalPath()] {
				fatal = append(fatal, err)
			}
			continue
		}
		delete(uc.genErrors, s.LogicalPath())
		uc.log.Debug("build.generate.done", "sprite", s.LogicalPath(), "final", s.FinalPath(), "size", len(content))
	}
	if len(fatal) > 0 {
		return errors.Join(fatal...)
	}

	uc.phase = domain.PhaseGenerated
	return nil
}

// Rewrite replaces logical sprite paths with final paths in every artifact and
// returns one entry per artifact that changed.
func (uc *BuildSprites) Rewrite(artifacts []*domain.Artifact) ([]domain.RewriteReport, error) {
	if err := uc.advance(domain.PhaseRewritten); err != nil {
		return nil, err
	}
	uc.phase = domain.PhaseRewritten

	templated := uc.store.Templated()
	if len(templated) == 0 {
		return nil, nil
	}

	var out []domain.RewriteReport
	for _, a := range artifacts {
		n := 0
		for _, s := range templated {
			n += s.Rewrite(a)
		}
		if n > 0 {
			out = append(out, domain.RewriteReport{Path: a.Path, Replacements: n})
			uc.log.Debug("build.rewrite.artifact", "path", a.Path, "replacements", n)
		}
	}
	uc.rewrites = append(uc.rewrites, out...)
	return out, nil
}

// Emit writes each emitting sprite to table under its final path. A path
// already present in table that this pass did not write is a conflict.
func (uc *BuildSprites) Emit(table ports.AssetTable) error {
	if err := uc.advance(domain.PhaseEmitted); err != nil {
		return err
	}
	uc.phase = domain.PhaseEmitted

	if len(uc.emit) == 0 {
		uc.log.Debug("build.emit.skipped")
		return nil
	}

	var errs []error
	for _, s := range uc.store.Sprites() {
		if !uc.emit[s.LogicalPath()] || !s.Generated() {
			continue
		}

		path := s.FinalPath()
		if _, exists := table.Asset(path); exists && !uc.written[path] {
			errs = append(errs, &domain.OpError{
				Op:   "build.emit",
				Kind: domain.KindConflict,
				Path: path,
				Err:  domain.ErrConflict,
			})
			continue
		}

		content := s.Content()
		table.SetAsset(path, ports.Asset{
			Source: func() []byte { return []byte(content) },
			Size:   func() int { return len(content) },
		})
		uc.written[path] = true
		uc.log.Info("build.emit.done", "sprite", s.LogicalPath(), "path", path, "size", len(content))
	}
	return errors.Join(errs...)
}

// IconManifest returns the manifest artifact mapping each icon source to its
// export record. URLs carry the sprite path current at call time; calling it
// before Generate yields logical paths that Rewrite later resolves.
func (uc *BuildSprites) IconManifest() (*domain.Artifact, error) {
	if uc.manifest == "" {
		return nil, nil
	}

	modules := map[string]sprite.IconModule{}
	for _, s := range uc.store.Sprites() {
		for _, icon := range s.Icons() {
			modules[icon.SourcePath] = icon.Module(uc.publicPath)
		}
	}

	b, err := json.MarshalIndent(modules, "", "  ")
	if err != nil {
		return nil, &domain.OpError{Op: "build.manifest", Kind: domain.KindExecution, Path: uc.manifest, Err: err}
	}
	return domain.NamedArtifact(uc.manifest, uc.manifest, string(b)+"\n"), nil
}

// Report summarizes the pass so far.
func (uc *BuildSprites) Report() domain.BuildReport {
	rep := domain.BuildReport{
		Phase:    uc.phase,
		Sprites:  []domain.SpriteReport{},
		Failures: uc.Failures(),
		Rewrites: append([]domain.RewriteReport{}, uc.rewrites...),
	}

	for _, s := range uc.store.Sprites() {
		sr := domain.SpriteReport{
			Name:        s.Name(),
			LogicalPath: s.LogicalPath(),
			FinalPath:   s.FinalPath(),
			Size:        len(s.Content()),
			Emitted:     uc.emit[s.LogicalPath()] && uc.written[s.FinalPath()],
			Icons:       []domain.IconReport{},
		}
		if err := uc.genErrors[s.LogicalPath()]; err != nil {
			sr.Error = err.Error()
		}
		for _, icon := range s.Icons() {
			sr.Icons = append(sr.Icons, domain.IconReport{
				Source: icon.SourcePath,
				Name:   icon.Name,
				Symbol: icon.SymbolName,
				URL:    icon.URL(uc.publicPath),
			})
		}
		rep.Sprites = append(rep.Sprites, sr)
	}
	return rep
}

// Execute runs a whole pass. artifacts and table may be nil to skip the
// rewrite and emit steps respectively.
func (uc *BuildSprites) Execute(ctx context.Context, cfg domain.Config, artifacts ports.ArtifactSource, table ports.AssetTable) (domain.BuildReport, error) {
	startedAt := time.Now()
	finish := func(err error) (domain.BuildReport, error) {
		rep := uc.Report()
		rep.StartedAt = startedAt
		rep.FinishedAt = time.Now()
		return rep, err
	}

	if err := uc.Ingest(ctx, cfg.Sprites); err != nil {
		return finish(err)
	}

	manifest, err := uc.IconManifest()
	if err != nil {
		return finish(err)
	}

	if err := uc.Generate(); err != nil {
		return finish(err)
	}

	var loaded []*domain.Artifact
	if artifacts != nil {
		loaded, err = artifacts.LoadArtifacts()
		if err != nil {
			return finish(err)
		}
	}
	if manifest != nil {
		loaded = append(loaded, manifest)
	}

	if _, err := uc.Rewrite(loaded); err != nil {
		return finish(err)
	}

	if table != nil {
		if err := uc.Emit(table); err != nil {
			return finish(err)
		}
	}

	if artifacts != nil {
		var dirty []*domain.Artifact
		for _, a := range loaded {
			if a.Changed || a == manifest {
				dirty = append(dirty, a)
			}
		}
		if err := artifacts.SaveArtifacts(dirty); err != nil {
			return finish(err)
		}
	}

	uc.log.Info("build.done",
		"sprites", uc.store.Len(),
		"failures", len(uc.failures),
		"rewrites", len(uc.rewrites),
	)
	return finish(nil)
}
