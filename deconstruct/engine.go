package deconstruct

import (
	"context"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/teranos/autodeconstruct/decl"
	"github.com/teranos/autodeconstruct/errors"
	"github.com/teranos/autodeconstruct/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options configures an Engine.
type Options struct {
	// ArtifactName names the synthesized source (default DefaultArtifactName)
	ArtifactName string

	// RootType is the root-type sentinel used when the program does not carry one
	RootType string

	// Workers bounds per-type parallelism (<= 0 means GOMAXPROCS)
	Workers int

	// CacheSize enables the incremental cache when > 0
	CacheSize int
}

// Engine runs synthesis passes. The cache is the only state kept between passes.
type Engine struct {
	opts   Options
	cache  *Cache
	logger *zap.SugaredLogger
}

// NewEngine creates an engine. A nil logger discards output.
func NewEngine(opts Options, log *zap.SugaredLogger) (*Engine, error) {
	if opts.ArtifactName == "" {
		opts.ArtifactName = DefaultArtifactName
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	e := &Engine{opts: opts, logger: log}
	if opts.CacheSize > 0 {
		cache, err := NewCache(opts.CacheSize)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create engine")
		}
		e.cache = cache
	}
	return e, nil
}

// Generate runs a single uncached pass with default options.
func Generate(ctx context.Context, program *decl.Program) (*Result, error) {
	e, err := NewEngine(Options{}, nil)
	if err != nil {
		return nil, err
	}
	return e.Run(ctx, program)
}

// Cache returns the engine's cache, nil when caching is disabled.
func (e *Engine) Cache() *Cache {
	return e.cache
}

// outcome is the per-candidate result of one pass.
type outcome struct {
	entry cacheEntry
	hit   bool
}

// Run performs one pass over the program.
//
// The pass is all-or-nothing: if ctx is cancelled, Run returns the context
// error and the cache is left exactly as it was.
func (e *Engine) Run(ctx context.Context, program *decl.Program) (*Result, error) {
	if program == nil {
		program = &decl.Program{}
	}
	if program.RootType == "" && e.opts.RootType != "" {
		rooted := *program
		rooted.RootType = e.opts.RootType
		program = &rooted
	}

	passID := uuid.NewString()
	log := logger.ChildLogger(e.logger, logger.FieldPassID, passID)
	start := time.Now()

	graph := decl.NewGraph(program)
	candidates := Scan(graph)
	log.Debugw("Scanned declarations", "types", graph.Len(), logger.FieldCandidates, len(candidates))

	outcomes := make([]outcome, len(candidates))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(e.opts.Workers)
	for i, t := range candidates {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			outcomes[i] = e.evaluate(graph, t)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "pass abandoned")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "pass abandoned")
	}

	result := &Result{
		PassID:       passID,
		ArtifactName: e.opts.ArtifactName,
		Diagnostics:  []Diagnostic{},
		Candidates:   len(candidates),
	}

	updates := make(map[string]cacheEntry)
	live := make(map[string]bool, len(candidates))
	blocks := make([]string, 0, len(candidates))
	containers := make(containerSet)

	for i, t := range candidates {
		o := outcomes[i]
		live[t.Identity] = true
		if o.hit {
			result.Cache.Hits++
		} else {
			result.Cache.Misses++
			updates[t.Identity] = o.entry
		}

		if o.entry.unit == nil {
			result.Skipped = append(result.Skipped, Skip{Type: t.Identity, Reason: o.entry.skip})
			log.Debugw("Skipped type", logger.FieldType, t.Identity, logger.FieldReason, o.entry.skip)
			continue
		}

		// Rebind to the current snapshot; a cache hit guarantees structural equality
		unit := *o.entry.unit
		unit.Type = t
		block := o.entry.block
		if name := containers.claim(t.Namespace, unit.Container, unit.Accessibility); name != unit.Container {
			unit.Container = name
			block = EmitUnit(unit)
		}
		result.Units = append(result.Units, unit)
		blocks = append(blocks, block)
	}

	result.Artifact = AssembleArtifact(blocks)
	e.cache.commit(updates, live)

	log.Infow("Synthesis pass complete",
		logger.FieldCandidates, len(candidates),
		logger.FieldUnits, len(result.Units),
		logger.FieldSkipped, len(result.Skipped),
		logger.FieldCacheHits, result.Cache.Hits,
		logger.FieldCacheMiss, result.Cache.Misses,
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	return result, nil
}

// evaluate resolves, checks, names and emits one candidate, reusing the cached
// outcome when the structural fingerprint is unchanged.
func (e *Engine) evaluate(graph *decl.Graph, t *decl.TypeDeclaration) outcome {
	access, _ := EffectiveAccessibility(graph, t)
	properties := Resolve(graph, t)
	existing := ExistingSignatures(t)
	fp := fingerprint(t, access, properties, existing)

	if entry, ok := e.cache.lookup(t.Identity, fp); ok {
		return outcome{entry: entry, hit: true}
	}

	entry := cacheEntry{fingerprint: fp}
	switch {
	case len(properties) == 0:
		entry.skip = SkipNoProperties
	case Conflicts(existing, len(properties)):
		entry.skip = SkipExistingDeconstruct
	default:
		self, outs := Sanitize(properties)
		unit := &Unit{
			Type:          t,
			Properties:    properties,
			SelfName:      self,
			Outs:          outs,
			Accessibility: access,
			Container:     ContainerName(t),
		}
		entry.unit = unit
		entry.block = EmitUnit(*unit)
	}
	return outcome{entry: entry}
}

// containerSet tracks the extension classes claimed in one artifact. Partial
// declarations of one class must agree on accessibility, so a name already
// held with a different accessibility is renamed with the smallest free suffix.
type containerSet map[string]decl.Accessibility

func (c containerSet) claim(namespace, name string, access decl.Accessibility) string {
	stem := strings.TrimSuffix(name, "Extensions")
	candidate := name
	for i := 1; ; i++ {
		key := namespace + "\x00" + candidate
		held, taken := c[key]
		if !taken || held == access {
			c[key] = access
			return candidate
		}
		candidate = stem + strconv.Itoa(i) + "Extensions"
	}
}
