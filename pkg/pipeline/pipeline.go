package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/xfumihiro/elixium-core/pkg/audit"
	"github.com/xfumihiro/elixium-core/pkg/config"
	"github.com/xfumihiro/elixium-core/pkg/contract/ast"
	cerrors "github.com/xfumihiro/elixium-core/pkg/contract/errors"
	"github.com/xfumihiro/elixium-core/pkg/contract/gamma"
	"github.com/xfumihiro/elixium-core/pkg/contract/instrument"
	"github.com/xfumihiro/elixium-core/pkg/contract/parser"
	"github.com/xfumihiro/elixium-core/pkg/contract/sanitize"
	"github.com/xfumihiro/elixium-core/pkg/telemetry/metrics"
)

// Result is the outcome of one successful compilation.
type Result struct {
	// JobID uniquely identifies this compilation.
	JobID string

	// Tree is the sanitized, instrumented tree ready for code generation.
	Tree *ast.Node

	// StaticGamma is the sum of every metering charge inserted.
	StaticGamma gamma.Cost

	// Charges is the number of metering calls inserted.
	Charges int

	// Diagnostics lists every soft cost-evaluation fallback.
	Diagnostics []gamma.Diagnostic

	// NodeCount is the node count of the input tree.
	NodeCount int

	// Duration is the compilation wall time.
	Duration time.Duration

	// Output is the code generator's product, when one is attached.
	Output []byte
}

// CodeGenerator turns an instrumented tree into deployable output. The code
// generator itself lives downstream; implementations are supplied by the
// embedding runtime.
type CodeGenerator interface {
	Generate(ctx context.Context, root *ast.Node) ([]byte, error)
}

// Pipeline runs the full contract-preparation sequence: parse, check
// ceilings, sanitize, instrument, then record the outcome. Every compilation
// gets its own cost evaluator, so a Pipeline is safe for sequential reuse
// across contracts.
type Pipeline struct {
	cfg     *config.Config
	parser  parser.Parser
	logger  *slog.Logger
	metrics *metrics.CompileMetrics
	store   audit.Store
	codegen CodeGenerator
}

// New creates a pipeline over the given parser. A nil config gets the
// defaults.
func New(cfg *config.Config, p parser.Parser) *Pipeline {
	if cfg == nil {
		cfg = config.Default()
	}
	if p == nil {
		p = parser.NewTreeParser(parser.NewTreeDecoder().WithMaxBytes(cfg.Limits.MaxSourceBytes))
	}
	return &Pipeline{
		cfg:    cfg,
		parser: p,
		logger: slog.Default(),
	}
}

// WithLogger sets the structured logger.
func (pl *Pipeline) WithLogger(logger *slog.Logger) *Pipeline {
	if logger != nil {
		pl.logger = logger.With("component", "pipeline")
	}
	return pl
}

// WithMetrics attaches compilation metrics.
func (pl *Pipeline) WithMetrics(m *metrics.CompileMetrics) *Pipeline {
	pl.metrics = m
	return pl
}

// WithAuditStore attaches an audit store. Every successful compilation is
// recorded in it.
func (pl *Pipeline) WithAuditStore(store audit.Store) *Pipeline {
	pl.store = store
	return pl
}

// WithCodeGenerator attaches the downstream code generator. When set, the
// instrumented tree is handed to it and the generated output lands on
// Result.Output.
func (pl *Pipeline) WithCodeGenerator(gen CodeGenerator) *Pipeline {
	pl.codegen = gen
	return pl
}

// Compile parses contract input and runs the full preparation sequence over
// the resulting tree.
func (pl *Pipeline) Compile(ctx context.Context, source []byte) (*Result, error) {
	root, err := pl.parser.Parse(ctx, source)
	if err != nil {
		pl.reject(err)
		return nil, err
	}
	return pl.compile(ctx, root, audit.HashSource(source))
}

// CompileTree runs the preparation sequence over an already-parsed tree.
func (pl *Pipeline) CompileTree(ctx context.Context, root *ast.Node) (*Result, error) {
	data, err := json.Marshal(root)
	if err != nil {
		return nil, err
	}
	return pl.compile(ctx, root, audit.HashSource(data))
}

func (pl *Pipeline) compile(ctx context.Context, root *ast.Node, sourceHash string) (*Result, error) {
	start := time.Now()
	jobID := uuid.New().String()
	logger := pl.logger.With("job_id", jobID)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	treeLimits := pl.cfg.TreeLimits()
	measure := ast.MeasureTree(root)

	clean, err := sanitize.NewPass().
		WithPrefix(pl.cfg.Sanitizer.Prefix).
		WithHostNamespace(pl.cfg.Sanitizer.HostNamespace).
		WithExclusions(pl.cfg.Sanitizer.Exclusions...).
		WithLimits(treeLimits).
		Sanitize(root)
	if err != nil {
		logger.Warn("contract rejected during sanitization", "error", err)
		pl.reject(err)
		return nil, err
	}

	eval := gamma.NewEvaluator().WithStrictKinds(pl.cfg.Evaluator.StrictKinds)
	instrumented, summary, err := instrument.NewPass(eval).
		WithHostNamespace(pl.cfg.Sanitizer.HostNamespace).
		WithLimits(treeLimits).
		Instrument(clean)
	if err != nil {
		logger.Warn("contract rejected during instrumentation", "error", err)
		pl.reject(err)
		return nil, err
	}

	res := &Result{
		JobID:       jobID,
		Tree:        instrumented,
		StaticGamma: summary.Total,
		Charges:     summary.Charges,
		Diagnostics: eval.Diagnostics(),
		NodeCount:   measure.Nodes,
		Duration:    time.Since(start),
	}

	if pl.codegen != nil {
		out, err := pl.codegen.Generate(ctx, instrumented)
		if err != nil {
			logger.Warn("contract rejected during code generation", "error", err)
			pl.reject(err)
			return nil, err
		}
		res.Output = out
	}

	logger.Info("contract instrumented",
		"static_gamma", uint64(res.StaticGamma),
		"charges", res.Charges,
		"tree_nodes", res.NodeCount,
		"diagnostics", len(res.Diagnostics),
		"duration", res.Duration)

	if pl.metrics != nil {
		pl.metrics.RecordSuccess(float64(res.StaticGamma), res.Charges,
			res.NodeCount, len(res.Diagnostics), res.Duration.Seconds())
	}

	if pl.store != nil {
		rec := &audit.Record{
			ID:          jobID,
			SourceHash:  sourceHash,
			TreeNodes:   res.NodeCount,
			StaticGamma: uint64(res.StaticGamma),
			Charges:     res.Charges,
			Diagnostics: len(res.Diagnostics),
			Duration:    res.Duration,
			CreatedAt:   time.Now(),
		}
		if err := pl.store.Save(ctx, rec); err != nil {
			// An audit write failure must not invalidate a correct tree.
			logger.Error("failed to save audit record", "error", err)
		}
	}

	return res, nil
}

func (pl *Pipeline) reject(err error) {
	if pl.metrics != nil {
		pl.metrics.RecordRejection(RejectionCategory(err))
	}
}

// RejectionCategory maps a compilation error to a stable metrics label.
func RejectionCategory(err error) string {
	var opErr *gamma.OperatorError
	var kindErr *gamma.UnhandledKindError
	var cErr *cerrors.Error

	switch {
	case errors.As(err, &opErr), errors.As(err, &kindErr):
		return "cost"
	case errors.As(err, &cErr):
		return string(cErr.Type)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "internal"
	}
}
