package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/seitarof/gen-shape/internal/diag"
	"github.com/seitarof/gen-shape/internal/generator"
	"github.com/seitarof/gen-shape/internal/logger"
	"github.com/seitarof/gen-shape/internal/matcher"
	"github.com/seitarof/gen-shape/internal/parser"
	"github.com/seitarof/gen-shape/internal/resolver"
)

// Runner orchestrates parser/matcher/resolver/generator layers.
type Runner interface {
	Run(ctx context.Context, cfg *Config) error
}

type runnerImpl struct {
	parser    parser.Parser
	matcher   matcher.KindMatcher
	resolver  resolver.Resolver
	generator generator.Generator
	log       logger.Logger
	diag      *diag.Printer
}

// ValidationError reports the declarations that failed to derive. Their
// diagnostics have already been printed and stubs generated.
type ValidationError struct {
	Errs []*resolver.Error
}

func (e *ValidationError) Error() string {
	if len(e.Errs) == 1 {
		return "1 declaration failed validation"
	}
	return fmt.Sprintf("%d declarations failed validation", len(e.Errs))
}

func (e *ValidationError) Unwrap() []error {
	out := make([]error, 0, len(e.Errs))
	for _, err := range e.Errs {
		out = append(out, err)
	}
	return out
}

// NewRunner creates a default runner implementation.
func NewRunner(
	p parser.Parser,
	m matcher.KindMatcher,
	r resolver.Resolver,
	g generator.Generator,
	log logger.Logger,
	d *diag.Printer,
) Runner {
	return &runnerImpl{
		parser:    p,
		matcher:   m,
		resolver:  r,
		generator: g,
		log:       log,
		diag:      d,
	}
}

// Run executes a single generation cycle.
func (r *runnerImpl) Run(ctx context.Context, cfg *Config) error {
	info, err := r.parser.ParsePackage(cfg.Path, cfg.Types)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if len(info.Decls) == 0 {
		return fmt.Errorf("no types marked with %s found in %q", parser.MarkerPrefix, cfg.Path)
	}
	r.log.Debug("parsed package", "pkg", info.PkgPath, "decls", len(info.Decls))

	plans, failures, err := r.deriveAll(ctx, cfg.Jobs, info.Decls)
	if err != nil {
		return err
	}
	r.diag.PrintAll(failures)

	for _, m := range resolver.MissingDelegates(plans) {
		r.log.Warn("delegate type is not derived in this run",
			"type", m.Plan.TypeName,
			"delegate", m.Delegate.Type,
		)
	}

	if hasPlans(plans) {
		out := outputPath(info.Dir, cfg.Filename)
		if err := r.generator.Generate(outputFile(out), info, plans); err != nil {
			return fmt.Errorf("generate: %w", err)
		}
		r.log.Info("generated", "file", out, "decls", len(info.Decls), "failed", len(failures))
	}

	if len(failures) > 0 {
		return &ValidationError{Errs: failures}
	}
	return nil
}

// deriveAll derives every declaration with at most jobs running at once.
// Plans keep declaration order regardless of completion order.
func (r *runnerImpl) deriveAll(ctx context.Context, jobs int, decls []*parser.DeclInfo) ([]*resolver.DerivePlan, []*resolver.Error, error) {
	plans := make([]*resolver.DerivePlan, len(decls))
	errs := make([]*resolver.Error, len(decls))

	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, decl := range decls {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			plan, err := r.derive(decl)
			if err == nil {
				plans[i] = plan
				r.log.Debug("derived", "type", decl.Name, "mode", plan.Mode)
				return nil
			}
			var rerr *resolver.Error
			if !errors.As(err, &rerr) {
				return fmt.Errorf("derive %s: %w", decl.Name, err)
			}
			errs[i] = rerr
			plans[i] = resolver.FailedPlan(decl, rerr)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var failures []*resolver.Error
	for _, e := range errs {
		if e != nil {
			failures = append(failures, e)
		}
	}
	return plans, failures, nil
}

func (r *runnerImpl) derive(decl *parser.DeclInfo) (*resolver.DerivePlan, error) {
	target, err := r.matcher.Match(decl)
	if err != nil {
		return nil, err
	}
	return r.resolver.Resolve(decl, target)
}

func hasPlans(plans []*resolver.DerivePlan) bool {
	for _, p := range plans {
		if p != nil {
			return true
		}
	}
	return false
}

func outputPath(dir, filename string) string {
	if filepath.IsAbs(filename) || dir == "" {
		return filename
	}
	return filepath.Join(dir, filename)
}
