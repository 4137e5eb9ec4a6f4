// Package blueprint orchestrates one classification end to end: it fetches
// any longitudes the caller did not supply, derives the design instant,
// runs the classifier and optionally cross-checks the result with the
// Datalog audit.
package blueprint

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"blueprint/internal/audit"
	"blueprint/internal/bodygraph"
	"blueprint/internal/classify"
	"blueprint/internal/config"
	"blueprint/internal/ephemeris"
	"blueprint/internal/logging"
	"blueprint/internal/solar"
)

var (
	// ErrNoProvider means birth longitudes were needed but no ephemeris
	// provider is configured. Birth positions have no fallback.
	ErrNoProvider = errors.New("no ephemeris provider configured")

	// ErrAuditMismatch means the Datalog audit disagreed with the classifier.
	ErrAuditMismatch = errors.New("audit mismatch")
)

const defaultTimeout = 10 * time.Second

// Service runs classifications. It is safe for concurrent use.
type Service struct {
	provider ephemeris.Provider
	fallback ephemeris.Provider
	timeout  time.Duration
	audit    bool
	logger   *zap.Logger
	auditLog *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithProvider sets the precise ephemeris provider.
func WithProvider(p ephemeris.Provider) Option {
	return func(s *Service) { s.provider = p }
}

// WithFallback sets the provider used for design positions when the precise
// one fails. Pass nil to make such failures fatal.
func WithFallback(p ephemeris.Provider) Option {
	return func(s *Service) { s.fallback = p }
}

// WithTimeout bounds each provider call.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithAudit enables the Datalog cross-check.
func WithAudit(enabled bool) Option {
	return func(s *Service) { s.audit = enabled }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAuditLogger sets the logger for audit runs.
func WithAuditLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.auditLog = l
		}
	}
}

// New returns a service with the linear fallback and no precise provider.
func New(opts ...Option) *Service {
	s := &Service{
		fallback: ephemeris.NewLinearProvider(),
		timeout:  defaultTimeout,
		logger:   zap.NewNop(),
		auditLog: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromConfig builds a service from configuration, logging on the engine,
// ephemeris and audit categories.
func NewFromConfig(cfg *config.Config) *Service {
	opts := []Option{
		WithTimeout(cfg.GetEphemerisTimeout()),
		WithAudit(cfg.Audit.Enabled),
		WithLogger(logging.Get(logging.CategoryEngine)),
		WithAuditLogger(logging.Get(logging.CategoryAudit)),
	}
	if cfg.HasEphemerisCommand() {
		opts = append(opts, WithProvider(ephemeris.NewCommandProvider(
			cfg.Ephemeris.Command,
			cfg.Ephemeris.Args,
			ephemeris.WithTimeout(cfg.GetEphemerisTimeout()),
			ephemeris.WithMaxOutput(cfg.Ephemeris.MaxOutputBytes),
			ephemeris.WithLogger(logging.Get(logging.CategoryEphemeris)),
		)))
	}
	if !cfg.Ephemeris.Fallback {
		opts = append(opts, WithFallback(nil))
	}
	return New(opts...)
}

// Request describes one chart. Nil longitude maps are fetched.
type Request struct {
	Birth       time.Time
	Personality bodygraph.Longitudes
	Design      bodygraph.Longitudes
}

// Response is a classification plus how it was produced.
type Response struct {
	ID                string           `json:"id"`
	Result            *classify.Result `json:"result"`
	Audit             *audit.Report    `json:"audit,omitempty"`
	PersonalitySource string           `json:"personalitySource"`
	DesignSource      string           `json:"designSource"`
}

// Classify produces the classification for req.
func (s *Service) Classify(ctx context.Context, req Request) (*Response, error) {
	id := uuid.NewString()
	log := logging.WithRequestID(s.logger, id)
	start := time.Now()

	offset, err := solar.DesignInstant(req.Birth)
	if err != nil {
		return nil, &classify.ClassificationError{Kind: classify.KindInvalidOffset, Err: err}
	}
	log.Debug("design instant",
		zap.Time("birth", offset.Birth),
		zap.Time("design", offset.Design),
		zap.Float64("offset_days", offset.Days))

	resp := &Response{ID: id, PersonalitySource: "request", DesignSource: "request"}
	personality, design := req.Personality, req.Design
	usedFallback := false

	g, gctx := errgroup.WithContext(ctx)
	if personality == nil {
		g.Go(func() error {
			lons, err := s.fetchBirth(gctx, offset.Birth)
			if err != nil {
				return fmt.Errorf("birth longitudes: %w", err)
			}
			personality = lons
			resp.PersonalitySource = s.provider.Name()
			return nil
		})
	}
	if design == nil {
		g.Go(func() error {
			res, err := ephemeris.WithFallback(gctx, s.provider, s.fallback, offset.Design, s.timeout)
			if err != nil {
				return fmt.Errorf("design longitudes: %w", err)
			}
			if res.UsedFallback {
				log.Warn("design positions approximated",
					zap.String("source", res.Source),
					zap.Error(res.PrimaryErr))
			}
			design = res.Longitudes
			usedFallback = res.UsedFallback
			resp.DesignSource = res.Source
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("ephemeris lookup failed", zap.Error(err))
		return nil, err
	}

	logMissing(log, classify.LayerPersonality, personality)
	logMissing(log, classify.LayerDesign, design)

	result, err := classify.Classify(classify.Input{
		Birth:                       req.Birth,
		Personality:                 personality,
		Design:                      design,
		UsedFallbackDesignPositions: usedFallback,
	})
	if err != nil {
		log.Warn("classification failed", zap.Error(err))
		return nil, err
	}
	resp.Result = result

	if s.audit {
		alog := logging.WithRequestID(s.auditLog, id)
		timer := logging.StartTimerOn(alog, "audit")
		report, err := audit.Check(result.Gates.Personality, result.Gates.Design, result.Centers)
		timer.Stop()
		if err != nil {
			alog.Error("audit failed", zap.Error(err))
			return nil, fmt.Errorf("audit: %w", err)
		}
		resp.Audit = report
		if !report.OK() {
			alog.Error("audit disagrees with classifier", zap.Strings("mismatches", report.Mismatches))
			return resp, fmt.Errorf("%w: %s", ErrAuditMismatch, strings.Join(report.Mismatches, "; "))
		}
		alog.Debug("audit agrees",
			zap.Int("components", report.Components),
			zap.Strings("channels", report.Channels))
	}

	log.Info("classified",
		zap.Stringer("type", result.Type),
		zap.Stringer("authority", result.Authority),
		zap.String("profile", result.Profile),
		zap.Bool("fallback", usedFallback),
		zap.Duration("elapsed", time.Since(start)))
	return resp, nil
}

// logMissing reports bodies the layer lacks or holds unusable values for.
// Classification goes on without them.
func logMissing(log *zap.Logger, layer classify.Layer, lons bodygraph.Longitudes) {
	missing := bodygraph.Missing(lons)
	if len(missing) == 0 {
		return
	}
	names := make([]string, 0, len(missing))
	for _, p := range missing {
		names = append(names, p.String())
	}
	log.Warn("bodies missing from layer",
		zap.String("layer", string(layer)),
		zap.Strings("bodies", names))
}

func (s *Service) fetchBirth(ctx context.Context, at time.Time) (bodygraph.Longitudes, error) {
	if s.provider == nil {
		return nil, ErrNoProvider
	}
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.provider.Longitudes(callCtx, at)
}
