package ephemeris

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"blueprint/internal/bodygraph"
	"blueprint/internal/logging"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultMaxOutput = 64 * 1024
)

// CommandProvider runs an external ephemeris program once per lookup. The
// program receives its configured arguments followed by the instant in
// RFC 3339 UTC and must print a JSON object mapping body names to degrees,
// e.g. {"sun": 84.1, "moon": 201.4}. Unknown names and null values are
// ignored.
type CommandProvider struct {
	command   string
	args      []string
	timeout   time.Duration
	maxOutput int64
	logger    *zap.Logger
}

// Option configures a CommandProvider.
type Option func(*CommandProvider)

// WithTimeout bounds each program run.
func WithTimeout(d time.Duration) Option {
	return func(p *CommandProvider) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithMaxOutput caps the bytes read from stdout and stderr.
func WithMaxOutput(n int64) Option {
	return func(p *CommandProvider) {
		if n > 0 {
			p.maxOutput = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *CommandProvider) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewCommandProvider returns a provider running command with args.
func NewCommandProvider(command string, args []string, opts ...Option) *CommandProvider {
	p := &CommandProvider{
		command:   command,
		args:      append([]string(nil), args...),
		timeout:   defaultTimeout,
		maxOutput: defaultMaxOutput,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *CommandProvider) Name() string { return "command:" + p.command }

// Longitudes runs the program for `at`.
func (p *CommandProvider) Longitudes(ctx context.Context, at time.Time) (bodygraph.Longitudes, error) {
	instant := at.UTC().Format(time.RFC3339)

	execCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	args := append(append([]string(nil), p.args...), instant)
	cmd := exec.CommandContext(execCtx, p.command, args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	stdout := &limitedWriter{w: &stdoutBuf, max: p.maxOutput}
	stderr := &limitedWriter{w: &stderrBuf, max: p.maxOutput}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	p.logger.Debug("running ephemeris program",
		zap.String("command", p.command),
		zap.Strings("args", args))

	timer := logging.StartTimerOn(p.logger, "ephemeris program")
	err := cmd.Run()
	elapsed := timer.StopWithThreshold(p.timeout / 2)

	if err != nil {
		if execCtx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%w: %s timed out after %s", ErrUnavailable, p.command, p.timeout)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, ctxErr)
		}
		return nil, fmt.Errorf("%w: %s failed: %v: %s", ErrUnavailable, p.command, err, firstLine(stderrBuf.String()))
	}
	if stdout.truncated {
		return nil, fmt.Errorf("%w: %s output exceeds %d bytes", ErrUnavailable, p.command, p.maxOutput)
	}

	lons, skipped, err := decodeLongitudes(stdoutBuf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, p.command, err)
	}
	if len(skipped) > 0 {
		p.logger.Debug("ignored unknown bodies", zap.Strings("names", skipped))
	}
	p.logger.Debug("ephemeris program finished",
		zap.Duration("elapsed", elapsed),
		zap.Int("bodies", len(lons)))
	return lons, nil
}

func decodeLongitudes(data []byte) (bodygraph.Longitudes, []string, error) {
	// null marks a body the program could not compute.
	var raw map[string]*float64
	if err := json.Unmarshal(bytes.TrimSpace(data), &raw); err != nil {
		return nil, nil, fmt.Errorf("decode output: %w", err)
	}
	lons := make(bodygraph.Longitudes, len(raw))
	var skipped []string
	for name, v := range raw {
		p, err := bodygraph.ParsePlanet(name)
		if err != nil || v == nil {
			skipped = append(skipped, name)
			continue
		}
		lons[p] = *v
	}
	if len(lons) == 0 {
		return nil, skipped, fmt.Errorf("no known bodies in output")
	}
	return lons, skipped, nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// limitedWriter is an io.Writer that limits total bytes written.
type limitedWriter struct {
	w         io.Writer
	max       int64
	written   int64
	truncated bool
}

func (lw *limitedWriter) Write(p []byte) (int, error) {
	n := len(p)

	if lw.written >= lw.max {
		lw.truncated = true
		return n, nil // Pretend we wrote it
	}

	remaining := lw.max - lw.written
	if int64(n) > remaining {
		lw.truncated = true
		written, err := lw.w.Write(p[:remaining])
		lw.written += int64(written)
		return n, err // Return original length to avoid "short write" errors
	}

	written, err := lw.w.Write(p)
	lw.written += int64(written)
	return written, err
}
