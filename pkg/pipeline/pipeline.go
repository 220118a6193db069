package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/arthur-debert/branchswitch/pkg/errors"
	"github.com/arthur-debert/branchswitch/pkg/logging"
	"github.com/arthur-debert/branchswitch/pkg/registry"
	"github.com/arthur-debert/branchswitch/pkg/runner"
	"github.com/arthur-debert/branchswitch/pkg/types"
	"github.com/rs/zerolog"
)

// Progress messages, printed as the run advances.
const (
	MsgFoundDefinitions = "found %d dependency definitions"
	MsgChecksumMismatch = "checksum of %s didn't match after switch"
)

// Fingerprinter digests a file's current content.
type Fingerprinter interface {
	Fingerprint(path string) (types.Digest, error)
}

// Notifier receives human-readable progress messages.
type Notifier interface {
	RenderMessage(msg string) error
}

// Options contains the collaborators of a pipeline run
type Options struct {
	Registry      *registry.Registry
	Fingerprinter Fingerprinter
	Runner        runner.Runner
	// Switch is the branch-switch command; the branch name is appended to it.
	Switch types.Command
	// Progress is optional.
	Progress Notifier
}

// Pipeline runs the four phases for one branch switch.
type Pipeline struct {
	registry      *registry.Registry
	fingerprinter Fingerprinter
	runner        runner.Runner
	switchCmd     types.Command
	progress      Notifier
	logger        zerolog.Logger
}

// New creates a Pipeline from opts.
func New(opts Options) *Pipeline {
	return &Pipeline{
		registry:      opts.Registry,
		fingerprinter: opts.Fingerprinter,
		runner:        opts.Runner,
		switchCmd:     opts.Switch,
		progress:      opts.Progress,
		logger:        logging.GetLogger("pipeline"),
	}
}

// Run switches to branch and reinstalls dependencies for changed manifests.
//
// The returned error is non-nil only when the run could not complete: an
// empty branch name (errors.ErrUsage) or a failed switch
// (errors.ErrFatalSwitch). Per-manifest failures are reported in the Report.
func (p *Pipeline) Run(ctx context.Context, branch string) (*types.Report, error) {
	if strings.TrimSpace(branch) == "" {
		return nil, errors.New(errors.ErrUsage, "a branch name is required")
	}

	done := logging.LogOperationStart(p.logger, "branch switch")
	defer done()

	// Step 1: Fingerprint manifests that exist on the current branch
	tracked := p.fingerprintAll()

	// Step 2: Switch. Nothing after this point is meaningful if it fails.
	if err := p.switchBranch(ctx, branch); err != nil {
		return nil, err
	}
	p.notify(MsgFoundDefinitions, len(tracked))

	// Step 3: Compare and reinstall
	outcomes := p.reconcile(ctx, tracked)

	// Step 4: Report
	report := &types.Report{Branch: branch, Outcomes: outcomes}
	p.logger.Info().
		Str("branch", branch).
		Int("processed", report.Processed()).
		Int("reinstalled", report.Count(types.OutcomeReinstalled)).
		Int("failed", len(report.Failures())).
		Msg("Branch switch completed")

	return report, nil
}

// fingerprintAll digests every registered manifest in declaration order.
// Manifests that cannot be read are left out of the rest of the run.
func (p *Pipeline) fingerprintAll() []types.FingerprintedManifest {
	defs := p.registry.Definitions()
	tracked := make([]types.FingerprintedManifest, 0, len(defs))

	for _, def := range defs {
		digest, err := p.fingerprinter.Fingerprint(def.Path)
		if err != nil {
			p.logger.Info().
				Err(err).
				Str("path", def.Path).
				Msg("Manifest not readable before switch, excluding it")
			continue
		}

		p.logger.Debug().
			Str("path", def.Path).
			Str("digest", digest.String()).
			Msg("Manifest fingerprinted")

		tracked = append(tracked, types.FingerprintedManifest{
			Definition: def,
			Before:     digest,
		})
	}

	return tracked
}

// switchBranch runs the switch command once.
func (p *Pipeline) switchBranch(ctx context.Context, branch string) error {
	cmd := p.switchCmd.WithArgs(branch)

	p.logger.Info().Str("branch", branch).Str("command", cmd.String()).Msg("Switching branch")

	if err := p.runner.Run(ctx, cmd); err != nil {
		p.logger.Error().Err(err).Str("command", cmd.String()).Msg("Branch switch failed")
		return errors.Wrapf(err, errors.ErrFatalSwitch, "failed to switch to branch %q", branch).
			WithDetail("branch", branch).
			WithDetail("command", cmd.String())
	}

	return nil
}

// reconcile re-fingerprints each tracked manifest and reinstalls the changed ones.
func (p *Pipeline) reconcile(ctx context.Context, tracked []types.FingerprintedManifest) []types.ManifestOutcome {
	outcomes := make([]types.ManifestOutcome, 0, len(tracked))
	for _, fm := range tracked {
		outcomes = append(outcomes, p.reconcileOne(ctx, fm))
	}
	return outcomes
}

func (p *Pipeline) reconcileOne(ctx context.Context, fm types.FingerprintedManifest) types.ManifestOutcome {
	def := fm.Definition
	logger := p.logger.With().Str("path", def.Path).Logger()

	after, err := p.fingerprinter.Fingerprint(def.Path)
	if err != nil {
		logger.Warn().Err(err).Msg("Manifest not readable after switch")
		return failure(def.Path, "", err)
	}

	if after == fm.Before {
		logger.Debug().Msg("Manifest unchanged")
		return types.ManifestOutcome{Path: def.Path, Kind: types.OutcomeUnchanged}
	}

	p.notify(MsgChecksumMismatch, def.Path)
	logger.Info().
		Str("before", fm.Before.String()).
		Str("after", after.String()).
		Str("command", def.Install.String()).
		Msg("Manifest changed, reinstalling")

	if err := p.runner.Run(ctx, def.Install); err != nil {
		logger.Warn().Err(err).Str("command", def.Install.String()).Msg("Install command failed")
		return failure(def.Path, def.Install.String(), err)
	}

	return types.ManifestOutcome{
		Path:    def.Path,
		Kind:    types.OutcomeReinstalled,
		Command: def.Install.String(),
	}
}

// failure builds the outcome for a failed read or install.
func failure(path, command string, err error) types.ManifestOutcome {
	kind := runner.Classify(err)
	return types.ManifestOutcome{
		Path:    path,
		Kind:    kind,
		Command: command,
		Message: Describe(err),
		Err:     err,
	}
}

// Describe returns the user-facing detail of a read, launch or run error:
// the underlying OS message for IO failures and the exit description for
// run failures.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	if runner.Classify(err) == types.OutcomeRunFailure {
		msg := "command exited unsuccessfully"
		if code := runner.ExitCode(err); code >= 0 {
			msg = fmt.Sprintf("%s (exit status %d)", msg, code)
		}
		return msg
	}
	return errors.Cause(err).Error()
}

func (p *Pipeline) notify(format string, args ...interface{}) {
	if p.progress == nil {
		return
	}
	if err := p.progress.RenderMessage(fmt.Sprintf(format, args...)); err != nil {
		p.logger.Debug().Err(err).Msg("Failed to render progress message")
	}
}
