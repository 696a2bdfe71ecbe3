package shim

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/hasbyte1/go-nfallback/host"
)

// Options configures Install.
type Options struct {
	// Logger receives one Debug entry per method and an Info summary.
	// Defaults to the package Logger.
	Logger *zap.Logger

	// Only restricts installation to the named methods. Empty means all
	// seven.
	Only []string
}

// DefaultOptions returns options that install all seven methods and log
// through the package Logger.
func DefaultOptions() Options {
	return Options{}
}

// Report lists what an Install call did, in installation order.
type Report struct {
	// Installed holds the methods that were missing and are now defined.
	Installed []string

	// Skipped holds the methods that were already defined and left alone.
	Skipped []string
}

func (r Report) clone() Report {
	return Report{Installed: slices.Clone(r.Installed), Skipped: slices.Clone(r.Skipped)}
}

// Install defines every requested shim method that proto does not already
// have. Existing methods, native or from an earlier Install, are never
// replaced, so repeated calls leave proto unchanged.
//
// Options are validated before proto is touched: an unknown name in
// opts.Only returns [ErrUnknownMethod] with nothing installed.
func Install(proto *host.Prototype, opts Options) (Report, error) {
	if proto == nil {
		return Report{}, ErrNilPrototype
	}
	want, err := selected(opts.Only)
	if err != nil {
		return Report{}, err
	}
	log := opts.Logger
	if log == nil {
		log = Logger()
	}
	log = log.With(zap.String("prototype", proto.Name()))

	report := Report{Installed: []string{}, Skipped: []string{}}
	for _, name := range want {
		if proto.DefineIfAbsent(name, methods[name]) {
			report.Installed = append(report.Installed, name)
			log.Debug("method installed", zap.String("method", name))
			continue
		}
		report.Skipped = append(report.Skipped, name)
		log.Debug("method present, skipped", zap.String("method", name))
	}
	log.Info("array shims ready",
		zap.Strings("installed", report.Installed),
		zap.Strings("skipped", report.Skipped))
	return report, nil
}

func selected(only []string) ([]string, error) {
	if len(only) == 0 {
		return names, nil
	}
	want := make([]string, 0, len(only))
	for _, name := range only {
		if _, ok := methods[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
		}
		if !slices.Contains(want, name) {
			want = append(want, name)
		}
	}
	return want, nil
}

var (
	defaultOnce   sync.Once
	defaultReport Report
	installed     atomic.Bool
)

// InstallDefault installs the shims into host.ArrayPrototype. Only the first
// call in a process does any work; later calls return the first report.
func InstallDefault() Report {
	defaultOnce.Do(func() {
		// Cannot fail: the prototype is non-nil and all names are known.
		defaultReport, _ = Install(host.ArrayPrototype, DefaultOptions())
		installed.Store(true)
	})
	return defaultReport.clone()
}

// Installed reports whether InstallDefault has run.
func Installed() bool { return installed.Load() }
