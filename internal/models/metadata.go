package models

import (
	"github.com/julianstephens/streak/internal/errors"
)

// Metadata is the front matter header of a streak file. Extra carries
// unknown keys so hand-edited files survive a rewrite untouched.
type Metadata struct {
	Name      string            `yaml:"name"`
	Tick      Granularity       `yaml:"tick"`
	Period    Granularity       `yaml:"period,omitempty"`
	Frequency int               `yaml:"frequency,omitempty"`
	Extra     map[string]string `yaml:",inline"`

	// HadExplicitBlock records whether the source file carried a front
	// matter block, so serializing does not introduce one on files that
	// never had it.
	HadExplicitBlock bool `yaml:"-"`
}

// DefaultMetadata returns the metadata an absent front matter block implies:
// the file-derived name and a Daily tick.
func DefaultMetadata(name string) Metadata {
	return Metadata{Name: name, Tick: GranularityDaily}
}

// Explicit reports whether serializing this metadata should emit a front
// matter block.
func (m Metadata) Explicit() bool {
	return m.HadExplicitBlock || m.Tick != GranularityDaily ||
		m.Period != "" || m.Frequency != 0 || len(m.Extra) > 0
}

// Validate checks the metadata invariants: known granularities, tick
// strictly finer than period, positive frequency.
func (m Metadata) Validate() error {
	if m.Name == "" {
		return errors.NewValidationError("name", "must not be empty")
	}
	if !m.Tick.Valid() {
		return errors.NewValidationError("tick", "unknown granularity %q", string(m.Tick))
	}
	if m.Period != "" {
		if !m.Period.Valid() {
			return errors.NewValidationError("period", "unknown granularity %q", string(m.Period))
		}
		if !m.Tick.FinerThan(m.Period) {
			return errors.NewValidationError("tick", "%s is not finer than period %s", m.Tick, m.Period)
		}
	}
	if m.Frequency < 0 {
		return errors.NewValidationError("frequency", "must be positive, got %d", m.Frequency)
	}
	if m.Frequency > 0 && m.Period == "" {
		return errors.NewValidationError("frequency", "requires a period")
	}
	return nil
}
