package entities

import (
	"time"
)

// Metadata describes a loadable module to the host.
type Metadata struct {
	Name         string       `json:"name"`
	Version      string       `json:"version"`
	Description  string       `json:"description,omitempty"`
	SDKVersion   string       `json:"sdk_version,omitempty"` // Auto-populated
	Operations   []string     `json:"operations,omitempty"`  // Exported operation names
	Capabilities []Capability `json:"capabilities,omitempty"`
}

// Capability describes a permission required by the module.
// A pure compute module declares none.
type Capability struct {
	Category string `json:"category"`
	Resource string `json:"resource"`
}

// NewCapability creates a Capability with the given category and resource.
func NewCapability(category, resource string) Capability {
	return Capability{Category: category, Resource: resource}
}

// RunMetadata contains execution metadata for SDK operations.
type RunMetadata struct {
	// StartTime is when the operation started.
	StartTime time.Time `json:"start_time"`

	// EndTime is when the operation completed.
	EndTime time.Time `json:"end_time"`

	// SDKVersion is the version of the SDK that executed the operation.
	SDKVersion string `json:"sdk_version,omitempty"`

	// Duration is the total execution time.
	Duration time.Duration `json:"duration_ns"`
}

// NewRunMetadata creates a new RunMetadata for the given start and end times.
func NewRunMetadata(start, end time.Time) *RunMetadata {
	return &RunMetadata{
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}
}

// WithSDKVersion returns the RunMetadata with the SDK version set.
func (m *RunMetadata) WithSDKVersion(version string) *RunMetadata {
	m.SDKVersion = version
	return m
}
