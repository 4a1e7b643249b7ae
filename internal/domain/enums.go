package domain

// FlowMode selects which words a song is linked to in the flow table.
type FlowMode string

const (
	// FlowModeTop links every song to its own top-N words.
	FlowModeTop FlowMode = "top"
	// FlowModeCommon links every song to the top-N words of the whole run.
	FlowModeCommon FlowMode = "common"
	// FlowModeWords links every song to a caller-supplied word list.
	FlowModeWords FlowMode = "words"
)

func (m FlowMode) String() string { return string(m) }

func (m FlowMode) IsValid() bool {
	switch m {
	case FlowModeTop, FlowModeCommon, FlowModeWords:
		return true
	}
	return false
}

// ReportFormat is the serialization of a run report.
type ReportFormat string

const (
	ReportFormatJSON ReportFormat = "json"
	ReportFormatYAML ReportFormat = "yaml"
)

func (f ReportFormat) String() string { return string(f) }

func (f ReportFormat) IsValid() bool {
	switch f {
	case ReportFormatJSON, ReportFormatYAML:
		return true
	}
	return false
}
