package summary

// Stage is a step of the summarize pipeline.
type Stage string

const (
	StageReceived      Stage = "received"
	StageResolvingText Stage = "resolving_text"
	StageSummarizing   Stage = "summarizing"
	StageTranslating   Stage = "translating"
	StagePersisting    Stage = "persisting"
	StageDone          Stage = "done"
	StageFailed        Stage = "failed"
)

// IsTerminal reports whether no further transition can follow.
func (s Stage) IsTerminal() bool {
	return s == StageDone || s == StageFailed
}

// CanFail reports whether a run may move to StageFailed from s. Summarizing and
// translating are total and never fail.
func (s Stage) CanFail() bool {
	switch s {
	case StageReceived, StageResolvingText, StagePersisting:
		return true
	default:
		return false
	}
}

// Next returns the stage that follows s on the success path.
func (s Stage) Next() Stage {
	switch s {
	case StageReceived:
		return StageResolvingText
	case StageResolvingText:
		return StageSummarizing
	case StageSummarizing:
		return StageTranslating
	case StageTranslating:
		return StagePersisting
	case StagePersisting:
		return StageDone
	default:
		return s
	}
}
