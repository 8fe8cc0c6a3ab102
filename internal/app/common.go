package app

type ScoreReasonCode string

const (
	ReasonStyleMatch     ScoreReasonCode = "STYLE_MATCH"
	ReasonLandscapeMatch ScoreReasonCode = "LANDSCAPE_MATCH"
	ReasonJobMatch       ScoreReasonCode = "JOB_MATCH"
	ReasonSameLocality   ScoreReasonCode = "SAME_LOCALITY"
)

type ScoreReason struct {
	Code        ScoreReasonCode
	Message     string
	WeightDelta float64
}
