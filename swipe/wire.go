package swipe

// KeyInput is one keyboard key rectangle as submitted by a caller.
type KeyInput struct {
	X int    `json:"x"`
	Y int    `json:"y"`
	W int    `json:"w"`
	H int    `json:"h"`
	K string `json:"k"`
}

// PointInput is one time-stamped stroke sample as submitted by a caller.
type PointInput struct {
	X int `json:"x"`
	Y int `json:"y"`
	T int `json:"t"`
}

// Input is the decoded body of a match request: a layout, a stroke, and
// an optional subset of parameter overrides.
type Input struct {
	Params map[string]float64 `json:"params,omitempty"`
	Keys   []KeyInput         `json:"keys"`
	Curve  []PointInput       `json:"curve"`
}

// envelope lets DecodeInput accept either a bare Input or one wrapped in an
// outer "input" key.
type envelope struct {
	Input *Input `json:"input"`
}

// ScoreAvg is a per-component average or minimum over a candidate's
// matched letters, surfaced for debugging and comparison.
type ScoreAvg struct {
	Distance float64 `json:"distance"`
	Cos      float64 `json:"cos"`
	Turn     float64 `json:"turn"`
	Curve    float64 `json:"curve"`
	Length   float64 `json:"length"`
	Misc     float64 `json:"misc"`
}

// DetailRow is one matched letter's full score breakdown.
type DetailRow struct {
	Letter        string  `json:"letter"`
	Index         int     `json:"index"`
	ScoreDistance float64 `json:"score_distance"`
	ScoreCos      float64 `json:"score_cos"`
	ScoreTurn     float64 `json:"score_turn"`
	ScoreCurve    float64 `json:"score_curve"`
	ScoreLength   float64 `json:"score_length"`
	ScoreMisc     float64 `json:"score_misc"`
}

// CandidateOutput is one ranked word, with its final score and per-letter
// detail.
type CandidateOutput struct {
	Name     string      `json:"name"`
	Score    float64     `json:"score"`
	Finished bool        `json:"finished"`
	Distance int         `json:"distance"`
	Error    int         `json:"error"`
	Words    string      `json:"words"`
	Detail   []DetailRow `json:"detail"`
	AvgScore ScoreAvg    `json:"avg_score"`
	MinScore ScoreAvg    `json:"min_score"`
}

// Stats reports coarse counters about how a match request was served.
// CorrelationID is additional to the wire contract of the original
// matcher: a per-run identifier a caller can use to line up a request
// with its logs even when many runs are in flight concurrently.
type Stats struct {
	TimeMicros    int64  `json:"time"`
	Count         int    `json:"count"`
	Fork          int    `json:"fork"`
	Skim          int    `json:"skim"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// Output is the full response to a match request.
type Output struct {
	ID         int               `json:"id"`
	Input      *Input            `json:"input,omitempty"`
	Candidates []CandidateOutput `json:"candidates"`
	Stats      Stats             `json:"stats"`
}
