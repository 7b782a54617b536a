package params

// Params is the flat tunable parameter record referenced throughout the
// scoring and matching contract. Field order follows the matcher's own
// enumerated groups; json tags are the wire names the "params" object of
// the input JSON may override.
type Params struct {
	// --- angle/turn thresholds -------------------------------------------------
	TurnThreshold  float64 `json:"turn_threshold"`  // degrees: sum-of-3 triggers sharp turn (class 1)
	TurnThreshold2 float64 `json:"turn_threshold2"` // degrees: sum-of-3 triggers U-turn (class 2)
	TurnMinAngle   float64 `json:"turn_min_angle"`  // degrees: inflection lower bound
	TurnMaxAngle   float64 `json:"turn_max_angle"`  // degrees: inflection upper bound
	MaxAngle       float64 `json:"max_angle"`       // degrees: cosine-score angular budget

	// --- distance tolerances ----------------------------------------------------
	DistMaxStart        float64 `json:"dist_max_start"`        // px: distance-score normalizer, first letter
	DistMaxNext         float64 `json:"dist_max_next"`         // px: distance-score normalizer, interior letters
	AnisotropyRatio     float64 `json:"anisotropy_ratio"`      // tangential/normal distance-penalty ratio
	CosMaxGap           float64 `json:"cos_max_gap"`           // px: cosine-score gap-ratio normalizer
	CurveDistThreshold  float64 `json:"curve_dist_threshold"`  // px: curve-deviation score normalizer
	CurveSurfaceCoef    float64 `json:"curve_surface_coef"`    // curve-deviation quadrilateral-area weight
	SharpTurnPenalty    float64 `json:"sharp_turn_penalty"`    // penalty per soft sharp turn crossed / U-turn mismatch
	MaxTurnIndexGap     float64 `json:"max_turn_index_gap"`    // indices: how far a match may stray from a mandatory turn
	MinTurnIndexGap     float64 `json:"min_turn_index_gap"`    // indices: inner tolerance band around a mandatory turn
	CurveScoreMinDist   float64 `json:"curve_score_min_dist"`  // px: cosine-score coef normalizer for short chords

	// --- turn-2 scoring (post-processor turn matching) ---------------------------
	Turn2LargeThreshold float64 `json:"turn2_large_threshold"` // degrees: turns above this get extra tolerance
	Turn2YScale         float64 `json:"turn2_yscale"`          // y1: tolerance-to-linear-penalty boundary
	Turn2YScaleRatio    float64 `json:"turn2_yscaleratio"`     // y2 = max(y1*ratio, y1+min_y2)
	Turn2MinY2          float64 `json:"turn2_min_y2"`
	Turn2Score1         float64 `json:"turn2_score1"`      // penalty coefficient in the linear regime
	Turn2ScorePow       float64 `json:"turn2_score_pow"`   // exponent in the tail regime
	TurnScoreUnmatched  float64 `json:"turn_score_unmatched"` // flat subtraction for an unmatched turn block
	TurnMaxTransfer     float64 `json:"turn_max_transfer"` // max fraction of a turn's angle transferable to a neighbor
	TurnOptim           float64 `json:"turn_optim"`        // arc length at which transfer allowance reaches zero
	St2Max              float64 `json:"st2_max"`           // degrees: expected |turn| above this needs a class-2 point

	// --- reverse-turn scoring -----------------------------------------------------
	RTScoreCoef    float64 `json:"rt_score_coef"`     // interior reverse-turn weight
	RTScoreCoefTip float64 `json:"rt_score_coef_tip"` // tip reverse-turn weight
	RT2MaxParts    float64 `json:"rt2_max_parts"`     // max run-partition parts before penalty

	// --- straight / flat / loop ----------------------------------------------------
	StraightThresholdLow  float64 `json:"straight_threshold_low"`
	StraightThresholdHigh float64 `json:"straight_threshold_high"`
	FlatMaxAngle          float64 `json:"flat_max_angle"`      // degrees from 0/180 considered "flat"
	FlatMaxDeviation      float64 `json:"flat_max_deviation"`  // px
	FlatScore             float64 `json:"flat_score"`          // penalty scale for flat-segment deviation
	Flat2MaxHeight        float64 `json:"flat2_max_height"`    // px: row-flatness vertical extent budget
	Flat2ScoreMax         float64 `json:"flat2_score_max"`     // penalty scale for row-flatness violation
	LoopPenalty           float64 `json:"loop_penalty"`

	// --- incremental control ---------------------------------------------------
	IncrementalLengthLag float64 `json:"incremental_length_lag"`
	IncrementalIndexGap  float64 `json:"incremental_index_gap"`
	MatchWait            float64 `json:"match_wait"`
	MaxActiveScenarios   float64 `json:"max_active_scenarios"`
	MaxCandidates        float64 `json:"max_candidates"`
	EndScenarioWait      float64 `json:"end_scenario_wait"`
	IncrRetry            float64 `json:"incr_retry"`
	AggressiveMode       float64 `json:"aggressive_mode"` // 0/1: trade latency for result stability

	// --- new-distance metric ------------------------------------------------------
	NewDistLengthBiasPow float64 `json:"newdist_length_bias_pow"`
	NewDistPow           float64 `json:"newdist_pow"`
	NewDistSpeedCoef     float64 `json:"newdist_speed"`
	NewDistCoefClass1    float64 `json:"newdist_coef_c1"`
	NewDistCoefClass2    float64 `json:"newdist_coef_c2"`
	NewDistCoefClass3    float64 `json:"newdist_coef_c3"`
	NewDistCoefClass5    float64 `json:"newdist_coef_c5"`
	NewDistCoefClass6    float64 `json:"newdist_coef_c6"`
	NewDistCoefTip       float64 `json:"newdist_coef_ctip"`

	// --- final combination ----------------------------------------------------
	FinalCoefMisc           float64 `json:"final_coef_misc"`
	FinalCoefTurn           float64 `json:"final_coef_turn"`
	FinalCoefTurnExp        float64 `json:"final_coef_turn_exp"`
	FinalScoreV1Coef        float64 `json:"final_score_v1_coef"`
	FinalScoreV1Threshold   float64 `json:"final_score_v1_threshold"`
	FinalNewDistRange       float64 `json:"final_newdist_range"`
	FinalNewDistPow         float64 `json:"final_newdist_pow"`
	CoefError               float64 `json:"coef_error"`
	LengthPenalty           float64 `json:"length_penalty"`
	ScorePow                float64 `json:"score_pow"`

	// --- weights (score aggregator columns) ------------------------------------
	WeightDistance float64 `json:"weight_distance"`
	WeightCos      float64 `json:"weight_cos"`
	WeightTurn     float64 `json:"weight_turn"`
	WeightCurve    float64 `json:"weight_curve"`
	WeightLength   float64 `json:"weight_length"`
	WeightMisc     float64 `json:"weight_misc"`

	// --- anisotropy and misc ----------------------------------------------------
	SamePointScore    float64 `json:"same_point_score"`
	SamePointMaxAngle float64 `json:"same_point_max_angle"`
	SpeedPenalty      float64 `json:"speed_penalty"`
	SpeedMinAngle     float64 `json:"speed_min_angle"`
	BadTangentScore   float64 `json:"bad_tangent_score"`
	St5Score          float64 `json:"st5_score"` // penalty for an unmatched class-5 optional turn

	// --- error-ignore rule -------------------------------------------
	ErrorCorrect     float64 `json:"error_correct"`      // 0/1: enable the error-ignore rescue rule
	ErrorIgnoreCount float64 `json:"error_ignore_count"` // steps already matched before rescue is allowed late
	CoefErrorTmp     float64 `json:"coef_error_tmp"`     // temp_score penalty per accrued error

	// --- beam / ranking ----------------------------------------------------------
	ScoreRatio float64 `json:"score_ratio"` // candidates pruned below best*ScoreRatio

	// --- curviness score -------------
	CurvAMin    float64 `json:"curv_amin"`
	CurvAMax    float64 `json:"curv_amax"`
	CurvTurnMax float64 `json:"curv_turnmax"`

	// --- preprocessing windows -
	SlowDownRatio     float64 `json:"slow_down_ratio"`     // speed must fall by this factor on both sides
	SlowDownWindow    float64 `json:"slow_down_window"`    // neighbor window for slow-down local-minimum test
	SharpTurnCooldown float64 `json:"sharp_turn_cooldown"` // indices suppressed after a sharp-turn detection

	// --- crv2/crv_* family: declared but inactive -------
	Crv2Weight          float64 `json:"crv2_weight"`
	CrvStBonus          float64 `json:"crv_st_bonus"`
	CrvConcavityAMin    float64 `json:"crv_concavity_amin"`
	CrvConcavityAMax    float64 `json:"crv_concavity_amax"`
	CrvConcavityMaxTurn float64 `json:"crv_concavity_max_turn"`
}
