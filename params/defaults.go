package params

// Default returns the compiled-in default parameter set. Values for the
// core alignment fields (turn thresholds, distance tolerances, weights)
// are carried over from the reference swipe-matching engine this package
// models; values for fields the scoring model here adds beyond that
// baseline (turn2_*, rt_*, straight_*, flat_*, loop_*, newdist_*, final_*)
// are chosen to compose sensibly with the carried-over values; they are
// not justified field by field, here or in DESIGN.md.
func Default() Params {
	return Params{
		// angle/turn thresholds
		TurnThreshold:  75,
		TurnThreshold2: 150,
		TurnMinAngle:   15,
		TurnMaxAngle:   90,
		MaxAngle:       45,

		// distance tolerances
		DistMaxStart:       75,
		DistMaxNext:        100,
		AnisotropyRatio:    1.5,
		CosMaxGap:          50,
		CurveDistThreshold: 100,
		CurveSurfaceCoef:   10.0,
		SharpTurnPenalty:   0.4,
		MaxTurnIndexGap:    4,
		MinTurnIndexGap:    2,
		CurveScoreMinDist:  30,

		// turn-2 scoring
		Turn2LargeThreshold: 120,
		Turn2YScale:         30,
		Turn2YScaleRatio:    2.0,
		Turn2MinY2:          20,
		Turn2Score1:         0.5,
		Turn2ScorePow:       2.0,
		TurnScoreUnmatched:  0.3,
		TurnMaxTransfer:     0.5,
		TurnOptim:           300,
		St2Max:              120,

		// reverse-turn scoring
		RTScoreCoef:    0.3,
		RTScoreCoefTip: 0.15,
		RT2MaxParts:    3,

		// straight / flat / loop
		StraightThresholdLow:  0.1,
		StraightThresholdHigh: 3.0,
		FlatMaxAngle:          20,
		FlatMaxDeviation:      15,
		FlatScore:             0.2,
		Flat2MaxHeight:        40,
		Flat2ScoreMax:         0.2,
		LoopPenalty:           0.3,

		// incremental control
		IncrementalLengthLag: 100,
		IncrementalIndexGap:  5,
		MatchWait:            7,
		MaxActiveScenarios:   500,
		MaxCandidates:        30,
		EndScenarioWait:      100,
		IncrRetry:            30,
		AggressiveMode:       0,

		// new-distance metric
		NewDistLengthBiasPow: 0.1,
		NewDistPow:           2.0,
		NewDistSpeedCoef:     0.1,
		NewDistCoefClass1:    1.0,
		NewDistCoefClass2:    1.2,
		NewDistCoefClass3:    0.5,
		NewDistCoefClass5:    0.5,
		NewDistCoefClass6:    0.8,
		NewDistCoefTip:       1.0,

		// final combination
		FinalCoefMisc:         1.0,
		FinalCoefTurn:         1.0,
		FinalCoefTurnExp:      1.0,
		FinalScoreV1Coef:      1.0,
		FinalScoreV1Threshold: 0.1,
		FinalNewDistRange:     50,
		FinalNewDistPow:       2.0,
		CoefError:             0.2,
		LengthPenalty:         0.001,
		ScorePow:              2.0,

		// weights
		WeightDistance: 1.0,
		WeightCos:      6.0,
		WeightTurn:     6.0,
		WeightCurve:    6.0,
		WeightLength:   1.0,
		WeightMisc:     1.0,

		// anisotropy and misc
		SamePointScore:    0.1,
		SamePointMaxAngle: 25,
		SpeedPenalty:      0.2,
		SpeedMinAngle:     10,
		BadTangentScore:   0.3,
		St5Score:          0.1,

		// error-ignore rule
		ErrorCorrect:     1,
		ErrorIgnoreCount: 3,
		CoefErrorTmp:     0.15,

		// beam / ranking
		ScoreRatio: 0.5,

		// curviness score
		CurvAMin:    5,
		CurvAMax:    75,
		CurvTurnMax: 70,

		// preprocessing windows
		SlowDownRatio:     0.5,
		SlowDownWindow:    3,
		SharpTurnCooldown: 5,

		// crv2/crv_* family (inactive)
		Crv2Weight:          0.05,
		CrvStBonus:          1,
		CrvConcavityAMin:    120,
		CrvConcavityAMax:    160,
		CrvConcavityMaxTurn: 30,
	}
}
