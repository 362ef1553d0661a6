// Package detect implements the rule-based voice classifier. Each acoustic
// statistic is compared against a hand-tuned threshold; suspicious values
// accumulate into a score that decides between a human and a synthetic
// verdict.
package detect

import (
	"strings"

	"github.com/mvasanth/voxhound/internal/feature"
)

// Label is the binary classification outcome.
type Label string

const (
	LabelHuman       Label = "Human"
	LabelAIGenerated Label = "AI-generated"
)

// String returns the label as it appears in API responses.
func (l Label) String() string { return string(l) }

// Rule thresholds. MFCC and amplitude statistics below their floors, pitch
// that is too stable, and centroid or zero-crossing values outside the bands
// typical of recorded speech all count toward the synthetic score.
const (
	mfccStdFloor    = 15.0
	zcrMeanLower    = 0.05
	zcrMeanUpper    = 0.15
	centroidLower   = 2000.0
	centroidUpper   = 4000.0
	rolloffStdFloor = 1000.0
	chromaStdFloor  = 0.15
	rmsStdFloor     = 0.01
)

// Result carries the verdict for one clip.
type Result struct {
	// Label is the binary classification.
	Label Label

	// Confidence is the score-derived certainty in [0, 0.99].
	Confidence float64

	// Explanation lists one phrase per rule, in evaluation order, joined
	// with " | ".
	Explanation string
}

// Classify evaluates the six rules against fs in fixed order and returns the
// verdict. A score strictly above 0.5 yields [LabelAIGenerated] with
// confidence 0.5 + score/2; anything else yields [LabelHuman] with
// confidence 1 - score. Confidence is capped at 0.99. The declared language
// of the clip plays no part in the rules.
func Classify(fs feature.FeatureSet) Result {
	var score float64
	explanations := make([]string, 0, 6)

	if fs.MFCCStd < mfccStdFloor {
		score += 0.2
		explanations = append(explanations, "Low MFCC variance detected")
	} else {
		explanations = append(explanations, "Natural MFCC variation")
	}

	if fs.ZCRMean > zcrMeanUpper || fs.ZCRMean < zcrMeanLower {
		score += 0.2
		explanations = append(explanations, "Unusual zero-crossing patterns")
	} else {
		explanations = append(explanations, "Natural zero-crossing patterns")
	}

	if fs.SpectralCentroidMean > centroidUpper || fs.SpectralCentroidMean < centroidLower {
		score += 0.15
		explanations = append(explanations, "Anomalous spectral centroid")
	} else {
		explanations = append(explanations, "Natural spectral centroid")
	}

	if fs.SpectralRolloffStd < rolloffStdFloor {
		score += 0.15
		explanations = append(explanations, "Overly smooth spectral envelope")
	} else {
		explanations = append(explanations, "Natural spectral envelope variation")
	}

	if fs.ChromaStd < chromaStdFloor {
		score += 0.15
		explanations = append(explanations, "Unnaturally perfect pitch")
	} else {
		explanations = append(explanations, "Natural pitch variation")
	}

	if fs.RMSStd < rmsStdFloor {
		score += 0.15
		explanations = append(explanations, "Overly consistent amplitude")
	} else {
		explanations = append(explanations, "Natural amplitude variation")
	}

	res := Result{Explanation: strings.Join(explanations, " | ")}
	if score > 0.5 {
		res.Label = LabelAIGenerated
		res.Confidence = min(0.99, 0.5+score*0.5)
	} else {
		res.Label = LabelHuman
		res.Confidence = min(0.99, 1-score)
	}
	return res
}
