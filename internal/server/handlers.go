package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/mvasanth/voxhound/internal/detect"
	"github.com/mvasanth/voxhound/internal/observe"
)

// supportedLanguages lists the declared languages the API accepts, in the
// order they are reported by the root endpoint.
var supportedLanguages = []string{"Tamil", "English", "Hindi", "Malayalam", "Telugu"}

// detectRequest is the JSON body for POST /detect_voice.
type detectRequest struct {
	AudioBase64 string `json:"audio_base64" validate:"required"`
	Language    string `json:"language" validate:"required"`
}

// featuresSummary is the rounded feature digest included in every successful
// detection response.
type featuresSummary struct {
	MFCCStd          float64 `json:"mfcc_std"`
	ZCRMean          float64 `json:"zcr_mean"`
	SpectralCentroid float64 `json:"spectral_centroid"`
	ChromaStd        float64 `json:"chroma_std"`
	RMSMean          float64 `json:"rms_mean"`
}

// detectResponse is the JSON body for a successful detection.
type detectResponse struct {
	Classification  string          `json:"classification"`
	ConfidenceScore float64         `json:"confidence_score"`
	Explanation     string          `json:"explanation"`
	Language        string          `json:"language"`
	FeaturesSummary featuresSummary `json:"features_summary"`
}

// rootResponse is the static service metadata served on GET /.
type rootResponse struct {
	Message            string   `json:"message"`
	SupportedLanguages []string `json:"supported_languages"`
	Endpoint           string   `json:"endpoint"`
}

// handleDetect handles POST /detect_voice: decode and validate the request,
// check the declared language, base64-decode the payload, extract acoustic
// features, and classify.
func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	if s.cfg.MaxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	}

	var req detectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.reject(ctx, w, "request", "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.reject(ctx, w, "request", err.Error())
		return
	}

	if !slices.Contains(supportedLanguages, req.Language) {
		s.reject(ctx, w, "language", "Unsupported language. Supported: "+strings.Join(supportedLanguages, ", "))
		return
	}

	decodeStart := time.Now()
	_, decodeSpan := observe.StartSpan(ctx, "detect.decode")
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(req.AudioBase64))
	decodeSpan.End()
	if err != nil {
		s.reject(ctx, w, "base64", err.Error())
		return
	}
	s.metrics.DecodeDuration.Record(ctx, time.Since(decodeStart).Seconds())
	s.metrics.AudioBytes.Record(ctx, int64(len(raw)))

	extractStart := time.Now()
	extractCtx, extractSpan := observe.StartSpan(ctx, "detect.extract")
	features, err := s.extractor.Extract(extractCtx, raw)
	extractSpan.End()
	if err != nil {
		s.reject(ctx, w, "extract", "Error processing audio: "+err.Error())
		return
	}
	s.metrics.ExtractDuration.Record(ctx, time.Since(extractStart).Seconds())

	classifyStart := time.Now()
	result := detect.Classify(features)
	s.metrics.ClassifyDuration.Record(ctx, time.Since(classifyStart).Seconds())

	s.metrics.RecordDetection(ctx, req.Language, result.Label.String())
	s.stats.RecordDetection(result.Label, time.Since(start))

	observe.Logger(ctx).LogAttrs(ctx, slog.LevelInfo, "detection completed",
		slog.String("language", req.Language),
		slog.String("classification", result.Label.String()),
		slog.Float64("confidence", result.Confidence),
		slog.Duration("duration", time.Since(start)),
	)

	s.writeJSON(w, http.StatusOK, detectResponse{
		Classification:  result.Label.String(),
		ConfidenceScore: round(result.Confidence, 4),
		Explanation:     result.Explanation,
		Language:        req.Language,
		FeaturesSummary: featuresSummary{
			MFCCStd:          round(features.MFCCStd, 2),
			ZCRMean:          round(features.ZCRMean, 4),
			SpectralCentroid: round(features.SpectralCentroidMean, 2),
			ChromaStd:        round(features.ChromaStd, 4),
			RMSMean:          round(features.RMSMean, 4),
		},
	})
}

// handleRoot serves the static service metadata.
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, rootResponse{
		Message:            "Multi-Language AI Voice Detection API",
		SupportedLanguages: supportedLanguages,
		Endpoint:           "/detect_voice",
	})
}

// handleStats serves runtime counters and latency percentiles.
func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.stats.Snapshot())
}

// reject writes a 400 response with the given detail message and records the
// failure against the pipeline stage that produced it.
func (s *Server) reject(ctx context.Context, w http.ResponseWriter, stage, detail string) {
	s.stats.RecordError()
	s.metrics.RecordDetectionError(ctx, stage)
	s.writeJSON(w, http.StatusBadRequest, map[string]string{"detail": detail})
}

// writeJSON encodes payload as JSON with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "err", err)
	}
}

// round rounds x to the given number of decimal places, half away from zero.
func round(x float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(x*scale) / scale
}
