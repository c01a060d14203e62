package predictor

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func encodePNG(t *testing.T, width, height int, fill color.RGBA) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, fill)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test PNG: %v", err)
	}
	return buf.Bytes()
}

func TestResultForAllClasses(t *testing.T) {
	t.Parallel()

	for i, class := range classNames {
		result := resultForIndex(i)

		if !result.Success {
			t.Fatalf("class %d: expected success result", i)
		}

		wantConfidence := 85 + i%15
		if result.Confidence != wantConfidence {
			t.Fatalf("class %d: confidence = %d, want %d", i, result.Confidence, wantConfidence)
		}
		if result.Confidence < 85 || result.Confidence > 99 {
			t.Fatalf("class %d: confidence %d out of [85,99]", i, result.Confidence)
		}

		reconstructed := result.Plant + "__" + strings.ReplaceAll(result.Disease, " ", "_")
		if reconstructed != class {
			t.Fatalf("class %d: reconstructed %q, want %q", i, reconstructed, class)
		}

		hasBlight := strings.Contains(strings.ToLower(result.Disease), "blight")
		if hasBlight && result.Severity != "High" {
			t.Fatalf("class %d (%s): severity = %q, want High", i, result.Disease, result.Severity)
		}
		if !hasBlight && result.Severity != "Medium" {
			t.Fatalf("class %d (%s): severity = %q, want Medium", i, result.Disease, result.Severity)
		}

		if result.Description == "" || result.Prevention == "" || result.Treatment == "" {
			t.Fatalf("class %d: advisory text must never be empty", i)
		}
	}
}

func TestCuratedDiseaseInfo(t *testing.T) {
	t.Parallel()

	info := lookupDiseaseInfo("Apple scab", "Apple")
	if info.Description != "Fungal disease causing olive-green velvety spots on leaves and fruits" {
		t.Fatalf("unexpected description for Apple scab: %q", info.Description)
	}
	if info.Treatment != "Apply Captan or Mancozeb fungicide, prune infected areas" {
		t.Fatalf("unexpected treatment for Apple scab: %q", info.Treatment)
	}

	curated := []string{"Apple scab", "Black rot", "Late blight", "Early blight", "Powdery mildew"}
	for _, name := range curated {
		if _, ok := diseaseInfo[name]; !ok {
			t.Fatalf("missing curated entry for %q", name)
		}
		info := lookupDiseaseInfo(name, "Tomato")
		if strings.Contains(info.Description, "affecting") {
			t.Fatalf("curated disease %q fell through to the fallback", name)
		}
	}
}

func TestFallbackDiseaseInfo(t *testing.T) {
	t.Parallel()

	info := lookupDiseaseInfo("Leaf scorch", "Strawberry")
	if info.Description != "Leaf scorch affecting Strawberry" {
		t.Fatalf("fallback description = %q", info.Description)
	}
	if info.Prevention != "Maintain good plant hygiene, use resistant varieties, ensure proper spacing" {
		t.Fatalf("fallback prevention = %q", info.Prevention)
	}
	if info.Treatment != "Consult agricultural extension services for specific treatment recommendations" {
		t.Fatalf("fallback treatment = %q", info.Treatment)
	}
}

func TestPredictInvalidBase64(t *testing.T) {
	t.Parallel()

	result := Predict("not-base64!!")
	if result.Success {
		t.Fatalf("expected failure for invalid base64 input")
	}
	if !strings.HasPrefix(result.Error, "Disease detection failed: ") {
		t.Fatalf("error = %q, want 'Disease detection failed: ' prefix", result.Error)
	}
}

func TestPredictNotAnImage(t *testing.T) {
	t.Parallel()

	result := Predict(base64.StdEncoding.EncodeToString([]byte("definitely not pixels")))
	if result.Success {
		t.Fatalf("expected failure for undecodable image bytes")
	}
	if !strings.HasPrefix(result.Error, "Disease detection failed: ") {
		t.Fatalf("error = %q, want 'Disease detection failed: ' prefix", result.Error)
	}
}

func TestPredictDeterminism(t *testing.T) {
	t.Parallel()

	payload := base64.StdEncoding.EncodeToString(
		encodePNG(t, 10, 10, color.RGBA{R: 255, A: 255}))

	first := Predict(payload)
	second := Predict(payload)

	if !first.Success || !second.Success {
		t.Fatalf("expected both runs to succeed: %+v / %+v", first, second)
	}
	if first != second {
		t.Fatalf("identical input produced different results:\n%+v\n%+v", first, second)
	}
}

func TestPredictNonSquareImage(t *testing.T) {
	t.Parallel()

	payload := base64.StdEncoding.EncodeToString(
		encodePNG(t, 50, 200, color.RGBA{R: 30, G: 120, B: 60, A: 255}))

	result := Predict(payload)
	if !result.Success {
		t.Fatalf("expected non-square input to resize cleanly, got %q", result.Error)
	}
}

func TestPreprocessShape(t *testing.T) {
	t.Parallel()

	batch, err := preprocess(encodePNG(t, 50, 200, color.RGBA{R: 200, G: 10, B: 10, A: 255}))
	if err != nil {
		t.Fatalf("preprocess failed: %v", err)
	}
	if len(batch) != imageSize*imageSize*channels {
		t.Fatalf("batch length = %d, want %d", len(batch), imageSize*imageSize*channels)
	}
	for i, v := range batch {
		if v < 0 || v > 1 {
			t.Fatalf("batch[%d] = %f out of [0,1]", i, v)
		}
	}
}

func TestPreprocessDropsAlpha(t *testing.T) {
	t.Parallel()

	// Fully transparent pixels still carry channel data in NRGBA form;
	// dropping alpha must keep that data instead of compositing toward
	// black the way premultiplied reads would.
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test PNG: %v", err)
	}

	batch, err := preprocess(buf.Bytes())
	if err != nil {
		t.Fatalf("preprocess failed: %v", err)
	}

	want := 200.0 / 255.0
	for i := 0; i < len(batch); i += channels {
		if diff := batch[i] - want; diff < -0.02 || diff > 0.02 {
			t.Fatalf("red channel at %d = %f, want about %f", i, batch[i], want)
		}
	}
}

func TestClassIndexStableAndBounded(t *testing.T) {
	t.Parallel()

	for _, mean := range []float64{0, 0.25, 0.3333333333333333, 0.5, 0.9999, 1} {
		idx := classIndex(mean)
		if idx < 0 || idx >= classCount {
			t.Fatalf("classIndex(%f) = %d, out of [0,%d)", mean, idx, classCount)
		}
		if again := classIndex(mean); again != idx {
			t.Fatalf("classIndex(%f) unstable: %d then %d", mean, idx, again)
		}
	}
}

func TestClassNamesShape(t *testing.T) {
	t.Parallel()

	if len(classNames) != classCount {
		t.Fatalf("classNames has %d entries, want %d", len(classNames), classCount)
	}
	for i, class := range classNames {
		if !strings.Contains(class, "__") {
			t.Fatalf("class %d (%q) missing plant/disease separator", i, class)
		}
	}
}
