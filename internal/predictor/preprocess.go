package predictor

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
)

const (
	imageSize = 128
	channels  = 3
)

// preprocess decodes raw image bytes and produces the normalized input
// batch: one 128x128 RGB image with channel values in [0,1]. The resize
// is exact (no aspect-ratio preservation); alpha is dropped and
// grayscale expands to three channels via the color model conversion.
func preprocess(imageBytes []byte) ([]float64, error) {
	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	resized := resize.Resize(imageSize, imageSize, img, resize.Lanczos3)

	bounds := resized.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	batch := make([]float64, 0, width*height*channels)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			// NRGBA keeps the stored channel values: alpha is dropped,
			// not composited toward black.
			c := color.NRGBAModel.Convert(resized.At(x, y)).(color.NRGBA)

			batch = append(batch,
				float64(c.R)/255.0,
				float64(c.G)/255.0,
				float64(c.B)/255.0,
			)
		}
	}

	return batch, nil
}

func batchMean(batch []float64) float64 {
	var sum float64
	for _, v := range batch {
		sum += v
	}
	return sum / float64(len(batch))
}
