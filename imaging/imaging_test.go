package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func testJPEG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func testPNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func TestProcessJPEG(t *testing.T) {
	result, err := Process(bytes.NewReader(testJPEG(100, 100)))
	if err != nil {
		t.Fatalf("Process JPEG: %v", err)
	}
	if result.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", result.MIME)
	}
	if len(result.Data) == 0 {
		t.Error("expected non-empty data")
	}
}

func TestProcessPNGBecomesJPEG(t *testing.T) {
	result, err := Process(bytes.NewReader(testPNG(100, 100)))
	if err != nil {
		t.Fatalf("Process PNG: %v", err)
	}
	if result.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg output, got %s", result.MIME)
	}
}

func TestProcessDownscales(t *testing.T) {
	result, err := Process(bytes.NewReader(testJPEG(2048, 1024)))
	if err != nil {
		t.Fatalf("Process large image: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() > MaxDimension || bounds.Dy() > MaxDimension {
		t.Errorf("expected max %d on each side, got %dx%d", MaxDimension, bounds.Dx(), bounds.Dy())
	}
	if bounds.Dy() != MaxDimension/2 {
		t.Errorf("aspect ratio not preserved: %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestProcessKeepsSmallImages(t *testing.T) {
	result, err := Process(bytes.NewReader(testJPEG(200, 150)))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 150 {
		t.Errorf("small image resized: %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestProcessRejectsNonImages(t *testing.T) {
	if _, err := Process(bytes.NewReader([]byte("definitely not an image"))); err == nil {
		t.Error("expected error for non-image input")
	}
}
