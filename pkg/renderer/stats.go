package renderer

// RenderStats tracks sampling statistics for a completed render
type RenderStats struct {
	TotalPixels    int     // Number of pixels rendered
	TotalSamples   int     // Number of primary rays traced
	AverageSamples float64 // Average samples per pixel
}

func newRenderStats(camera *Camera) RenderStats {
	return RenderStats{
		TotalPixels: camera.ImageWidth() * camera.ImageHeight(),
	}
}

// addRow accumulates the samples taken for one rendered row
func (s *RenderStats) addRow(samples int) {
	s.TotalSamples += samples
}

// finalize calculates derived statistics after all rows are rendered
func (s *RenderStats) finalize() {
	if s.TotalPixels > 0 {
		s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
	}
}
