package matrix

// Stats summarises the brightness samples of one frame.
type Stats struct {
	Min    uint8
	Max    uint8
	Mean   float64
	Active int
}

// Stats scans every sample of the frame.
func (f *Frame) Stats() Stats {
	s := Stats{Min: 255}
	total := 0
	for _, b := range f.Brightness {
		if b < s.Min {
			s.Min = b
		}
		if b > s.Max {
			s.Max = b
		}
		if b > 0 {
			s.Active++
		}
		total += int(b)
	}
	s.Mean = float64(total) / float64(NumPixels)
	return s
}
