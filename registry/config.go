package registry

// Document is the YAML layout of one animation in the catalog. Pixels are
// sparse: each entry is a [row, column, brightness] triple and any LED not
// listed stays dark.
type Document struct {
	Name   string `yaml:"name"`
	Frames []struct {
		FrameNumber int     `yaml:"frame_number"`
		NumPixels   int     `yaml:"num_pixels"`
		Pixels      [][]int `yaml:"pixels"`
	} `yaml:"frames"`
}
