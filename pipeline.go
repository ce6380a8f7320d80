package recolor

import (
	"io"
	"io/ioutil"
	"log"
)

// Fixed pipeline parameters.
var (
	ReplacementA = Color{255, 201, 111, 255}
	ReplacementB = Color{0, 0, 0, 255}
)

const (
	CropX      = 110
	CropY      = 60
	CropWidth  = 180
	CropHeight = 150

	// Leading frames dropped before encoding.
	DroppedFrames = 14

	DefaultInput  = "input.gif"
	DefaultOutput = "output.gif"
)

type Option func(p *Pipeline)

// WithLogger sets where progress messages go. They are discarded by default.
func WithLogger(l *log.Logger) Option {
	return func(p *Pipeline) {
		p.logger = l
	}
}

// If used, the first processed frame is drawn to w before encoding.
func WithPreview(w io.Writer) Option {
	return func(p *Pipeline) {
		p.preview = w
	}
}

// Pipeline recolors, crops and antialiases an animation with the fixed
// parameters above, then drops the leading frames.
type Pipeline struct {
	logger  *log.Logger // Progress messages
	preview io.Writer   // Optional preview output
}

func NewPipeline(opts ...Option) *Pipeline {
	p := Pipeline{
		logger: log.New(ioutil.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return &p
}

// Run reads the animation at input, processes it and writes the result to
// output.
func (p *Pipeline) Run(input, output string) error {
	p.logger.Printf("Loading GIF from '%s'...", input)
	p.logger.Println("Extracting frames from GIF...")
	frames, err := ExtractFile(input)
	if err != nil {
		return err
	}
	p.logger.Println("Finished extracting frames.")

	processed, err := p.Process(frames)
	if err != nil {
		return err
	}

	if p.preview != nil && len(processed) > 0 {
		if err := Preview(p.preview, processed[0]); err != nil {
			return err
		}
	}

	p.logger.Printf("Creating GIF at '%s'...", output)
	if err := EncodeFile(output, processed); err != nil {
		return err
	}
	p.logger.Println("Finished creating GIF.")
	return nil
}

// Process runs every stage between extraction and encoding.
func (p *Pipeline) Process(frames Animation) (Animation, error) {
	b := frames.Bounds()
	p.logger.Printf("Number of frames: %d", len(frames))
	p.logger.Printf("Dimensions of the first frame: %dx%d pixels", b.Dy(), b.Dx())

	p.logger.Println("Replacing colors in frames...")
	colored, err := ReplaceColors(frames, ReplacementA, ReplacementB)
	if err != nil {
		return nil, err
	}
	p.logger.Println("Finished replacing colors.")

	p.logger.Println("Cropping frames...")
	cropped := Crop(colored, CropX, CropY, CropWidth, CropHeight)
	p.logger.Println("Finished cropping frames.")

	b = cropped.Bounds()
	p.logger.Printf("Number of frames after cropping: %d", len(cropped))
	p.logger.Printf("Dimensions of the first cropped frame: %dx%d pixels", b.Dy(), b.Dx())

	p.logger.Println("Applying antialiasing to frames...")
	smoothed := make(Animation, 0, len(cropped))
	for i, frame := range cropped {
		p.logger.Printf("Processing frame %d of %d", i+1, len(cropped))
		smoothed = append(smoothed, AntialiasFrame(frame))
	}
	p.logger.Println("Finished applying antialiasing.")

	return DropLeading(smoothed, DroppedFrames), nil
}
