package mockup

import (
	"fmt"
	"image"
	"runtime"
	"sync"

	"github.com/teepress/mockup-tools/internal/detection"
	"github.com/teepress/mockup-tools/internal/imaging"
	"github.com/teepress/mockup-tools/internal/placement"
)

// Result is one finished mockup plus the metadata that goes into the
// generation manifest.
type Result struct {
	FileName   string              `json:"file_name"`
	Design     string              `json:"design"`
	Template   string              `json:"template"`
	Placement  placement.Placement `json:"placement"`
	Region     *detection.Region   `json:"region,omitempty"`
	ShirtColor *imaging.ShirtColor `json:"shirt_color,omitempty"`
	PNG        []byte              `json:"-"`
}

// Failure records a pair that could not be generated. Failures never abort
// the batch; every other pair still runs.
type Failure struct {
	Design   string `json:"design"`
	Template string `json:"template"`
	Error    string `json:"error"`
}

// DesignGroup collects all mockups generated for one design, in template
// upload order.
type DesignGroup struct {
	Name    string   `json:"name"`
	Mockups []Result `json:"mockups"`
}

// Generator produces mockups for the outer product of designs and templates.
//
// Pairs are independent: no state is shared between them, so they fan out
// over a bounded worker pool. Output ordering is deterministic regardless
// of scheduling.
type Generator struct {
	// Detect tunes the template region detector.
	Detect detection.Options

	// Params provides the plain/model placement parameters.
	Params placement.ParamSet

	// Workers bounds the pool size. Zero or less means GOMAXPROCS.
	Workers int
}

// NewGenerator returns a Generator with reference defaults.
func NewGenerator() *Generator {
	return &Generator{
		Detect: detection.DefaultOptions(),
		Params: placement.DefaultParamSet(),
	}
}

// Mockup composites one design onto one template and encodes the result.
func (g *Generator) Mockup(design, template *Asset) (*Result, error) {
	region, _ := detection.DetectRegion(template.Image, g.Detect)
	return g.mockupWithRegion(design, template, region)
}

// mockupWithRegion is the per-pair pipeline once the template's region is
// known: select params by template name, compute placement, resize,
// composite, encode.
func (g *Generator) mockupWithRegion(design, template *Asset, region *detection.Region) (*Result, error) {
	db := design.Image.Bounds()
	tb := template.Image.Bounds()

	params := g.Params.For(template.Name)
	place, err := placement.Compute(db.Dx(), db.Dy(), region, tb.Dx(), tb.Dy(), params)
	if err != nil {
		return nil, fmt.Errorf("placement for %s on %s: %w", design.Name, template.Name, err)
	}

	pasted := design.Image
	if place.Scaled {
		pasted = imaging.Resize(design.Image, place.Width, place.Height)
	}

	out := imaging.Composite(template.Image, pasted, image.Pt(place.X, place.Y))
	data, err := imaging.EncodePNG(out)
	if err != nil {
		return nil, fmt.Errorf("encode mockup for %s on %s: %w", design.Name, template.Name, err)
	}

	result := &Result{
		FileName:  OutputName(design.Title(), template.Name),
		Design:    design.Title(),
		Template:  Stem(template.Name),
		Placement: place,
		Region:    region,
		PNG:       data,
	}
	if region != nil {
		result.ShirtColor = imaging.DominantColor(template.Image, region.Rect())
	}
	return result, nil
}

// Generate runs the full batch and groups results by design.
//
// Template regions are detected once per template and reused across designs.
// Each (design, template) pair then runs on the worker pool; a pair's
// failure is recorded and skipped without affecting the others.
func (g *Generator) Generate(designs, templates []*Asset) ([]DesignGroup, []Failure) {
	regions := make([]*detection.Region, len(templates))
	for i, tpl := range templates {
		regions[i], _ = detection.DetectRegion(tpl.Image, g.Detect)
	}

	type cell struct {
		result *Result
		err    error
	}

	grid := make([][]cell, len(designs))
	for i := range grid {
		grid[i] = make([]cell, len(templates))
	}

	workers := g.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	type pair struct{ di, ti int }
	jobs := make(chan pair)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res, err := g.mockupWithRegion(designs[j.di], templates[j.ti], regions[j.ti])
				grid[j.di][j.ti] = cell{result: res, err: err}
			}
		}()
	}

	for di := range designs {
		for ti := range templates {
			jobs <- pair{di, ti}
		}
	}
	close(jobs)
	wg.Wait()

	groups := make([]DesignGroup, 0, len(designs))
	var failures []Failure

	for di, design := range designs {
		group := DesignGroup{Name: design.Title()}
		for ti, template := range templates {
			c := grid[di][ti]
			if c.err != nil {
				failures = append(failures, Failure{
					Design:   design.Title(),
					Template: Stem(template.Name),
					Error:    c.err.Error(),
				})
				continue
			}
			group.Mockups = append(group.Mockups, *c.result)
		}
		groups = append(groups, group)
	}

	return groups, failures
}
