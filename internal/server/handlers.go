package server

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teepress/mockup-tools/internal/mockup"
	"github.com/teepress/mockup-tools/internal/placement"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// uploadedFile reports the outcome for one file in a multipart upload.
type uploadedFile struct {
	Name   string `json:"name"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (s *Server) uploadDesigns(c *gin.Context) {
	s.upload(c, s.store.AddDesign)
}

func (s *Server) uploadTemplates(c *gin.Context) {
	s.upload(c, s.store.AddTemplate)
}

// upload ingests a multipart form of image files. Files that exceed the size
// cap or fail to decode are rejected individually; the rest are stored.
func (s *Server) upload(c *gin.Context, add func(*mockup.Asset)) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files in form field \"files\""})
		return
	}

	var accepted, rejected []uploadedFile
	for _, fh := range files {
		if fh.Size > s.cfg.MaxUploadBytes {
			rejected = append(rejected, uploadedFile{Name: fh.Filename, Error: "file too large"})
			continue
		}

		f, err := fh.Open()
		if err != nil {
			rejected = append(rejected, uploadedFile{Name: fh.Filename, Error: err.Error()})
			continue
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			rejected = append(rejected, uploadedFile{Name: fh.Filename, Error: err.Error()})
			continue
		}

		asset, err := mockup.DecodeAsset(fh.Filename, data)
		if err != nil {
			log.Printf("rejecting upload %s: %v", fh.Filename, err)
			rejected = append(rejected, uploadedFile{Name: fh.Filename, Error: err.Error()})
			continue
		}

		add(asset)
		b := asset.Image.Bounds()
		accepted = append(accepted, uploadedFile{Name: asset.Name, Width: b.Dx(), Height: b.Dy()})
	}

	status := http.StatusOK
	if len(accepted) == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"accepted": accepted, "rejected": rejected})
}

type renameRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
}

func (s *Server) renameDesign(c *gin.Context) {
	var req renameRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.store.RenameDesign(c.Param("name"), req.DisplayName); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": c.Param("name"), "display_name": req.DisplayName})
}

// assetInfo is the listing entry for one stored upload.
type assetInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	Kind        string `json:"kind,omitempty"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

func (s *Server) listUploads(c *gin.Context) {
	describe := func(assets []*mockup.Asset, classify bool) []assetInfo {
		out := make([]assetInfo, 0, len(assets))
		for _, a := range assets {
			b := a.Image.Bounds()
			info := assetInfo{
				Name:        a.Name,
				DisplayName: a.DisplayName,
				Width:       b.Dx(),
				Height:      b.Dy(),
			}
			if classify {
				info.Kind = placement.Classify(a.Name).String()
			}
			out = append(out, info)
		}
		return out
	}

	c.JSON(http.StatusOK, gin.H{
		"designs":   describe(s.store.Designs(), false),
		"templates": describe(s.store.Templates(), true),
	})
}

func (s *Server) clearUploads(c *gin.Context) {
	s.store.Clear()
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

type previewRequest struct {
	Design   string              `json:"design" binding:"required"`
	Template string              `json:"template" binding:"required"`
	Params   *placement.ParamSet `json:"params,omitempty"`
}

// preview composites a single (design, template) pair and returns the PNG.
func (s *Server) preview(c *gin.Context) {
	var req previewRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	design, err := s.store.Design(req.Design)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "design " + req.Design + " not found"})
		return
	}
	template, err := s.store.Template(req.Template)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "template " + req.Template + " not found"})
		return
	}

	result, err := s.generator(req.Params).Mockup(design, template)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.Header("X-Mockup-Name", result.FileName)
	c.Data(http.StatusOK, "image/png", result.PNG)
}

type generateRequest struct {
	// Start and End select a 1-based inclusive range of designs in upload
	// order. Zero values mean "from the first" / "through the last".
	Start  int                 `json:"start"`
	End    int                 `json:"end"`
	Params *placement.ParamSet `json:"params,omitempty"`
}

// generate runs the batch for the selected design range against all
// templates and streams back the master archive.
func (s *Server) generate(c *gin.Context) {
	var req generateRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	designs := s.store.Designs()
	templates := s.store.Templates()
	if len(designs) == 0 || len(templates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "upload at least one design and one template"})
		return
	}

	start, end := req.Start, req.End
	if start == 0 {
		start = 1
	}
	if end == 0 {
		end = len(designs)
	}
	if start < 1 || end > len(designs) || start > end {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid design range"})
		return
	}
	batch := designs[start-1 : end]

	groups, failures := s.generator(req.Params).Generate(batch, templates)
	for _, f := range failures {
		log.Printf("generation failure: %s on %s: %s", f.Design, f.Template, f.Error)
	}

	archive, err := mockup.Package(groups, failures, len(templates))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+mockup.MasterArchiveName+`"`)
	c.Data(http.StatusOK, "application/zip", archive)
}
