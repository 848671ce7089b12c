package api

import (
	"bytes"
	"errors"
	"image"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/youruser/imagegen/internal/config"
	imagepkg "github.com/youruser/imagegen/internal/image"
	"github.com/youruser/imagegen/internal/logos"
	"github.com/youruser/imagegen/internal/util"
)

const maxLogoSize = 1024

type Handler struct {
	compositor *imagepkg.Compositor
	logos      *logos.Cache
	cfg        config.Config
	fetch      *http.Client
}

func NewHandler(compositor *imagepkg.Compositor, cache *logos.Cache, cfg config.Config) *Handler {
	return &Handler{
		compositor: compositor,
		logos:      cache,
		cfg:        cfg,
		fetch:      util.PublicClient(cfg.FetchTimeout),
	}
}

// health
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "logos_ready": h.logos.Ready()})
}

func (h *Handler) listLogos(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"logos": logos.Names(), "sizes": h.logos.Sizes()})
}

// logoHandler returns the cached raster of one logo as PNG.
func (h *Handler) logoHandler(c *gin.Context) {
	name, err := logos.ParseName(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "200"))
	if err != nil || size <= 0 || size > maxLogoSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "size must be an integer in [1, 1024]"})
		return
	}
	img, err := h.logos.Logo(name, size)
	if errors.Is(err, logos.ErrNotReady) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	buf := new(bytes.Buffer)
	if err := imagepkg.EncodePNG(buf, img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// renderHandler composes the uploaded photo with the requested controls and
// answers with the encoded image as a download.
func (h *Handler) renderHandler(c *gin.Context) {
	format, err := imagepkg.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if c.Request.ContentLength > h.cfg.MaxUploadBytes() {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload too large"})
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxUploadBytes())
	if err := c.Request.ParseMultipartForm(h.cfg.MaxUploadBytes()); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := parseRenderForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Photo = h.loadPhoto(c)

	canvas, err := h.compositor.Compose(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	buf := new(bytes.Buffer)
	if err := imagepkg.Export(buf, canvas.Image(), format, h.cfg.Quality); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+format.FileName()+`"`)
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

func parseRenderForm(c *gin.Context) (imagepkg.RenderRequest, error) {
	req := imagepkg.NewRenderRequest()
	var err error
	if req.Style, err = imagepkg.ParseStyle(c.DefaultPostForm("style", string(req.Style))); err != nil {
		return req, err
	}
	if req.Logo, err = logos.ParseName(c.DefaultPostForm("logo", string(req.Logo))); err != nil {
		return req, err
	}
	if req.TextColor, err = imagepkg.ParseTextColor(c.DefaultPostForm("text_color", string(req.TextColor))); err != nil {
		return req, err
	}
	if req.FontSize, err = imagepkg.ParseFontSize(c.DefaultPostForm("font_size", strconv.Itoa(req.FontSize))); err != nil {
		return req, err
	}
	req.Text = c.PostForm("text")
	return req, nil
}

// loadPhoto returns the uploaded or linked photo. Anything that fails to
// load or decode, is over the pixel limit, or points at a non-public
// address renders without a photo.
func (h *Handler) loadPhoto(c *gin.Context) image.Image {
	fh, err := c.FormFile("photo")
	if err == nil {
		f, err := fh.Open()
		if err != nil {
			log.Println("photo open error:", err)
			return nil
		}
		defer f.Close()
		img, err := imagepkg.DecodePhoto(f, h.cfg.MaxPixels)
		if err != nil {
			log.Println("photo decode error:", err)
			return nil
		}
		return img
	}

	url := c.PostForm("photo_url")
	if url == "" {
		return nil
	}
	img, err := imagepkg.DownloadPhoto(c.Request.Context(), h.fetch, url, h.cfg.MaxPixels)
	if err != nil {
		log.Println("photo download error:", err)
		return nil
	}
	return img
}
