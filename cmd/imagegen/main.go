// imagegen renders one branded 1920x1080 image from a local photo.
//
// Usage:
//
//	imagegen [-in photo.jpg] [-o image.webp] [-style logo-only|with-text]
//	         [-logo SPN|Flatwater|Documenters] [-text "..."] [-color white|black]
//	         [-size 72] [-font impact.ttf] [-format webp|png] [-quality 95]
//	         [-max-pixels 40000000]
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/youruser/imagegen/internal/config"
	imagepkg "github.com/youruser/imagegen/internal/image"
	"github.com/youruser/imagegen/internal/logos"
	"github.com/youruser/imagegen/internal/textlayout"
	"github.com/youruser/imagegen/internal/util"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("imagegen", flag.ExitOnError)
	var (
		in       = fs.String("in", "", "input photo (optional)")
		out      = fs.String("o", "", "output file (default image.<format>)")
		style    = fs.String("style", string(imagepkg.StyleLogoOnly), "logo-only or with-text")
		logo     = fs.String("logo", string(logos.SPN), "SPN, Flatwater or Documenters")
		text     = fs.String("text", "", "caption for with-text style")
		color    = fs.String("color", string(imagepkg.TextWhite), "text color: white or black")
		size     = fs.Int("size", imagepkg.DefaultFontSize, "font size in pixels (30-150)")
		fontPath = fs.String("font", "", "TTF/OTF for the caption (default Go Bold)")
		format   = fs.String("format", string(imagepkg.FormatWebP), "webp or png")
		quality  = fs.Float64("quality", float64(imagepkg.DefaultQuality), "webp quality (0-100]")
		pixels   = fs.Int64("max-pixels", config.Default().MaxPixels, "refuse photos with more pixels")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := config.ValidateQuality(float32(*quality)); err != nil {
		return err
	}
	if *pixels <= 0 {
		return fmt.Errorf("max-pixels must be positive")
	}

	req, err := buildRequest(*style, *logo, *text, *color, *size)
	if err != nil {
		return err
	}
	f, err := imagepkg.ParseFormat(*format)
	if err != nil {
		return err
	}
	if *out == "" {
		*out = f.FileName()
	}
	if *in != "" {
		req.Photo = loadPhoto(*in, *pixels)
	}

	fonts, err := textlayout.NewFontManager(*fontPath)
	if err != nil {
		return err
	}
	cache := logos.NewCache(textlayout.Bold(), imagepkg.LogoSizes()...)
	if err := cache.Load(context.Background()); err != nil {
		return err
	}

	canvas, err := imagepkg.NewCompositor(cache, fonts).Compose(req)
	if err != nil {
		return err
	}

	if err := util.EnsureDir(filepath.Dir(*out)); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	dst, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := imagepkg.Export(dst, canvas.Image(), f, float32(*quality)); err != nil {
		dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}
	fmt.Printf("Done: %s\n", *out)
	return nil
}

func buildRequest(style, logo, text, color string, size int) (imagepkg.RenderRequest, error) {
	req := imagepkg.NewRenderRequest()
	var err error
	if req.Style, err = imagepkg.ParseStyle(style); err != nil {
		return req, err
	}
	if req.Logo, err = logos.ParseName(logo); err != nil {
		return req, err
	}
	if req.TextColor, err = imagepkg.ParseTextColor(strings.ToLower(color)); err != nil {
		return req, err
	}
	if req.FontSize, err = imagepkg.ParseFontSize(strconv.Itoa(size)); err != nil {
		return req, err
	}
	req.Text = text
	return req, nil
}

// loadPhoto warns and returns nil when the photo can't be used.
func loadPhoto(path string, maxPixels int64) image.Image {
	f, err := os.Open(path)
	if err != nil {
		log.Println("Warning: could not open photo:", err)
		return nil
	}
	defer f.Close()
	img, err := imagepkg.DecodePhoto(f, maxPixels)
	if err != nil {
		log.Println("Warning:", err)
		return nil
	}
	return img
}
