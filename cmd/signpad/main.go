// Command signpad replays a pointer script on a signature pad and writes
// the confirmed signature as PNG.
//
//	signpad -script sig.txt -output sig.png -scale 2 -preview widget.png
package main

import (
	"flag"
	"image"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/signpad"
	"github.com/gogpu/signpad/controls"
)

func main() {
	var (
		width       = flag.Int("width", 600, "widget width in points")
		height      = flag.Int("height", 300, "widget height in points")
		scale       = flag.Float64("scale", 2, "display scale, device pixels per point")
		script      = flag.String("script", "-", "pointer script, - for stdin")
		output      = flag.String("output", "signature.png", "signature output file")
		preview     = flag.String("preview", "", "optional widget preview output file")
		thumb       = flag.Int("thumb", 0, "if > 0, also write a thumbnail this wide next to the output")
		verbose     = flag.Bool("v", false, "log pad events")
		transparent = flag.Bool("transparent", true, "export with a transparent background")
	)
	flag.Parse()

	if *verbose {
		signpad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cmds, err := readScript(*script)
	if err != nil {
		log.Fatalf("Failed to read script: %v", err)
	}

	panel, err := controls.NewPanel(*width, *height,
		signpad.WithDisplayScale(*scale),
		signpad.WithTransparentBackground(*transparent))
	if err != nil {
		log.Fatalf("Failed to create pad: %v", err)
	}
	pad := panel.Pad()

	var confirmed image.Image
	pad.OnConfirm(func(img image.Image) { confirmed = img })
	pad.OnEmptyConfirm(func() { log.Println("Confirm ignored: the pad is empty") })
	pad.OnRewrite(func() { confirmed = nil })

	if err := Run(pad, cmds); err != nil {
		log.Fatalf("Script failed: %v", err)
	}

	if *preview != "" {
		if err := writePNG(*preview, panel.Render()); err != nil {
			log.Fatalf("Failed to save preview: %v", err)
		}
	}

	if confirmed == nil {
		if pad.IsEmpty() {
			log.Fatal("Nothing to save: the script drew no ink")
		}
		confirmed = pad.ExportImage(0)
	}
	if err := writePNG(*output, confirmed); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	b := confirmed.Bounds()
	log.Printf("Signature saved to %s (%dx%d)\n", *output, b.Dx(), b.Dy())

	if *thumb > 0 {
		name := *output + ".thumb.png"
		if err := writePNG(name, signpad.Thumbnail(confirmed, *thumb, *thumb)); err != nil {
			log.Fatalf("Failed to save thumbnail: %v", err)
		}
	}
}

func readScript(name string) ([]Command, error) {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name) //nolint:gosec // path comes from the command line
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return ParseScript(r)
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name) //nolint:gosec // path comes from the command line
	if err != nil {
		return err
	}
	if err := signpad.EncodePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
