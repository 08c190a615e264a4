// Command myjpeg encodes and decodes images using the MYJPEG container
// format implemented by github.com/gojpeg/myjpeg.
package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/gojpeg/myjpeg"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logFile string

func main() {
	root := &cobra.Command{
		Use:   "myjpeg",
		Short: "Encode and decode images in the MYJPEG container format",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logFile != "" {
				myjpeg.Logger = zerolog.New(&lumberjack.Logger{
					Filename:   logFile,
					MaxSize:    10, // megabytes
					MaxBackups: 3,
					MaxAge:     28, // days
				}).With().Timestamp().Logger()
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "route logs through a rotating file instead of stderr")
	root.AddCommand(newEncodeCmd(), newDecodeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newEncodeCmd() *cobra.Command {
	var quality int
	cmd := &cobra.Command{
		Use:   "encode <input> <output.myjpeg>",
		Short: "Encode a PNG or JPEG image to the MYJPEG container format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if quality == 0 {
				// Match the reference driver's boundary behavior: a
				// caller-supplied 0 means "lowest", not "reject".
				quality = 1
			}
			src, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer src.Close()
			img, _, err := image.Decode(src)
			if err != nil {
				return err
			}
			rgb := toRGBImage(img)
			out, err := myjpeg.Encode(rgb, quality)
			if err != nil {
				return err
			}
			return os.WriteFile(args[1], out, 0o644)
		},
	}
	cmd.Flags().IntVar(&quality, "quality", 75, "encode quality, 1-100 (0 is treated as 1)")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <input.myjpeg> <output.png>",
		Short: "Decode a MYJPEG container back to a PNG image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			rgb, err := myjpeg.Decode(data)
			if err != nil {
				return err
			}
			dst, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer dst.Close()
			return png.Encode(dst, fromRGBImage(rgb))
		},
	}
	return cmd
}

// toRGBImage copies any decoded image.Image into the codec's own flat RGB
// raster type.
func toRGBImage(src image.Image) *myjpeg.RGBImage {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := &myjpeg.RGBImage{Width: w, Height: h, Pix: make([]uint8, w*h*3)}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := src.At(x, y).RGBA()
			out.Pix[i] = uint8(r >> 8)
			out.Pix[i+1] = uint8(g >> 8)
			out.Pix[i+2] = uint8(bl >> 8)
			i += 3
		}
	}
	return out
}

func fromRGBImage(src *myjpeg.RGBImage) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, src.Width, src.Height))
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			i := 3 * (y*src.Width + x)
			dst.SetRGBA(x, y, color.RGBA{R: src.Pix[i], G: src.Pix[i+1], B: src.Pix[i+2], A: 0xff})
		}
	}
	return dst
}
