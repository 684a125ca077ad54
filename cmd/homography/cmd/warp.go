package cmd

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/homography/internal/geometry"
	"github.com/MeKo-Tech/homography/internal/warp"
)

var warpCmd = &cobra.Command{
	Use:   "warp",
	Short: "Warp an image quadrilateral into a rectangle",
	Long: `Loads an image, warps the given quadrilateral region into an axis-aligned
rectangle using an inverse homography with bilinear sampling, and saves the
result.

The quad is given as eight comma-separated coordinates, clockwise starting
at the corner mapping to the top-left of the output:

  homography warp -i photo.png -o flat.png --quad 148,337,131,516,321,486,332,370`,
	RunE: runWarp,
}

func init() {
	warpCmd.Flags().StringP("input", "i", "", "input image")
	warpCmd.Flags().StringP("output", "o", "", "output image")
	warpCmd.Flags().String("quad", "", "source quad corners: x1,y1,x2,y2,x3,y3,x4,y4")
	warpCmd.Flags().Int("width", 0, "output width in pixels (0 = derive from quad aspect ratio)")
	warpCmd.Flags().Int("height", 0, "output height in pixels (0 = config default)")
	_ = warpCmd.MarkFlagRequired("input")
	_ = warpCmd.MarkFlagRequired("output")
	_ = warpCmd.MarkFlagRequired("quad")

	rootCmd.AddCommand(warpCmd)
}

func runWarp(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	quadArg, _ := cmd.Flags().GetString("quad")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")

	quad, err := parseQuad(quadArg)
	if err != nil {
		return err
	}

	cfg := GetConfig()
	if height <= 0 {
		height = cfg.Warp.OutputHeight
	}
	if width <= 0 {
		width = cfg.Warp.OutputWidth
	}
	if width <= 0 {
		width = widthFromAspect(quad, height)
	}

	img, err := imaging.Open(input)
	if err != nil {
		return fmt.Errorf("opening input image: %w", err)
	}

	slog.Debug("warping quad", "input", input, "width", width, "height", height)
	dst, err := warp.Perspective(img, quad, width, height)
	if err != nil {
		return err
	}

	if err := imaging.Save(dst, output); err != nil {
		return fmt.Errorf("saving output image: %w", err)
	}
	return nil
}

// parseQuad parses eight comma-separated coordinates into four corners.
func parseQuad(s string) ([4]geometry.Point[float64], error) {
	var quad [4]geometry.Point[float64]
	parts := strings.Split(s, ",")
	if len(parts) != 8 {
		return quad, fmt.Errorf("quad must have 8 comma-separated coordinates, got %d", len(parts))
	}
	vals := make([]float64, 8)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return quad, fmt.Errorf("invalid quad coordinate %q: %w", p, err)
		}
		vals[i] = v
	}
	for i := 0; i < 4; i++ {
		quad[i] = geometry.Point[float64]{X: vals[2*i], Y: vals[2*i+1]}
	}
	return quad, nil
}

// widthFromAspect derives the output width from the quad's average edge
// lengths so the rectified image keeps the region's aspect ratio.
func widthFromAspect(quad [4]geometry.Point[float64], height int) int {
	w0 := dist(quad[0], quad[1])
	w1 := dist(quad[3], quad[2])
	h0 := dist(quad[0], quad[3])
	h1 := dist(quad[1], quad[2])
	avgW := (w0 + w1) * 0.5
	avgH := (h0 + h1) * 0.5
	if avgH <= 0 {
		return height
	}
	w := int((avgW / avgH) * float64(height))
	if w < 1 {
		w = 1
	}
	return w
}

func dist(a, b geometry.Point[float64]) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
