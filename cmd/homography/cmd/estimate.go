package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MeKo-Tech/homography/internal/config"
	"github.com/MeKo-Tech/homography/internal/geometry"
	"github.com/MeKo-Tech/homography/internal/homography"
)

// correspondenceFile is the on-disk YAML format for mixed point and line
// correspondences. Points are [x, y]; lines are homogeneous [a, b, c]
// with a*x + b*y + c = 0.
type correspondenceFile struct {
	Points []correspondencePair `yaml:"points"`
	Lines  []correspondencePair `yaml:"lines"`
}

type correspondencePair struct {
	Src []float64 `yaml:"src"`
	Dst []float64 `yaml:"dst"`
}

// estimateResult is the machine-readable solve output.
type estimateResult struct {
	Matrix         [3][3]float64 `json:"matrix"`
	Residual       float64       `json:"residual"`
	SingularValues []float64     `json:"singular_values"`
}

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate a homography from a correspondence file",
	Long: `Reads point and line correspondences from a YAML file and solves for
the 3x3 homography mapping the source plane onto the target plane.

The file lists source/target pairs:

  points:
    - src: [148, 337]
      dst: [0, 0]
  lines:
    - src: [179, 17, -32221]
      dst: [60, 0, 0]

At least four correspondences (points and lines combined) are required;
each line constrains the transform as much as a point does.`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringP("input", "i", "", "correspondence file (YAML)")
	estimateCmd.Flags().StringP("format", "f", "", "output format (text or json; default from config)")
	estimateCmd.Flags().Bool("single", false, "solve in single precision (float32)")
	estimateCmd.Flags().Bool("normalize", false, "rescale the result so the bottom-right coefficient is 1")
	_ = estimateCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	format, _ := cmd.Flags().GetString("format")
	single, _ := cmd.Flags().GetBool("single")
	normalize, _ := cmd.Flags().GetBool("normalize")

	if format == "" {
		format = GetConfig().Format
	}
	if format != config.FormatText && format != config.FormatJSON {
		return fmt.Errorf("unknown output format %q", format)
	}

	f, err := readCorrespondenceFile(input)
	if err != nil {
		return err
	}
	slog.Debug("loaded correspondences",
		"file", input, "points", len(f.Points), "lines", len(f.Lines))

	var result estimateResult
	if single {
		sol, err := solveFile[float32](f)
		if err != nil {
			return err
		}
		result = toResult(sol, normalize)
	} else {
		sol, err := solveFile[float64](f)
		if err != nil {
			return err
		}
		result = toResult(sol, normalize)
	}

	if format == config.FormatJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "H =")
	for i := 0; i < 3; i++ {
		_, _ = fmt.Fprintf(out, "  %14.6e %14.6e %14.6e\n",
			result.Matrix[i][0], result.Matrix[i][1], result.Matrix[i][2])
	}
	_, _ = fmt.Fprintf(out, "residual = %g\n", result.Residual)
	return nil
}

func readCorrespondenceFile(path string) (*correspondenceFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-supplied input path
	if err != nil {
		return nil, fmt.Errorf("reading correspondence file: %w", err)
	}
	var f correspondenceFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing correspondence file: %w", err)
	}

	for i, p := range f.Points {
		if len(p.Src) != 2 || len(p.Dst) != 2 {
			return nil, fmt.Errorf("point pair %d: src and dst must be [x, y]", i)
		}
	}
	for i, l := range f.Lines {
		if len(l.Src) != 3 || len(l.Dst) != 3 {
			return nil, fmt.Errorf("line pair %d: src and dst must be [a, b, c]", i)
		}
	}
	return &f, nil
}

// solveFile runs the estimation pipeline at the requested precision.
func solveFile[T geometry.Float](f *correspondenceFile) (homography.Solution[T], error) {
	est := homography.NewEstimator[T]()
	for _, p := range f.Points {
		est.AddPointPair(
			geometry.Point[T]{X: T(p.Src[0]), Y: T(p.Src[1])},
			geometry.Point[T]{X: T(p.Dst[0]), Y: T(p.Dst[1])},
		)
	}
	for _, l := range f.Lines {
		est.AddLinePair(
			geometry.Line[T]{A: T(l.Src[0]), B: T(l.Src[1]), C: T(l.Src[2])},
			geometry.Line[T]{A: T(l.Dst[0]), B: T(l.Dst[1]), C: T(l.Dst[2])},
		)
	}
	return est.Solve()
}

func toResult[T geometry.Float](sol homography.Solution[T], normalize bool) estimateResult {
	h := sol.H
	if normalize {
		h, _ = h.Normalized()
	}
	var r estimateResult
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.Matrix[i][j] = float64(h[i][j])
		}
	}
	r.Residual = float64(sol.Residual)
	r.SingularValues = make([]float64, len(sol.Spectrum))
	for i, s := range sol.Spectrum {
		r.SingularValues[i] = float64(s)
	}
	return r
}
