package main

import (
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
	"github.com/pkg/errors"
)

// trialRow is one candidate evaluated in one generation.
type trialRow struct {
	Iteration int32     `parquet:"iteration"`
	Candidate int32     `parquet:"candidate"`
	Elite     bool      `parquet:"elite"`
	Weights   []float32 `parquet:"weights"`
	Lines     []int32   `parquet:"lines"`
	Pieces    []int32   `parquet:"pieces"`
	MeanLines float64   `parquet:"mean_lines"`
}

func trialRows(iteration, elite int, cands []candidate) []trialRow {
	rows := make([]trialRow, len(cands))
	for i, c := range cands {
		v := c.weights.Vector()
		rows[i] = trialRow{
			Iteration: int32(iteration),
			Candidate: int32(i),
			Elite:     i < elite,
			Weights:   v[:],
			Lines:     toInt32(c.lines),
			Pieces:    toInt32(c.pieces),
			MeanLines: c.mean,
		}
	}
	return rows
}

func toInt32(xs []int) []int32 {
	out := make([]int32, len(xs))
	for i, x := range xs {
		out[i] = int32(x)
	}
	return out
}

// writeTrials replaces outPath with rows. The file is written next to its
// destination and renamed into place.
func writeTrials(outPath string, rows []trialRow) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return errors.Wrap(err, "create output dir")
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "autotris_trial_v1"),
		parquet.KeyValueMetadata("weights", "line_clear,height_difference,height,holes,horizontal_holes"),
	); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "write parquet")
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "rename parquet")
	}
	return nil
}
