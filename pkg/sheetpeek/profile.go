package sheetpeek

import (
	"time"

	"github.com/montanaflynn/stats"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/models"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/reader"
)

// Profile infers a data type for every sampled column and summarizes the
// numeric ones.
func Profile(s *models.Sample) []models.Column {
	cols := make([]models.Column, s.Width())
	for c, name := range s.Columns {
		cells := make([]string, len(s.Rows))
		for r, row := range s.Rows {
			cells[r] = row[c]
		}
		cols[c] = profileColumn(name, cells)
	}
	return cols
}

type valueKinds struct {
	ints, floats, bools, times, text bool
	missing                          bool
}

func (k valueKinds) categories() int {
	n := 0
	for _, seen := range []bool{k.ints || k.floats, k.bools, k.times, k.text} {
		if seen {
			n++
		}
	}
	return n
}

func profileColumn(name string, cells []string) models.Column {
	col := models.Column{Name: name}
	var kinds valueKinds
	var nums []float64

	for _, cell := range cells {
		if cell == "" {
			kinds.missing = true
			continue
		}
		col.NonEmpty++
		switch v := reader.ParseValue(cell).(type) {
		case int64:
			kinds.ints = true
			nums = append(nums, float64(v))
		case float64:
			kinds.floats = true
			nums = append(nums, v)
		case bool:
			kinds.bools = true
		case time.Time:
			kinds.times = true
		default:
			kinds.text = true
		}
	}

	col.DType = inferDType(kinds, col.NonEmpty)
	if (col.DType == models.DTypeInt64 || col.DType == models.DTypeFloat64) && len(nums) > 0 {
		col.Summary = summarize(nums)
	}
	return col
}

// inferDType follows the usual dataframe conventions: a missing value
// promotes integers to float64 and booleans to object.
func inferDType(k valueKinds, nonEmpty int) models.DType {
	switch {
	case nonEmpty == 0:
		return models.DTypeFloat64
	case k.categories() > 1 || k.text:
		return models.DTypeObject
	case k.ints && !k.floats && !k.missing:
		return models.DTypeInt64
	case k.ints || k.floats:
		return models.DTypeFloat64
	case k.bools && !k.missing:
		return models.DTypeBool
	case k.bools:
		return models.DTypeObject
	default:
		return models.DTypeDatetime
	}
}

func summarize(nums []float64) *models.NumericSummary {
	data := stats.Float64Data(nums)
	mean, _ := stats.Mean(data)
	lo, _ := stats.Min(data)
	hi, _ := stats.Max(data)
	return &models.NumericSummary{
		Count: data.Len(),
		Mean:  mean,
		Min:   lo,
		Max:   hi,
	}
}
