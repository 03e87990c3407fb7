package history

import (
	"fmt"
	"math"
	"time"
)

// BuildTrendReport derives per-run deltas and a moving average of unused
// import counts from an ascending snapshot series.
func BuildTrendReport(snapshots []Snapshot, window time.Duration) (TrendReport, error) {
	if len(snapshots) == 0 {
		return TrendReport{}, fmt.Errorf("no snapshots available")
	}

	points := make([]TrendPoint, 0, len(snapshots))
	for i, current := range snapshots {
		point := TrendPoint{
			Timestamp:            current.Timestamp,
			RunID:                current.RunID,
			ModuleCount:          current.ModuleCount,
			ImportCount:          current.ImportCount,
			UnusedImplicitCount:  current.UnusedImplicitCount,
			UnusedQualifiedCount: current.UnusedQualifiedCount,
			UnknownSkippedCount:  current.UnknownSkippedCount,
		}

		if i > 0 {
			prev := snapshots[i-1]
			point.DeltaModules = current.ModuleCount - prev.ModuleCount
			point.DeltaImports = current.ImportCount - prev.ImportCount
			point.DeltaUnusedImplicit = current.UnusedImplicitCount - prev.UnusedImplicitCount
			point.DeltaUnusedQualified = current.UnusedQualifiedCount - prev.UnusedQualifiedCount
		}

		point.AvgUnused = round2(movingAverageUnused(snapshots, i, window))
		point.WindowHours = round2(window.Hours())
		points = append(points, point)
	}

	return TrendReport{
		SchemaVersion: SchemaVersion,
		Since:         snapshots[0].Timestamp,
		Until:         snapshots[len(snapshots)-1].Timestamp,
		Window:        window.String(),
		RunCount:      len(points),
		Points:        points,
	}, nil
}

func movingAverageUnused(snapshots []Snapshot, index int, window time.Duration) float64 {
	totalAt := func(i int) int {
		return snapshots[i].UnusedImplicitCount + snapshots[i].UnusedQualifiedCount
	}
	if window <= 0 {
		return float64(totalAt(index))
	}

	cutoff := snapshots[index].Timestamp.Add(-window)
	total := 0
	count := 0
	for i := index; i >= 0; i-- {
		if snapshots[i].Timestamp.Before(cutoff) {
			break
		}
		total += totalAt(i)
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
