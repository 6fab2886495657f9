package domain

// Score weights. Each tier outweighs the largest contribution of the tier below,
// so a single additive scalar orders by lap, then checkpoint, then segment progress.
const (
	LapWeight        = 1_000_000
	CheckpointWeight = 100_000
	DistanceWeight   = 99_999
)

const (
	minSegmentLength   = 0.001
	floorSegmentLength = 1.0
)

// SegmentProgress returns how far pos has travelled from checkpoint prev towards
// checkpoint next, in [0,1]. It is a straight-line proxy, not path distance.
func SegmentProgress(pos, prev, next Vec3) float64 {
	segment := prev.Distance(next)
	if segment <= minSegmentLength {
		segment = floorSegmentLength
	}
	progress := 1.0 - pos.Distance(next)/segment
	switch {
	case progress < 0:
		return 0
	case progress > 1:
		return 1
	}
	return progress
}

// LiveScore computes the ranking scalar of an unfinished competitor.
func LiveScore(lap, lastCheckpoint int, progress float64) float64 {
	return float64(lap)*LapWeight + float64(lastCheckpoint)*CheckpointWeight + progress*DistanceWeight
}

// FinishScore computes the terminal score. Finishers outrank every unfinished
// competitor and earlier finishers outrank later ones.
func FinishScore(lap int, totalRaceTime float64) float64 {
	return float64(lap)*LapWeight - totalRaceTime
}

// ScoreOnTrack computes the live score of p against track t.
func ScoreOnTrack(p *ProgressState, t *Track) float64 {
	total := t.Len()
	next := NextCheckpoint(p.LastCheckpointHit, total)
	prev := p.LastCheckpointHit
	if prev < 0 {
		prev = total - 1
	}
	progress := SegmentProgress(p.Position, t.Checkpoint(prev).Position, t.Checkpoint(next).Position)
	return LiveScore(p.CurrentLap, p.LastCheckpointHit, progress)
}
