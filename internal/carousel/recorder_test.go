package carousel

type recorder struct {
	turns      []int
	thresholds []Direction
}

func (r *recorder) OnPageTurn(newIndex int)   { r.turns = append(r.turns, newIndex) }
func (r *recorder) OnThreshold(dir Direction) { r.thresholds = append(r.thresholds, dir) }
