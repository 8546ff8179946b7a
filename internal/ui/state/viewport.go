package state

// Viewport is a scroll window over a list of total entries.
type Viewport struct {
	Offset int
}

// Ensure adjusts the offset so cursor stays within the maxVisible entries
// shown. A non-positive maxVisible shows everything from the start.
func (v *Viewport) Ensure(cursor, total, maxVisible int) {
	if total <= 0 || maxVisible <= 0 {
		v.Offset = 0
		return
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= total {
		cursor = total - 1
	}
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
	if cursor < v.Offset {
		v.Offset = cursor
	}
	if upper := v.Offset + maxVisible - 1; cursor > upper {
		v.Offset = cursor - maxVisible + 1
		if v.Offset > maxOffset {
			v.Offset = maxOffset
		}
	}
}

// Window returns the half-open range of entries currently shown.
func (v Viewport) Window(total, maxVisible int) (start, end int) {
	if total <= 0 {
		return 0, 0
	}
	start = v.Offset
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	if maxVisible <= 0 {
		return start, total
	}
	end = start + maxVisible
	if end > total {
		end = total
	}
	return start, end
}
