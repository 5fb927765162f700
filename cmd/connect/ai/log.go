package ai

func (h *Heuristic) writeLogf(format string, v ...any) {
	if h.log == nil {
		return
	}

	h.log(format, v...)
}
