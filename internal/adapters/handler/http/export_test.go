package http

import "time"

func (h *EntryHandler) SetClock(now func() time.Time)    { h.now = now }
func (h *CalendarHandler) SetClock(now func() time.Time) { h.now = now }
func (h *ExportHandler) SetClock(now func() time.Time)   { h.now = now }
