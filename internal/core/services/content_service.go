package services

import (
	"math/rand"

	"github.com/comitanigiacomo/eco-diary/internal/core/domain"
)

// Picker returns an index in [0, n).
type Picker func(n int) int

type ContentService struct {
	quotes []domain.Quote
	facts  []string
	tips   []string
	today  domain.DailyContent
}

// NewContentService draws the session's quote, fact and tip once. A nil pick
// falls back to math/rand.
func NewContentService(pick Picker) *ContentService {
	if pick == nil {
		pick = rand.Intn
	}

	s := &ContentService{
		quotes: domain.Quotes(),
		facts:  domain.Facts(),
		tips:   domain.Tips(),
	}

	s.today = domain.DailyContent{
		Quote: s.quotes[pick(len(s.quotes))],
		Fact:  s.facts[pick(len(s.facts))],
		Tip:   s.tips[pick(len(s.tips))],
	}

	return s
}

func (s *ContentService) Today() domain.DailyContent {
	return s.today
}

// ForDay rotates through the catalogs so consecutive booklet pages differ.
func (s *ContentService) ForDay(index int) domain.DailyContent {
	if index < 0 {
		index = -index
	}
	return domain.DailyContent{
		Quote: s.quotes[index%len(s.quotes)],
		Fact:  s.facts[index%len(s.facts)],
		Tip:   s.tips[index%len(s.tips)],
	}
}
