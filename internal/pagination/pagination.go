package pagination

import (
	"strconv"

	"github.com/yatube-dev/yatube/internal/model"
)

// PageSize is the fixed window for every listing route.
const PageSize = 10

// Page is one window of an ordered post listing plus the numbers templates
// need to draw pager links.
type Page struct {
	Number int
	Size   int
	Total  int64
	Items  []model.Post
}

func (p Page) HasPrev() bool { return p.Number > 1 }

func (p Page) HasNext() bool { return int64(p.Number*p.Size) < p.Total }

func (p Page) PrevNumber() int { return p.Number - 1 }

func (p Page) NextNumber() int { return p.Number + 1 }

// ParseNumber turns the ?page= query value into a page number, clamping
// anything unparseable or below 1.
func ParseNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Window converts a page number to an offset/limit pair.
func Window(number int) (offset, limit int) {
	if number < 1 {
		number = 1
	}
	return (number - 1) * PageSize, PageSize
}
